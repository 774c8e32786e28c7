package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-assessment-service/config"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/delivery/http/handler"
	"health-assessment-service/internal/delivery/http/middleware"
	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/repository"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/jwt"
	"health-assessment-service/pkg/response"
	"health-assessment-service/pkg/validator"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
	Meta    *response.Meta    `json:"meta"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, authRateLimit int) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	tokenRepo := repository.NewMemorySessionTokenRepository()
	registry := service.NewSessionRegistry(log, service.NewAuditService(log), time.Hour, time.Hour)
	t.Cleanup(registry.Stop)

	authService := service.NewAuthService(log, v, service.Latency{})
	assessmentService := service.NewAssessmentService(log, service.NewPredictor(config.AssessmentModeRules), service.Latency{})
	directory := service.NewDoctorDirectory(log, repository.NewDoctorCatalogRepository(), service.Latency{})

	router := NewRouter(
		handler.NewSessionHandler(usecase.NewSessionUsecase(log, registry, tokenRepo, jwtService), usecase.NewStateUsecase(log)),
		handler.NewAuthHandler(usecase.NewAuthUsecase(log, authService), v),
		handler.NewHealthFormHandler(usecase.NewHealthFormUsecase(log, assessmentService), v),
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(log, directory), v),
		handler.NewProfileHandler(usecase.NewProfileUsecase(log), v),
		handler.NewDashboardHandler(usecase.NewDashboardUsecase(), usecase.NewOnboardingUsecase(log)),
		middleware.NewAuthMiddleware(log, jwtService, tokenRepo, registry),
		middleware.NewCORSMiddleware([]string{"*"}),
		authRateLimit,
	)

	return &testServer{t: t, handler: router.Setup()}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func (s *testServer) session() string {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(s.t, http.StatusCreated, code)

	var sess dto.SessionResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &sess))
	require.NotEmpty(s.t, sess.Token)
	return sess.Token
}

func (s *testServer) login(token string) {
	s.t.Helper()
	code, _ := s.do(http.MethodPost, "/api/v1/auth/login", token, dto.LoginRequest{Email: "john@example.com", Password: "secret"})
	require.Equal(s.t, http.StatusOK, code)
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestRouter_HealthCheck(t *testing.T) {
	s := newTestServer(t, 0)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_SessionToken(t *testing.T) {
	s := newTestServer(t, 0)

	code, _ := s.do(http.MethodGet, "/api/v1/state", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/api/v1/state", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	token := s.session()
	code, env := s.do(http.MethodGet, "/api/v1/state", token, nil)
	require.Equal(t, http.StatusOK, code)
	state := decodeData[dto.StateResponse](t, env)
	assert.Equal(t, entity.PageLogin, state.CurrentPage)
	assert.False(t, state.IsAuthenticated)

	code, _ = s.do(http.MethodDelete, "/api/v1/sessions", token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, "/api/v1/state", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Token has been revoked", env.Message)
}

func TestRouter_Login(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()

	code, env := s.do(http.MethodPost, "/api/v1/auth/login", token, dto.LoginRequest{Email: "john@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Password is required", env.Error["password"])

	code, _ = s.do(http.MethodPost, "/api/v1/auth/login", token, "{not json")
	assert.Equal(t, http.StatusBadRequest, code)

	_, env = s.do(http.MethodGet, "/api/v1/state", token, nil)
	assert.Equal(t, entity.PageLogin, decodeData[dto.StateResponse](t, env).CurrentPage)

	code, env = s.do(http.MethodPost, "/api/v1/auth/login", token, dto.LoginRequest{Email: "john@example.com", Password: "secret"})
	require.Equal(t, http.StatusOK, code)
	state := decodeData[dto.StateResponse](t, env)
	assert.Equal(t, entity.PageDashboard, state.CurrentPage)
	assert.True(t, state.IsAuthenticated)

	code, env = s.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.PageLogin, decodeData[dto.StateResponse](t, env).CurrentPage)
}

func TestRouter_SignedInRoutes(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()

	code, _ := s.do(http.MethodGet, "/api/v1/dashboard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	s.login(token)

	code, env := s.do(http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "John", decodeData[dto.DashboardResponse](t, env).WelcomeName)

	code, _ = s.do(http.MethodGet, "/api/v1/predictions/latest", token, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodGet, "/api/v1/health-form", token, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestRouter_Actions(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()

	code, env := s.do(http.MethodPost, "/api/v1/actions", token, `{"type":"SET_PAGE","payload":"register"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.PageRegister, decodeData[dto.StateResponse](t, env).CurrentPage)

	code, _ = s.do(http.MethodPost, "/api/v1/actions", token, `{"type":"SET_PAGE","payload":"nowhere"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/api/v1/actions", token, `{"type":"SET_PAGE"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodPost, "/api/v1/actions", token, `{"type":"UNKNOWN"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.PageRegister, decodeData[dto.StateResponse](t, env).CurrentPage)
}

func TestRouter_HealthAssessmentFlow(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()
	s.login(token)

	code, _ := s.do(http.MethodPost, "/api/v1/actions", token, `{"type":"SET_PAGE","payload":"health-form"}`)
	require.Equal(t, http.StatusOK, code)

	code, env := s.do(http.MethodPatch, "/api/v1/health-form", token, map[string]interface{}{"age": 30, "weight": 70})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 30, *decodeData[dto.HealthFormResponse](t, env).Age)

	code, env = s.do(http.MethodPatch, "/api/v1/health-form", token, map[string]interface{}{"age": -1})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "age")

	for _, symptom := range []string{"Headache", "Fever", "Cough"} {
		code, _ = s.do(http.MethodPost, "/api/v1/health-form/symptoms", token, dto.SymptomRequest{Symptom: symptom})
		require.Equal(t, http.StatusOK, code)
	}
	code, env = s.do(http.MethodDelete, "/api/v1/health-form/symptoms/Cough", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Headache", "Fever"}, decodeData[dto.HealthFormResponse](t, env).Symptoms)

	code, env = s.do(http.MethodGet, "/api/v1/symptoms?q=nau", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, decodeData[dto.SymptomSuggestionsResponse](t, env).Suggestions, "Nausea")

	for _, condition := range []string{"", "Sunburn"} {
		code, env = s.do(http.MethodPost, "/api/v1/health-form/conditions", token, dto.ConditionRequest{Condition: condition})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Error, "condition")
	}
	code, env = s.do(http.MethodPost, "/api/v1/health-form/conditions", token, dto.ConditionRequest{Condition: "Asthma"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Asthma"}, decodeData[dto.HealthFormResponse](t, env).MedicalHistory.Conditions)

	code, _ = s.do(http.MethodPost, "/api/v1/health-form/submit", token, nil)
	assert.Equal(t, http.StatusConflict, code)

	for i := 0; i < 3; i++ {
		code, env = s.do(http.MethodPost, "/api/v1/health-form/next", token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.False(t, decodeData[dto.HealthFormStepResponse](t, env).Submitted)
	}

	code, env = s.do(http.MethodPost, "/api/v1/health-form/next", token, nil)
	require.Equal(t, http.StatusOK, code)
	step := decodeData[dto.HealthFormStepResponse](t, env)
	require.True(t, step.Submitted)
	assert.Equal(t, entity.PagePredictions, step.State.CurrentPage)
	require.Len(t, step.State.Predictions, 1)
	assert.NotEmpty(t, step.State.Predictions[0].Diseases)

	code, env = s.do(http.MethodGet, "/api/v1/predictions/latest", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, step.State.Predictions[0].ID, decodeData[entity.PredictionResult](t, env).ID)
}

func TestRouter_Doctors(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()
	s.login(token)

	code, env := s.do(http.MethodGet, "/api/v1/doctors?specialty=Cardiology", token, nil)
	require.Equal(t, http.StatusOK, code)
	doctors := decodeData[[]dto.DoctorResponse](t, env)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Michael Chen", doctors[0].Name)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 4, env.Meta.Total)
	assert.Equal(t, 1, env.Meta.Filtered)

	code, env = s.do(http.MethodGet, "/api/v1/doctors?availability=phone", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "availability")

	code, _ = s.do(http.MethodGet, "/api/v1/doctors?refresh=maybe", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodGet, "/api/v1/doctors/specialties", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, decodeData[[]string](t, env), "Cardiology")
}

func TestRouter_Profile(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()
	s.login(token)

	code, env := s.do(http.MethodPut, "/api/v1/profile", token, map[string]string{"phone": "555-0100"})
	require.Equal(t, http.StatusOK, code)
	profile := decodeData[dto.UserResponse](t, env)
	assert.Equal(t, "555-0100", profile.Phone)
	assert.Equal(t, "John", profile.FirstName)

	code, env = s.do(http.MethodPut, "/api/v1/profile", token, map[string]string{"dateOfBirth": "yesterday"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "dateOfBirth")

	code, env = s.do(http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "555-0100", decodeData[dto.UserResponse](t, env).Phone)
}

func TestRouter_Onboarding(t *testing.T) {
	s := newTestServer(t, 0)
	token := s.session()

	code, _ := s.do(http.MethodPost, "/api/v1/auth/register", token, dto.RegisterRequest{
		FirstName: "Jane", LastName: "Roe", Email: "jane@example.com",
		Password: "secret", ConfirmPassword: "secret",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := s.do(http.MethodGet, "/api/v1/onboarding", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, decodeData[dto.OnboardingResponse](t, env).Step)

	code, env = s.do(http.MethodPost, "/api/v1/onboarding/skip", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.PageDashboard, decodeData[dto.StateResponse](t, env).CurrentPage)

	code, _ = s.do(http.MethodPost, "/api/v1/onboarding/next", token, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestRouter_AuthRateLimit(t *testing.T) {
	s := newTestServer(t, 2)
	token := s.session()

	for i := 0; i < 2; i++ {
		code, _ := s.do(http.MethodPost, "/api/v1/auth/login", token, dto.LoginRequest{})
		assert.Equal(t, http.StatusBadRequest, code)
	}
	code, _ := s.do(http.MethodPost, "/api/v1/auth/login", token, dto.LoginRequest{})
	assert.Equal(t, http.StatusTooManyRequests, code)

	code, _ = s.do(http.MethodGet, "/api/v1/state", token, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/state", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Less(t, rec.Code, 300)
}
