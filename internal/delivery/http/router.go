package http

import (
	"net/http"

	"health-assessment-service/internal/delivery/http/handler"
	"health-assessment-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	sessionHandler    *handler.SessionHandler
	authHandler       *handler.AuthHandler
	healthFormHandler *handler.HealthFormHandler
	doctorHandler     *handler.DoctorHandler
	profileHandler    *handler.ProfileHandler
	dashboardHandler  *handler.DashboardHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	authRateLimit     int
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	authHandler *handler.AuthHandler,
	healthFormHandler *handler.HealthFormHandler,
	doctorHandler *handler.DoctorHandler,
	profileHandler *handler.ProfileHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	authRateLimit int,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		sessionHandler:    sessionHandler,
		authHandler:       authHandler,
		healthFormHandler: healthFormHandler,
		doctorHandler:     doctorHandler,
		profileHandler:    profileHandler,
		dashboardHandler:  dashboardHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		authRateLimit:     authRateLimit,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests, which match no route, are answered too.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Session routes (public)
	api.HandleFunc("/sessions", r.sessionHandler.CreateSession).Methods(http.MethodPost)

	// Session routes (token required)
	session := api.NewRoute().Subrouter()
	session.Use(r.authMiddleware.Authenticate)
	session.HandleFunc("/sessions", r.sessionHandler.CloseSession).Methods(http.MethodDelete)
	session.HandleFunc("/state", r.sessionHandler.GetState).Methods(http.MethodGet)
	session.HandleFunc("/actions", r.sessionHandler.Dispatch).Methods(http.MethodPost)

	auth := session.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.AuthRateLimit(r.authRateLimit))
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	session.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Signed-in routes
	app := session.NewRoute().Subrouter()
	app.Use(middleware.RequireSignedIn)

	app.HandleFunc("/onboarding", r.dashboardHandler.GetOnboarding).Methods(http.MethodGet)
	app.HandleFunc("/onboarding/next", r.dashboardHandler.NextOnboarding).Methods(http.MethodPost)
	app.HandleFunc("/onboarding/skip", r.dashboardHandler.SkipOnboarding).Methods(http.MethodPost)

	app.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	app.HandleFunc("/predictions/latest", r.dashboardHandler.GetLatestPrediction).Methods(http.MethodGet)

	app.HandleFunc("/health-form", r.healthFormHandler.GetForm).Methods(http.MethodGet)
	app.HandleFunc("/health-form", r.healthFormHandler.UpdateForm).Methods(http.MethodPatch)
	app.HandleFunc("/health-form/symptoms", r.healthFormHandler.AddSymptom).Methods(http.MethodPost)
	app.HandleFunc("/health-form/symptoms/{symptom}", r.healthFormHandler.RemoveSymptom).Methods(http.MethodDelete)
	app.HandleFunc("/health-form/conditions", r.healthFormHandler.AddCondition).Methods(http.MethodPost)
	app.HandleFunc("/health-form/next", r.healthFormHandler.Next).Methods(http.MethodPost)
	app.HandleFunc("/health-form/back", r.healthFormHandler.Back).Methods(http.MethodPost)
	app.HandleFunc("/health-form/submit", r.healthFormHandler.Submit).Methods(http.MethodPost)
	app.HandleFunc("/symptoms", r.healthFormHandler.SuggestSymptoms).Methods(http.MethodGet)

	app.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	app.HandleFunc("/doctors/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	app.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	app.HandleFunc("/profile", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
