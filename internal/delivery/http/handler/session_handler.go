package handler

import (
	"net/http"

	"health-assessment-service/internal/delivery/http/middleware"
	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/response"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	stateUsecase   usecase.StateUsecase
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, stateUsecase usecase.StateUsecase) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		stateUsecase:   stateUsecase,
	}
}

// CreateSession starts a fresh application instance on the login page
// @Summary Create session
// @Tags Session
// @Produce json
// @Success 201 {object} response.Response
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUsecase.CreateSession(r.Context())
	if err != nil {
		writeError(w, err, "Failed to create session")
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

// CloseSession revokes the token and discards the session state
// @Summary Close session
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /sessions [delete]
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.sessionUsecase.CloseSession(r.Context(), sess, tokenID); err != nil {
		writeError(w, err, "Failed to close session")
		return
	}

	response.Success(w, http.StatusOK, "Session closed successfully", nil)
}

// GetState returns the full store snapshot
// @Summary Get state
// @Tags State
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /state [get]
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, "State retrieved successfully", h.stateUsecase.GetState(r.Context(), sess))
}

// Dispatch applies one wire-format action to the session store
// @Summary Dispatch action
// @Tags State
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /actions [post]
func (h *SessionHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	raw, err := readBody(w, r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	state, err := h.stateUsecase.Dispatch(r.Context(), sess, raw)
	if err != nil {
		writeError(w, err, "Failed to dispatch action")
		return
	}

	response.Success(w, http.StatusOK, "Action dispatched", state)
}
