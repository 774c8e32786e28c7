package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"health-assessment-service/internal/delivery/http/middleware"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/store"
	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/response"
	"health-assessment-service/pkg/validator"

	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// currentSession returns the session resolved by the auth middleware.
func currentSession(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return nil, false
	}
	return sess, true
}

// writeError maps use case errors to responses. fallback is the message of
// the 500 answer.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.Is(err, store.ErrMalformedAction), errors.Is(err, store.ErrMissingPayload):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, "Please sign in first")
	case errors.Is(err, usecase.ErrSessionNotFound):
		response.NotFound(w, "Session not found")
	case errors.Is(err, usecase.ErrPredictionNotFound):
		response.NotFound(w, "No prediction available yet")
	case errors.Is(err, usecase.ErrRequestSuperseded):
		response.Conflict(w, "Request was superseded by navigation")
	case errors.Is(err, usecase.ErrWrongPage):
		response.Conflict(w, "Not available on the current page")
	case errors.Is(err, usecase.ErrFormIncomplete):
		response.Conflict(w, "Complete every step before submitting")
	case errors.Is(err, service.ErrServiceUnavailable):
		response.ServiceUnavailable(w, "Service temporarily unavailable, please try again")
	case errors.Is(err, context.Canceled):
		// Client went away.
	default:
		response.InternalServerError(w, fallback)
	}
}
