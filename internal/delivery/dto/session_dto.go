package dto

import "health-assessment-service/internal/domain/entity"

type SessionResponse struct {
	SessionID string         `json:"sessionId"`
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expiresIn"` // seconds
	State     *StateResponse `json:"state"`
}

// StateResponse is the read contract: a full snapshot of a session store.
type StateResponse struct {
	CurrentPage     entity.Page               `json:"currentPage"`
	User            *UserResponse             `json:"user"`
	IsAuthenticated bool                      `json:"isAuthenticated"`
	HealthData      entity.PartialHealthData  `json:"healthData"`
	Predictions     []entity.PredictionResult `json:"predictions"`
	Doctors         []DoctorResponse          `json:"doctors"`
	IsLoading       bool                      `json:"isLoading"`
	Error           *string                   `json:"error"`
}
