package converter

import (
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/store"
)

// StateToResponse converts a store snapshot to the read contract.
func StateToResponse(s store.State) *dto.StateResponse {
	predictions := s.Predictions
	if predictions == nil {
		predictions = []entity.PredictionResult{}
	}

	return &dto.StateResponse{
		CurrentPage:     s.CurrentPage,
		User:            UserToResponse(s.User),
		IsAuthenticated: s.IsAuthenticated,
		HealthData:      s.HealthData,
		Predictions:     predictions,
		Doctors:         DoctorsToResponses(s.Doctors),
		IsLoading:       s.IsLoading,
		Error:           s.Error,
	}
}
