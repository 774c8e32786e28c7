package store

import "health-assessment-service/internal/domain/entity"

// State is everything a session shows. Values handed out by the store are
// copies; mutating them never changes the store.
type State struct {
	CurrentPage     entity.Page
	User            *entity.User
	IsAuthenticated bool
	HealthData      entity.PartialHealthData
	Predictions     []entity.PredictionResult
	Doctors         []entity.Doctor
	IsLoading       bool
	Error           *string
}

// InitialState is where every new session starts: on the login page, signed out.
func InitialState() State {
	return State{
		CurrentPage: entity.PageLogin,
		Predictions: []entity.PredictionResult{},
		Doctors:     []entity.Doctor{},
	}
}

// Clone deep-copies s.
func (s State) Clone() State {
	c := s
	c.User = s.User.Clone()
	c.HealthData = s.HealthData.Clone()
	c.Predictions = entity.ClonePredictions(s.Predictions)
	c.Doctors = entity.CloneDoctors(s.Doctors)
	if s.Error != nil {
		msg := *s.Error
		c.Error = &msg
	}
	return c
}

// LatestPrediction returns the current assessment, if any.
func (s State) LatestPrediction() (entity.PredictionResult, bool) {
	if len(s.Predictions) == 0 {
		return entity.PredictionResult{}, false
	}
	return s.Predictions[0], true
}
