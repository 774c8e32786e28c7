package store

import "health-assessment-service/internal/domain/entity"

// Reduce computes the state that follows a. It is total: actions it does not
// know leave the state unchanged. Neither s nor the payload of a is modified,
// and the result shares no slices or pointers with them.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch act := a.(type) {
	case SetPage:
		next.CurrentPage = act.Page

	case SetUser:
		u := act.User
		next.User = &u
		next.IsAuthenticated = true

	case Logout:
		next.User = nil
		next.IsAuthenticated = false
		next.CurrentPage = entity.PageLogin

	case SetHealthData:
		next.HealthData = next.HealthData.Merge(act.Data)

	case SetPredictions:
		next.Predictions = entity.ClonePredictions(act.Predictions)
		if next.Predictions == nil {
			next.Predictions = []entity.PredictionResult{}
		}

	case SetDoctors:
		next.Doctors = entity.CloneDoctors(act.Doctors)
		if next.Doctors == nil {
			next.Doctors = []entity.Doctor{}
		}

	case SetLoading:
		next.IsLoading = act.Loading

	case SetError:
		next.Error = nil
		if act.Message != nil {
			msg := *act.Message
			next.Error = &msg
		}
	}

	return next
}

// ReduceAll folds actions over s in order.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
