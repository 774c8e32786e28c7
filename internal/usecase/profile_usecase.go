package usecase

import (
	"context"

	"health-assessment-service/internal/converter"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/store"

	"github.com/sirupsen/logrus"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, sess *service.Session) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, sess *service.Session, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileUsecase struct {
	log *logrus.Logger
}

func NewProfileUsecase(log *logrus.Logger) ProfileUsecase {
	return &profileUsecase{
		log: log,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, sess *service.Session) (*dto.UserResponse, error) {
	state, err := requireAuthenticated(sess)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(state.User), nil
}

// UpdateProfile merges the edits over the signed-in user. Nothing is committed
// if the session logged out in the meantime.
func (u *profileUsecase) UpdateProfile(ctx context.Context, sess *service.Session, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	state, err := requireAuthenticated(sess)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrNotAuthenticated
	}

	updated := state.User.Apply(converter.UpdateProfileRequestToPatch(req))
	next, ok := sess.Store.DispatchIf(func(s store.State) bool {
		return s.IsAuthenticated && s.User != nil && s.User.ID == updated.ID
	}, store.SetUser{User: updated})
	if !ok {
		return nil, ErrNotAuthenticated
	}

	u.log.WithField("session_id", sess.ID).Info("Profile updated")
	return converter.UserToResponse(next.User), nil
}
