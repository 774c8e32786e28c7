package usecase

import (
	"context"

	"health-assessment-service/internal/converter"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/store"

	"github.com/sirupsen/logrus"
)

type AuthUsecase interface {
	Login(ctx context.Context, sess *service.Session, req *dto.LoginRequest) (*dto.StateResponse, error)
	Register(ctx context.Context, sess *service.Session, req *dto.RegisterRequest) (*dto.StateResponse, error)
	Logout(ctx context.Context, sess *service.Session) *dto.StateResponse
}

type authUsecase struct {
	log         *logrus.Logger
	authService service.AuthService
}

func NewAuthUsecase(log *logrus.Logger, authService service.AuthService) AuthUsecase {
	return &authUsecase{
		log:         log,
		authService: authService,
	}
}

// Login signs the session in and moves it to the dashboard. Credentials the
// service rejects come back as field errors and leave the store unchanged.
func (u *authUsecase) Login(ctx context.Context, sess *service.Session, req *dto.LoginRequest) (*dto.StateResponse, error) {
	creds := converter.LoginRequestToCredentials(req)

	state, err := runTask(ctx, u.log, sess, func(ctx context.Context) ([]store.Action, error) {
		user, err := u.authService.Login(ctx, creds)
		if err != nil {
			return nil, err
		}
		return []store.Action{
			store.SetUser{User: *user},
			store.SetPage{Page: entity.PageDashboard},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return converter.StateToResponse(state), nil
}

// Register signs the session in and starts onboarding.
func (u *authUsecase) Register(ctx context.Context, sess *service.Session, req *dto.RegisterRequest) (*dto.StateResponse, error) {
	reg := converter.RegisterRequestToRegistration(req)

	state, err := runTask(ctx, u.log, sess, func(ctx context.Context) ([]store.Action, error) {
		user, err := u.authService.Register(ctx, reg)
		if err != nil {
			return nil, err
		}
		return []store.Action{
			store.SetUser{User: *user},
			store.SetPage{Page: entity.PageOnboarding},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return converter.StateToResponse(state), nil
}

// Logout forgets the user. Health data and predictions stay in the store.
func (u *authUsecase) Logout(ctx context.Context, sess *service.Session) *dto.StateResponse {
	return converter.StateToResponse(sess.Store.Dispatch(store.Logout{}))
}
