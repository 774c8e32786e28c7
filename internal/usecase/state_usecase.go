package usecase

import (
	"context"

	"health-assessment-service/internal/converter"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/store"

	"github.com/sirupsen/logrus"
)

// StateUsecase exposes the raw read and dispatch contracts of a session store.
type StateUsecase interface {
	GetState(ctx context.Context, sess *service.Session) *dto.StateResponse
	Dispatch(ctx context.Context, sess *service.Session, raw []byte) (*dto.StateResponse, error)
}

type stateUsecase struct {
	log *logrus.Logger
}

func NewStateUsecase(log *logrus.Logger) StateUsecase {
	return &stateUsecase{log: log}
}

func (u *stateUsecase) GetState(ctx context.Context, sess *service.Session) *dto.StateResponse {
	return converter.StateToResponse(sess.Store.Snapshot())
}

func (u *stateUsecase) Dispatch(ctx context.Context, sess *service.Session, raw []byte) (*dto.StateResponse, error) {
	action, err := store.DecodeAction(raw)
	if err != nil {
		u.log.Warnf("Failed to decode action: %+v", err)
		return nil, err
	}

	return converter.StateToResponse(sess.Store.Dispatch(action)), nil
}
