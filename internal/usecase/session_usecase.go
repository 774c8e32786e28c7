package usecase

import (
	"context"
	"errors"

	"health-assessment-service/internal/converter"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/repository"
	"health-assessment-service/internal/service"
	"health-assessment-service/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionUsecase interface {
	CreateSession(ctx context.Context) (*dto.SessionResponse, error)
	CloseSession(ctx context.Context, sess *service.Session, tokenID string) error
}

type sessionUsecase struct {
	log        *logrus.Logger
	registry   *service.SessionRegistry
	tokenRepo  repository.SessionTokenRepository
	jwtService *jwt.JWTService
}

func NewSessionUsecase(
	log *logrus.Logger,
	registry *service.SessionRegistry,
	tokenRepo repository.SessionTokenRepository,
	jwtService *jwt.JWTService,
) SessionUsecase {
	return &sessionUsecase{
		log:        log,
		registry:   registry,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

func (u *sessionUsecase) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	sess := u.registry.Create()

	token, tokenID, err := u.jwtService.GenerateSessionToken(sess.ID)
	if err != nil {
		u.log.Warnf("Failed to sign session token: %+v", err)
		u.registry.Delete(sess.ID)
		return nil, err
	}

	if err := u.tokenRepo.Save(ctx, sess.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session token: %+v", err)
		u.registry.Delete(sess.ID)
		return nil, err
	}

	return &dto.SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
		State:     converter.StateToResponse(sess.Store.Snapshot()),
	}, nil
}

func (u *sessionUsecase) CloseSession(ctx context.Context, sess *service.Session, tokenID string) error {
	if err := u.tokenRepo.Revoke(ctx, sess.ID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session token: %+v", err)
		return err
	}

	if !u.registry.Delete(sess.ID) {
		return ErrSessionNotFound
	}
	return nil
}
