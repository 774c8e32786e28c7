package service

import (
	"context"
	"strings"

	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

// mockUserID is the id every authenticated user gets from the mock backend.
const mockUserID = "1"

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// AuthService fabricates users. Field errors are reported as
// *validator.ValidationError before any delay starts.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*entity.User, error)
	Register(ctx context.Context, reg Registration) (*entity.User, error)
}

type authService struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	latency   Latency
}

func NewAuthService(log *logrus.Logger, v *validator.CustomValidator, latency Latency) AuthService {
	return &authService{
		log:       log,
		validator: v,
		latency:   latency,
	}
}

func (s *authService) Login(ctx context.Context, creds Credentials) (*entity.User, error) {
	if err := s.validator.Check(creds); err != nil {
		return nil, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		s.log.Warnf("Failed to authenticate %s: %+v", creds.Email, err)
		return nil, err
	}

	return &entity.User{
		ID:        mockUserID,
		Email:     strings.TrimSpace(creds.Email),
		FirstName: "John",
		LastName:  "Doe",
	}, nil
}

func (s *authService) Register(ctx context.Context, reg Registration) (*entity.User, error) {
	if err := s.validator.Check(reg); err != nil {
		return nil, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		s.log.Warnf("Failed to register %s: %+v", reg.Email, err)
		return nil, err
	}

	return &entity.User{
		ID:        mockUserID,
		Email:     strings.TrimSpace(reg.Email),
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Phone:     reg.Phone,
	}, nil
}
