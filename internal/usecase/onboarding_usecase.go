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

type OnboardingUsecase interface {
	GetStep(ctx context.Context, sess *service.Session) (*dto.OnboardingResponse, error)
	Next(ctx context.Context, sess *service.Session) (*dto.OnboardingNextResponse, error)
	Skip(ctx context.Context, sess *service.Session) (*dto.StateResponse, error)
}

type onboardingUsecase struct {
	log *logrus.Logger
}

func NewOnboardingUsecase(log *logrus.Logger) OnboardingUsecase {
	return &onboardingUsecase{log: log}
}

func (u *onboardingUsecase) GetStep(ctx context.Context, sess *service.Session) (*dto.OnboardingResponse, error) {
	var resp *dto.OnboardingResponse
	if !sess.Onboarding(func(cursor *int) { resp = onboardingStep(*cursor) }) {
		return nil, ErrWrongPage
	}
	return resp, nil
}

// Next moves to the following slide. Past the last one the session goes to
// the dashboard.
func (u *onboardingUsecase) Next(ctx context.Context, sess *service.Session) (*dto.OnboardingNextResponse, error) {
	var (
		resp *dto.OnboardingResponse
		done bool
	)
	ok := sess.Onboarding(func(cursor *int) {
		if *cursor >= len(entity.OnboardingSteps)-1 {
			done = true
			return
		}
		*cursor++
		resp = onboardingStep(*cursor)
	})
	if !ok {
		return nil, ErrWrongPage
	}
	if !done {
		return &dto.OnboardingNextResponse{Onboarding: resp}, nil
	}

	state, err := u.finish(sess)
	if err != nil {
		return nil, err
	}
	return &dto.OnboardingNextResponse{Completed: true, State: state}, nil
}

func (u *onboardingUsecase) Skip(ctx context.Context, sess *service.Session) (*dto.StateResponse, error) {
	return u.finish(sess)
}

func (u *onboardingUsecase) finish(sess *service.Session) (*dto.StateResponse, error) {
	onOnboarding := func(s store.State) bool { return s.CurrentPage == entity.PageOnboarding }
	state, ok := sess.Store.DispatchIf(onOnboarding, store.SetPage{Page: entity.PageDashboard})
	if !ok {
		return nil, ErrWrongPage
	}

	u.log.WithField("session_id", sess.ID).Debug("Onboarding finished")
	return converter.StateToResponse(state), nil
}

func onboardingStep(i int) *dto.OnboardingResponse {
	step := entity.OnboardingSteps[i]
	return &dto.OnboardingResponse{
		Step:        i,
		TotalSteps:  len(entity.OnboardingSteps),
		Title:       step.Title,
		Description: step.Description,
		IsLastStep:  i == len(entity.OnboardingSteps)-1,
	}
}
