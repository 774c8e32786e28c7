package usecase

import (
	"context"
	"errors"

	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/service"
)

var ErrPredictionNotFound = errors.New("no prediction yet")

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, sess *service.Session) (*dto.DashboardResponse, error)
	GetLatestPrediction(ctx context.Context, sess *service.Session) (*entity.PredictionResult, error)
}

type dashboardUsecase struct{}

func NewDashboardUsecase() DashboardUsecase {
	return &dashboardUsecase{}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context, sess *service.Session) (*dto.DashboardResponse, error) {
	state, err := requireAuthenticated(sess)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		HealthCheckups:   len(state.Predictions),
		ReportsGenerated: len(state.Predictions),
		QuickActions: []dto.QuickAction{
			{Label: "New Health Check", Page: entity.PageHealthForm},
			{Label: "Find Doctors", Page: entity.PageDoctors},
		},
	}
	if state.User != nil {
		resp.WelcomeName = state.User.FirstName
	}
	if latest, ok := state.LatestPrediction(); ok {
		resp.LatestPrediction = &latest
		resp.QuickActions = append(resp.QuickActions, dto.QuickAction{Label: "View Reports", Page: entity.PagePredictions})
	}
	return resp, nil
}

func (u *dashboardUsecase) GetLatestPrediction(ctx context.Context, sess *service.Session) (*entity.PredictionResult, error) {
	state, err := requireAuthenticated(sess)
	if err != nil {
		return nil, err
	}
	latest, ok := state.LatestPrediction()
	if !ok {
		return nil, ErrPredictionNotFound
	}
	return &latest, nil
}
