package dto

import "health-assessment-service/internal/domain/entity"

type DashboardResponse struct {
	WelcomeName      string                   `json:"welcomeName"`
	HealthCheckups   int                      `json:"healthCheckups"`
	ReportsGenerated int                      `json:"reportsGenerated"`
	LatestPrediction *entity.PredictionResult `json:"latestPrediction,omitempty"`
	QuickActions     []QuickAction            `json:"quickActions"`
}

// QuickAction is a shortcut the client can follow by dispatching SET_PAGE.
type QuickAction struct {
	Label string      `json:"label"`
	Page  entity.Page `json:"page"`
}

type OnboardingResponse struct {
	Step        int    `json:"step"` // 0-based
	TotalSteps  int    `json:"totalSteps"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsLastStep  bool   `json:"isLastStep"`
}

type OnboardingNextResponse struct {
	Completed  bool                `json:"completed"`
	Onboarding *OnboardingResponse `json:"onboarding,omitempty"`
	State      *StateResponse      `json:"state,omitempty"`
}

type DoctorListResponse struct {
	Doctors  []DoctorResponse `json:"doctors"`
	Total    int              `json:"total"`
	Filtered int              `json:"filtered"`
}
