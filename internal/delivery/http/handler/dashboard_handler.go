package handler

import (
	"net/http"

	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase  usecase.DashboardUsecase
	onboardingUsecase usecase.OnboardingUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, onboardingUsecase usecase.OnboardingUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase:  dashboardUsecase,
		onboardingUsecase: onboardingUsecase,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) GetLatestPrediction(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	prediction, err := h.dashboardUsecase.GetLatestPrediction(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to get prediction")
		return
	}

	response.Success(w, http.StatusOK, "Prediction retrieved successfully", prediction)
}

func (h *DashboardHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	step, err := h.onboardingUsecase.GetStep(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to get onboarding")
		return
	}

	response.Success(w, http.StatusOK, "Onboarding step retrieved successfully", step)
}

func (h *DashboardHandler) NextOnboarding(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	next, err := h.onboardingUsecase.Next(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to advance onboarding")
		return
	}

	response.Success(w, http.StatusOK, "Onboarding advanced", next)
}

func (h *DashboardHandler) SkipOnboarding(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	state, err := h.onboardingUsecase.Skip(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to skip onboarding")
		return
	}

	response.Success(w, http.StatusOK, "Onboarding skipped", state)
}
