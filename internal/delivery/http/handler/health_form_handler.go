package handler

import (
	"net/http"

	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/response"
	"health-assessment-service/pkg/validator"

	"github.com/gorilla/mux"
)

type HealthFormHandler struct {
	healthFormUsecase usecase.HealthFormUsecase
	validator         *validator.CustomValidator
}

func NewHealthFormHandler(healthFormUsecase usecase.HealthFormUsecase, validator *validator.CustomValidator) *HealthFormHandler {
	return &HealthFormHandler{
		healthFormUsecase: healthFormUsecase,
		validator:         validator,
	}
}

func (h *HealthFormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	form, err := h.healthFormUsecase.GetForm(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to get health form")
		return
	}

	response.Success(w, http.StatusOK, "Health form retrieved successfully", form)
}

func (h *HealthFormHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.HealthFormPatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.healthFormUsecase.UpdateForm(r.Context(), sess, &req)
	if err != nil {
		writeError(w, err, "Failed to update health form")
		return
	}

	response.Success(w, http.StatusOK, "Health form updated successfully", form)
}

func (h *HealthFormHandler) AddSymptom(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.SymptomRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.healthFormUsecase.AddSymptom(r.Context(), sess, &req)
	if err != nil {
		writeError(w, err, "Failed to add symptom")
		return
	}

	response.Success(w, http.StatusOK, "Symptom added successfully", form)
}

func (h *HealthFormHandler) RemoveSymptom(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	form, err := h.healthFormUsecase.RemoveSymptom(r.Context(), sess, mux.Vars(r)["symptom"])
	if err != nil {
		writeError(w, err, "Failed to remove symptom")
		return
	}

	response.Success(w, http.StatusOK, "Symptom removed successfully", form)
}

func (h *HealthFormHandler) AddCondition(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.ConditionRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.healthFormUsecase.AddCondition(r.Context(), sess, &req)
	if err != nil {
		writeError(w, err, "Failed to add condition")
		return
	}

	response.Success(w, http.StatusOK, "Condition added successfully", form)
}

func (h *HealthFormHandler) SuggestSymptoms(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	suggestions, err := h.healthFormUsecase.SuggestSymptoms(r.Context(), sess, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err, "Failed to suggest symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", suggestions)
}

// Next moves the wizard forward. On the review step it submits the form.
func (h *HealthFormHandler) Next(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	step, err := h.healthFormUsecase.Next(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to advance health form")
		return
	}

	message := "Health form advanced"
	if step.Submitted {
		message = "Health assessment generated"
	}
	response.Success(w, http.StatusOK, message, step)
}

func (h *HealthFormHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	form, err := h.healthFormUsecase.Back(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to go back")
		return
	}

	response.Success(w, http.StatusOK, "Health form moved back", form)
}

func (h *HealthFormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	state, err := h.healthFormUsecase.Submit(r.Context(), sess)
	if err != nil {
		writeError(w, err, "Failed to generate health assessment")
		return
	}

	response.Success(w, http.StatusOK, "Health assessment generated", state)
}
