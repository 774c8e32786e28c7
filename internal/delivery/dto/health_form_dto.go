package dto

import "health-assessment-service/internal/domain/entity"

// HealthFormPatchRequest edits the vitals and free-text history of the draft.
// Absent fields are left unchanged.
type HealthFormPatchRequest struct {
	Age           *int                  `json:"age" validate:"omitempty,gte=0,lte=150"`
	Weight        *float64              `json:"weight" validate:"omitempty,gt=0,lte=700"`
	Height        *float64              `json:"height" validate:"omitempty,gt=0,lte=300"`
	BloodPressure *BloodPressureRequest `json:"bloodPressure"`
	Allergies     *string               `json:"allergies"`
	Medications   *string               `json:"medications"`
}

type BloodPressureRequest struct {
	Systolic  int `json:"systolic" validate:"gte=0,lte=300"`
	Diastolic int `json:"diastolic" validate:"gte=0,lte=300"`
}

type SymptomRequest struct {
	Symptom string `json:"symptom" validate:"required,max=100"`
}

type ConditionRequest struct {
	Condition string `json:"condition" validate:"required"`
}

type HealthFormResponse struct {
	Step                int                   `json:"step"`
	TotalSteps          int                   `json:"totalSteps"`
	Progress            int                   `json:"progress"`
	IsLastStep          bool                  `json:"isLastStep"`
	Age                 *int                  `json:"age"`
	Weight              *float64              `json:"weight"`
	Height              *float64              `json:"height"`
	BloodPressure       *entity.BloodPressure `json:"bloodPressure"`
	Symptoms            []string              `json:"symptoms"`
	MedicalHistory      entity.MedicalHistory `json:"medicalHistory"`
	QuickPicks          []string              `json:"quickPicks"`
	AvailableConditions []string              `json:"availableConditions"`
}

type SymptomSuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// HealthFormStepResponse answers "next": either the advanced draft or, when
// the review step was confirmed, the state after submission.
type HealthFormStepResponse struct {
	Submitted bool                `json:"submitted"`
	Form      *HealthFormResponse `json:"form,omitempty"`
	State     *StateResponse      `json:"state,omitempty"`
}
