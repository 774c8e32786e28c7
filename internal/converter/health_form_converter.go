package converter

import (
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
)

func HealthFormToResponse(f *entity.HealthForm) *dto.HealthFormResponse {
	c := f.Clone()
	return &dto.HealthFormResponse{
		Step:                c.Step,
		TotalSteps:          entity.HealthFormTotalSteps,
		Progress:            c.Progress(),
		IsLastStep:          c.IsLastStep(),
		Age:                 c.Age,
		Weight:              c.Weight,
		Height:              c.Height,
		BloodPressure:       c.BloodPressure,
		Symptoms:            c.Symptoms,
		MedicalHistory:      c.MedicalHistory,
		QuickPicks:          c.QuickPicks(),
		AvailableConditions: c.AvailableConditions(),
	}
}

// ApplyHealthFormPatch writes the present fields of req into the draft.
func ApplyHealthFormPatch(f *entity.HealthForm, req *dto.HealthFormPatchRequest) {
	if req.Age != nil {
		v := *req.Age
		f.Age = &v
	}
	if req.Weight != nil {
		v := *req.Weight
		f.Weight = &v
	}
	if req.Height != nil {
		v := *req.Height
		f.Height = &v
	}
	if req.BloodPressure != nil {
		f.BloodPressure = &entity.BloodPressure{
			Systolic:  req.BloodPressure.Systolic,
			Diastolic: req.BloodPressure.Diastolic,
		}
	}
	if req.Allergies != nil {
		f.SetAllergies(*req.Allergies)
	}
	if req.Medications != nil {
		f.SetMedications(*req.Medications)
	}
}
