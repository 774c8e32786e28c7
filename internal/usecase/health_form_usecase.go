package usecase

import (
	"context"
	"errors"

	"health-assessment-service/internal/converter"
	"health-assessment-service/internal/delivery/dto"
	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/store"
	"health-assessment-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrFormIncomplete = errors.New("health form can only be submitted from the review step")

type HealthFormUsecase interface {
	GetForm(ctx context.Context, sess *service.Session) (*dto.HealthFormResponse, error)
	UpdateForm(ctx context.Context, sess *service.Session, req *dto.HealthFormPatchRequest) (*dto.HealthFormResponse, error)
	AddSymptom(ctx context.Context, sess *service.Session, req *dto.SymptomRequest) (*dto.HealthFormResponse, error)
	RemoveSymptom(ctx context.Context, sess *service.Session, symptom string) (*dto.HealthFormResponse, error)
	AddCondition(ctx context.Context, sess *service.Session, req *dto.ConditionRequest) (*dto.HealthFormResponse, error)
	SuggestSymptoms(ctx context.Context, sess *service.Session, query string) (*dto.SymptomSuggestionsResponse, error)
	Next(ctx context.Context, sess *service.Session) (*dto.HealthFormStepResponse, error)
	Back(ctx context.Context, sess *service.Session) (*dto.HealthFormResponse, error)
	Submit(ctx context.Context, sess *service.Session) (*dto.StateResponse, error)
}

type healthFormUsecase struct {
	log               *logrus.Logger
	assessmentService service.AssessmentService
}

func NewHealthFormUsecase(log *logrus.Logger, assessmentService service.AssessmentService) HealthFormUsecase {
	return &healthFormUsecase{
		log:               log,
		assessmentService: assessmentService,
	}
}

// edit runs fn on the draft of an authenticated session sitting on the
// health-form page and returns the draft afterwards.
func (u *healthFormUsecase) edit(sess *service.Session, fn func(f *entity.HealthForm) error) (*dto.HealthFormResponse, error) {
	if _, err := requireAuthenticated(sess); err != nil {
		return nil, err
	}

	var resp *dto.HealthFormResponse
	ok, err := sess.HealthForm(func(_ store.State, f *entity.HealthForm) error {
		if err := fn(f); err != nil {
			return err
		}
		resp = converter.HealthFormToResponse(f)
		return nil
	})
	if !ok {
		return nil, ErrWrongPage
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (u *healthFormUsecase) GetForm(ctx context.Context, sess *service.Session) (*dto.HealthFormResponse, error) {
	return u.edit(sess, func(*entity.HealthForm) error { return nil })
}

func (u *healthFormUsecase) UpdateForm(ctx context.Context, sess *service.Session, req *dto.HealthFormPatchRequest) (*dto.HealthFormResponse, error) {
	return u.edit(sess, func(f *entity.HealthForm) error {
		converter.ApplyHealthFormPatch(f, req)
		return nil
	})
}

func (u *healthFormUsecase) AddSymptom(ctx context.Context, sess *service.Session, req *dto.SymptomRequest) (*dto.HealthFormResponse, error) {
	return u.edit(sess, func(f *entity.HealthForm) error {
		f.AddSymptom(req.Symptom)
		return nil
	})
}

func (u *healthFormUsecase) RemoveSymptom(ctx context.Context, sess *service.Session, symptom string) (*dto.HealthFormResponse, error) {
	return u.edit(sess, func(f *entity.HealthForm) error {
		f.RemoveSymptom(symptom)
		return nil
	})
}

func (u *healthFormUsecase) AddCondition(ctx context.Context, sess *service.Session, req *dto.ConditionRequest) (*dto.HealthFormResponse, error) {
	if !isMedicalCondition(req.Condition) {
		return nil, validator.NewValidationError("condition", "Condition is not a selectable medical condition")
	}
	return u.edit(sess, func(f *entity.HealthForm) error {
		f.AddCondition(req.Condition)
		return nil
	})
}

func (u *healthFormUsecase) SuggestSymptoms(ctx context.Context, sess *service.Session, query string) (*dto.SymptomSuggestionsResponse, error) {
	var suggestions []string
	if _, err := u.edit(sess, func(f *entity.HealthForm) error {
		suggestions = f.SuggestSymptoms(query)
		return nil
	}); err != nil {
		return nil, err
	}
	return &dto.SymptomSuggestionsResponse{Query: query, Suggestions: suggestions}, nil
}

func (u *healthFormUsecase) Back(ctx context.Context, sess *service.Session) (*dto.HealthFormResponse, error) {
	return u.edit(sess, func(f *entity.HealthForm) error {
		f.Back()
		return nil
	})
}

// Next advances the wizard; on the review step it submits instead.
func (u *healthFormUsecase) Next(ctx context.Context, sess *service.Session) (*dto.HealthFormStepResponse, error) {
	var submit bool
	form, err := u.edit(sess, func(f *entity.HealthForm) error {
		submit = f.Next()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !submit {
		return &dto.HealthFormStepResponse{Form: form}, nil
	}

	state, err := u.Submit(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &dto.HealthFormStepResponse{Submitted: true, State: state}, nil
}

// Submit stores the intake right away, then requests an assessment. The
// result replaces any earlier prediction and opens the predictions page.
func (u *healthFormUsecase) Submit(ctx context.Context, sess *service.Session) (*dto.StateResponse, error) {
	var payload entity.PartialHealthData
	if _, err := u.edit(sess, func(f *entity.HealthForm) error {
		if !f.IsLastStep() {
			return ErrFormIncomplete
		}
		payload = f.Payload()
		return nil
	}); err != nil {
		return nil, err
	}

	saved := sess.Store.Dispatch(store.SetHealthData{Data: payload})
	healthData := saved.HealthData.Complete()

	state, err := runTask(ctx, u.log, sess, func(ctx context.Context) ([]store.Action, error) {
		result, err := u.assessmentService.GenerateAssessment(ctx, healthData)
		if err != nil {
			return nil, err
		}
		return []store.Action{
			store.SetPredictions{Predictions: []entity.PredictionResult{*result}},
			store.SetPage{Page: entity.PagePredictions},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return converter.StateToResponse(state), nil
}

func isMedicalCondition(c string) bool {
	for _, known := range entity.MedicalConditions {
		if known == c {
			return true
		}
	}
	return false
}
