package service

import (
	"context"
	"sort"
	"time"

	"health-assessment-service/config"
	"health-assessment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AssessmentService interface {
	GenerateAssessment(ctx context.Context, hd entity.HealthData) (*entity.PredictionResult, error)
}

type assessmentService struct {
	log       *logrus.Logger
	predictor Predictor
	latency   Latency
	now       func() time.Time
}

func NewAssessmentService(log *logrus.Logger, predictor Predictor, latency Latency) AssessmentService {
	return &assessmentService{
		log:       log,
		predictor: predictor,
		latency:   latency,
		now:       time.Now,
	}
}

// NewPredictor picks the predictor for an ASSESSMENT_MODE value. Unknown
// modes get the rules predictor.
func NewPredictor(mode string) Predictor {
	if mode == config.AssessmentModeStub {
		return StubPredictor{}
	}
	return RulesPredictor{Fallback: StubPredictor{}}
}

func (s *assessmentService) GenerateAssessment(ctx context.Context, hd entity.HealthData) (*entity.PredictionResult, error) {
	if err := s.latency.Wait(ctx); err != nil {
		s.log.Warnf("Failed to generate assessment: %+v", err)
		return nil, err
	}

	diseases, tests := s.predictor.Predict(hd)
	if len(diseases) == 0 {
		diseases, tests = StubPredictor{}.Predict(hd)
	}
	sort.SliceStable(diseases, func(i, j int) bool {
		return diseases[i].Probability > diseases[j].Probability
	})
	if tests == nil {
		tests = []entity.RecommendedTest{}
	}

	result := &entity.PredictionResult{
		ID:               uuid.New().String(),
		Diseases:         diseases,
		RecommendedTests: tests,
		CreatedAt:        s.now().UTC().Format(time.RFC3339),
	}

	s.log.WithFields(logrus.Fields{
		"prediction_id": result.ID,
		"symptoms":      len(hd.Symptoms),
		"diseases":      len(result.Diseases),
	}).Debug("Assessment generated")

	return result, nil
}
