package service

import (
	"context"

	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type DoctorDirectory interface {
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
}

type doctorDirectory struct {
	log     *logrus.Logger
	repo    repository.DoctorRepository
	latency Latency
	group   singleflight.Group
}

func NewDoctorDirectory(log *logrus.Logger, repo repository.DoctorRepository, latency Latency) DoctorDirectory {
	return &doctorDirectory{
		log:     log,
		repo:    repo,
		latency: latency,
	}
}

// ListDoctors returns the catalog after the simulated delay. Concurrent
// callers share one load; each gets its own copy of the result.
func (s *doctorDirectory) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	ch := s.group.DoChan("doctors", func() (interface{}, error) {
		// Detached so one caller giving up does not fail the others.
		loadCtx := context.WithoutCancel(ctx)
		if err := s.latency.Wait(loadCtx); err != nil {
			return nil, err
		}
		return s.repo.FindAll(loadCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.log.Warnf("Failed to list doctors: %+v", res.Err)
			return nil, res.Err
		}
		doctors := entity.CloneDoctors(res.Val.([]entity.Doctor))
		if doctors == nil {
			doctors = []entity.Doctor{}
		}
		return doctors, nil
	}
}
