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

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, sess *service.Session, query *dto.DoctorListQuery) (*dto.DoctorListResponse, error)
	GetSpecialties(ctx context.Context, sess *service.Session) ([]string, error)
}

type doctorUsecase struct {
	log       *logrus.Logger
	directory service.DoctorDirectory
}

func NewDoctorUsecase(log *logrus.Logger, directory service.DoctorDirectory) DoctorUsecase {
	return &doctorUsecase{
		log:       log,
		directory: directory,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, sess *service.Session, query *dto.DoctorListQuery) (*dto.DoctorListResponse, error) {
	doctors, err := u.loadDoctors(ctx, sess, query.Refresh)
	if err != nil {
		return nil, err
	}

	filtered := entity.FilterDoctors(doctors, converter.DoctorListQueryToFilter(query))
	return &dto.DoctorListResponse{
		Doctors:  converter.DoctorsToResponses(filtered),
		Total:    len(doctors),
		Filtered: len(filtered),
	}, nil
}

func (u *doctorUsecase) GetSpecialties(ctx context.Context, sess *service.Session) ([]string, error) {
	doctors, err := u.loadDoctors(ctx, sess, false)
	if err != nil {
		return nil, err
	}
	return entity.Specialties(doctors), nil
}

// loadDoctors returns the doctors held by the store, fetching the directory
// first when the store has none yet or a refresh was asked for.
func (u *doctorUsecase) loadDoctors(ctx context.Context, sess *service.Session, refresh bool) ([]entity.Doctor, error) {
	state, err := requireAuthenticated(sess)
	if err != nil {
		return nil, err
	}
	if len(state.Doctors) > 0 && !refresh {
		return state.Doctors, nil
	}

	state, err = runTask(ctx, u.log, sess, func(ctx context.Context) ([]store.Action, error) {
		doctors, err := u.directory.ListDoctors(ctx)
		if err != nil {
			return nil, err
		}
		return []store.Action{store.SetDoctors{Doctors: doctors}}, nil
	})
	if err != nil {
		return nil, err
	}
	return state.Doctors, nil
}
