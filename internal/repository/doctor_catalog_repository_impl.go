package repository

import (
	"context"

	"health-assessment-service/internal/domain/entity"
	domainRepo "health-assessment-service/internal/domain/repository"
)

type doctorCatalogRepository struct{}

// NewDoctorCatalogRepository serves the built-in four-doctor catalog.
func NewDoctorCatalogRepository() domainRepo.DoctorRepository {
	return &doctorCatalogRepository{}
}

func (r *doctorCatalogRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.DoctorCatalog(), nil
}
