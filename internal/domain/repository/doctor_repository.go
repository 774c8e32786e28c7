package repository

import (
	"context"

	"health-assessment-service/internal/domain/entity"
)

// DoctorRepository reads the doctor directory in catalog order.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}
