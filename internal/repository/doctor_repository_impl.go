package repository

import (
	"context"

	"health-assessment-service/internal/domain/entity"
	domainRepo "health-assessment-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository reads doctors from the "doctors" table.
func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("sort_order, id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// SeedDoctors inserts the built-in catalog, leaving rows that already exist untouched.
func SeedDoctors(ctx context.Context, db *gorm.DB) error {
	doctors := entity.DoctorCatalog()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&doctors).Error
}
