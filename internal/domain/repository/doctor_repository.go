package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, nationalID string) (*entity.Doctor, error)
	FindByIDForUpdate(db *gorm.DB, nationalID string) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, nationalID string) (int64, error)
}
