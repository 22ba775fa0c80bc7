package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, nationalID string) (*entity.Patient, error)
	FindByIDForUpdate(db *gorm.DB, nationalID string) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, nationalID string) (int64, error)
	CountByDoctorExcluding(db *gorm.DB, doctorID, excludeID string) (int64, error)
}
