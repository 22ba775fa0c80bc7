package repository

import (
	"time"

	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	// InsertIfAbsent inserts the header unless one already exists for its
	// (patient, doctor) pair and reports whether it did.
	InsertIfAbsent(db *gorm.DB, prescription *entity.Prescription) (bool, error)
	FindByPairForUpdate(db *gorm.DB, patientID, doctorID string) (*entity.Prescription, error)
	FindByID(db *gorm.DB, id int64) (*entity.Prescription, error)
	FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Prescription, error)
	// AdvanceDate moves the date forward only when date is strictly later than the stored one.
	AdvanceDate(db *gorm.DB, id int64, date time.Time) (int64, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
