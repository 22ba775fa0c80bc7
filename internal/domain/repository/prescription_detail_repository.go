package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionDetailRepository interface {
	InsertIfAbsent(db *gorm.DB, detail *entity.PrescriptionDetail) (bool, error)
	UpdateQuantity(db *gorm.DB, prescriptionID, drugID int64, quantity int) (int64, error)
	Find(db *gorm.DB, prescriptionID, drugID int64) (*entity.PrescriptionDetail, error)
	FindForUpdate(db *gorm.DB, prescriptionID, drugID int64) (*entity.PrescriptionDetail, error)
	Delete(db *gorm.DB, prescriptionID, drugID int64) (int64, error)
	DeleteByPrescription(db *gorm.DB, prescriptionID int64) (int64, error)
}
