package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

// PharmacyDrugRepository manages inventory rows keyed by (pharmacy, drug).
type PharmacyDrugRepository interface {
	// InsertIfAbsent inserts the row unless the key is taken and reports whether it did.
	InsertIfAbsent(db *gorm.DB, item *entity.PharmacyDrug) (bool, error)
	// Replace overwrites price and stock of an existing row.
	Replace(db *gorm.DB, item *entity.PharmacyDrug) (int64, error)
	Find(db *gorm.DB, pharmacyID, drugID int64) (*entity.PharmacyDrug, error)
	FindForUpdate(db *gorm.DB, pharmacyID, drugID int64) (*entity.PharmacyDrug, error)
	Delete(db *gorm.DB, pharmacyID, drugID int64) (int64, error)
	DeleteByPharmacy(db *gorm.DB, pharmacyID int64) (int64, error)
}
