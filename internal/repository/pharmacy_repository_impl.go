package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
)

type pharmacyRepository struct{}

func NewPharmacyRepository() domainRepo.PharmacyRepository {
	return &pharmacyRepository{}
}

func (r *pharmacyRepository) Create(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Create(pharmacy).Error
}

func (r *pharmacyRepository) FindByID(db *gorm.DB, id int64) (*entity.Pharmacy, error) {
	return r.find(db, id)
}

func (r *pharmacyRepository) FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Pharmacy, error) {
	return r.find(db.Clauses(forUpdate), id)
}

func (r *pharmacyRepository) find(db *gorm.DB, id int64) (*entity.Pharmacy, error) {
	var pharmacy entity.Pharmacy
	err := db.Where("id = ?", id).First(&pharmacy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pharmacy, nil
}

func (r *pharmacyRepository) Update(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Save(pharmacy).Error
}

func (r *pharmacyRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Pharmacy{})
	return result.RowsAffected, result.Error
}
