package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pharmacyDrugRepository struct{}

func NewPharmacyDrugRepository() domainRepo.PharmacyDrugRepository {
	return &pharmacyDrugRepository{}
}

func (r *pharmacyDrugRepository) InsertIfAbsent(db *gorm.DB, item *entity.PharmacyDrug) (bool, error) {
	result := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item)
	return result.RowsAffected == 1, result.Error
}

func (r *pharmacyDrugRepository) Replace(db *gorm.DB, item *entity.PharmacyDrug) (int64, error) {
	result := db.Model(&entity.PharmacyDrug{}).
		Where("pharmacy_id = ? AND drug_id = ?", item.PharmacyID, item.DrugID).
		Updates(map[string]interface{}{
			"price": item.Price,
			"stock": item.Stock,
		})
	return result.RowsAffected, result.Error
}

func (r *pharmacyDrugRepository) Find(db *gorm.DB, pharmacyID, drugID int64) (*entity.PharmacyDrug, error) {
	return r.find(db, pharmacyID, drugID)
}

func (r *pharmacyDrugRepository) FindForUpdate(db *gorm.DB, pharmacyID, drugID int64) (*entity.PharmacyDrug, error) {
	return r.find(db.Clauses(forUpdate), pharmacyID, drugID)
}

func (r *pharmacyDrugRepository) find(db *gorm.DB, pharmacyID, drugID int64) (*entity.PharmacyDrug, error) {
	var item entity.PharmacyDrug
	err := db.Where("pharmacy_id = ? AND drug_id = ?", pharmacyID, drugID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *pharmacyDrugRepository) Delete(db *gorm.DB, pharmacyID, drugID int64) (int64, error) {
	result := db.Where("pharmacy_id = ? AND drug_id = ?", pharmacyID, drugID).Delete(&entity.PharmacyDrug{})
	return result.RowsAffected, result.Error
}

func (r *pharmacyDrugRepository) DeleteByPharmacy(db *gorm.DB, pharmacyID int64) (int64, error) {
	result := db.Where("pharmacy_id = ?", pharmacyID).Delete(&entity.PharmacyDrug{})
	return result.RowsAffected, result.Error
}
