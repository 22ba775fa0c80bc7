package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type prescriptionDetailRepository struct{}

func NewPrescriptionDetailRepository() domainRepo.PrescriptionDetailRepository {
	return &prescriptionDetailRepository{}
}

func (r *prescriptionDetailRepository) InsertIfAbsent(db *gorm.DB, detail *entity.PrescriptionDetail) (bool, error) {
	result := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(detail)
	return result.RowsAffected == 1, result.Error
}

func (r *prescriptionDetailRepository) UpdateQuantity(db *gorm.DB, prescriptionID, drugID int64, quantity int) (int64, error) {
	result := db.Model(&entity.PrescriptionDetail{}).
		Where("prescription_id = ? AND drug_id = ?", prescriptionID, drugID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

func (r *prescriptionDetailRepository) Find(db *gorm.DB, prescriptionID, drugID int64) (*entity.PrescriptionDetail, error) {
	return r.find(db, prescriptionID, drugID)
}

func (r *prescriptionDetailRepository) FindForUpdate(db *gorm.DB, prescriptionID, drugID int64) (*entity.PrescriptionDetail, error) {
	return r.find(db.Clauses(forUpdate), prescriptionID, drugID)
}

func (r *prescriptionDetailRepository) find(db *gorm.DB, prescriptionID, drugID int64) (*entity.PrescriptionDetail, error) {
	var detail entity.PrescriptionDetail
	err := db.Where("prescription_id = ? AND drug_id = ?", prescriptionID, drugID).First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *prescriptionDetailRepository) Delete(db *gorm.DB, prescriptionID, drugID int64) (int64, error) {
	result := db.Where("prescription_id = ? AND drug_id = ?", prescriptionID, drugID).Delete(&entity.PrescriptionDetail{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionDetailRepository) DeleteByPrescription(db *gorm.DB, prescriptionID int64) (int64, error) {
	result := db.Where("prescription_id = ?", prescriptionID).Delete(&entity.PrescriptionDetail{})
	return result.RowsAffected, result.Error
}
