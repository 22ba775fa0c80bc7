package repository

import (
	"errors"
	"time"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) InsertIfAbsent(db *gorm.DB, prescription *entity.Prescription) (bool, error) {
	result := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "patient_id"}, {Name: "doctor_id"}},
			DoNothing: true,
		}).
		Create(prescription)
	return result.RowsAffected == 1, result.Error
}

func (r *prescriptionRepository) FindByPairForUpdate(db *gorm.DB, patientID, doctorID string) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Clauses(forUpdate).
		Where("patient_id = ? AND doctor_id = ?", patientID, doctorID).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id int64) (*entity.Prescription, error) {
	return r.find(db, id)
}

func (r *prescriptionRepository) FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Prescription, error) {
	return r.find(db.Clauses(forUpdate), id)
}

func (r *prescriptionRepository) find(db *gorm.DB, id int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) AdvanceDate(db *gorm.DB, id int64, date time.Time) (int64, error) {
	result := db.Model(&entity.Prescription{}).
		Where("id = ? AND date < ?", id, date).
		Update("date", date)
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Omit(clause.Associations).Save(prescription).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}
