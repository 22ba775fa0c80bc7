package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, nationalID string) (*entity.Patient, error) {
	return r.find(db, nationalID)
}

func (r *patientRepository) FindByIDForUpdate(db *gorm.DB, nationalID string) (*entity.Patient, error) {
	return r.find(db.Clauses(forUpdate), nationalID)
}

func (r *patientRepository) find(db *gorm.DB, nationalID string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("national_id = ?", nationalID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, nationalID string) (int64, error) {
	result := db.Where("national_id = ?", nationalID).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

// CountByDoctorExcluding counts the doctor's patients other than excludeID.
func (r *patientRepository) CountByDoctorExcluding(db *gorm.DB, doctorID, excludeID string) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Where("doctor_id = ? AND national_id <> ?", doctorID, excludeID).
		Count(&count).Error
	return count, err
}
