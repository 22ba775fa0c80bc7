package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, nationalID string) (*entity.Doctor, error) {
	return r.find(db, nationalID)
}

func (r *doctorRepository) FindByIDForUpdate(db *gorm.DB, nationalID string) (*entity.Doctor, error) {
	return r.find(db.Clauses(forUpdate), nationalID)
}

func (r *doctorRepository) find(db *gorm.DB, nationalID string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("national_id = ?", nationalID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, nationalID string) (int64, error) {
	result := db.Where("national_id = ?", nationalID).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
