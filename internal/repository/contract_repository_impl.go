package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contractRepository struct{}

func NewContractRepository() domainRepo.ContractRepository {
	return &contractRepository{}
}

func (r *contractRepository) Create(db *gorm.DB, contract *entity.Contract) error {
	return db.Omit(clause.Associations).Create(contract).Error
}

func (r *contractRepository) FindByID(db *gorm.DB, id int64) (*entity.Contract, error) {
	return r.find(db, id)
}

func (r *contractRepository) FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Contract, error) {
	return r.find(db.Clauses(forUpdate), id)
}

func (r *contractRepository) find(db *gorm.DB, id int64) (*entity.Contract, error) {
	var contract entity.Contract
	err := db.Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) Update(db *gorm.DB, contract *entity.Contract) error {
	return db.Omit(clause.Associations).Save(contract).Error
}

func (r *contractRepository) UpdateSupervisor(db *gorm.DB, id int64, supervisor string) (int64, error) {
	result := db.Model(&entity.Contract{}).Where("id = ?", id).Update("supervisor", supervisor)
	return result.RowsAffected, result.Error
}

func (r *contractRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Contract{})
	return result.RowsAffected, result.Error
}

func (r *contractRepository) DeleteByPharmacy(db *gorm.DB, pharmacyID int64) (int64, error) {
	result := db.Where("pharmacy_id = ?", pharmacyID).Delete(&entity.Contract{})
	return result.RowsAffected, result.Error
}

func (r *contractRepository) DeleteByCompany(db *gorm.DB, companyName string) (int64, error) {
	result := db.Where("company_name = ?", companyName).Delete(&entity.Contract{})
	return result.RowsAffected, result.Error
}
