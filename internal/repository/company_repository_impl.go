package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
)

type companyRepository struct{}

func NewCompanyRepository() domainRepo.CompanyRepository {
	return &companyRepository{}
}

func (r *companyRepository) Create(db *gorm.DB, company *entity.PharmaceuticalCompany) error {
	return db.Create(company).Error
}

func (r *companyRepository) FindByName(db *gorm.DB, name string) (*entity.PharmaceuticalCompany, error) {
	return r.find(db, name)
}

func (r *companyRepository) FindByNameForUpdate(db *gorm.DB, name string) (*entity.PharmaceuticalCompany, error) {
	return r.find(db.Clauses(forUpdate), name)
}

func (r *companyRepository) find(db *gorm.DB, name string) (*entity.PharmaceuticalCompany, error) {
	var company entity.PharmaceuticalCompany
	err := db.Where("name = ?", name).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(db *gorm.DB, company *entity.PharmaceuticalCompany) error {
	return db.Save(company).Error
}

// Delete removes the company row. Its drugs go with it through ON DELETE CASCADE.
func (r *companyRepository) Delete(db *gorm.DB, name string) (int64, error) {
	result := db.Where("name = ?", name).Delete(&entity.PharmaceuticalCompany{})
	return result.RowsAffected, result.Error
}
