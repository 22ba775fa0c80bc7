package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *entity.PharmaceuticalCompany) error
	FindByName(db *gorm.DB, name string) (*entity.PharmaceuticalCompany, error)
	FindByNameForUpdate(db *gorm.DB, name string) (*entity.PharmaceuticalCompany, error)
	Update(db *gorm.DB, company *entity.PharmaceuticalCompany) error
	Delete(db *gorm.DB, name string) (int64, error)
}
