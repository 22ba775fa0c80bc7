package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type ContractRepository interface {
	Create(db *gorm.DB, contract *entity.Contract) error
	FindByID(db *gorm.DB, id int64) (*entity.Contract, error)
	FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Contract, error)
	Update(db *gorm.DB, contract *entity.Contract) error
	UpdateSupervisor(db *gorm.DB, id int64, supervisor string) (int64, error)
	Delete(db *gorm.DB, id int64) (int64, error)
	DeleteByPharmacy(db *gorm.DB, pharmacyID int64) (int64, error)
	DeleteByCompany(db *gorm.DB, companyName string) (int64, error)
}
