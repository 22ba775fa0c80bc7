package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type DrugRepository interface {
	Create(db *gorm.DB, drug *entity.Drug) error
	FindByID(db *gorm.DB, id int64) (*entity.Drug, error)
	FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Drug, error)
	Update(db *gorm.DB, drug *entity.Drug) error
	Delete(db *gorm.DB, id int64) (int64, error)
	CountByCompany(db *gorm.DB, companyName string) (int64, error)
}
