package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

type PharmacyRepository interface {
	Create(db *gorm.DB, pharmacy *entity.Pharmacy) error
	FindByID(db *gorm.DB, id int64) (*entity.Pharmacy, error)
	FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Pharmacy, error)
	Update(db *gorm.DB, pharmacy *entity.Pharmacy) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
