package repository

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type drugRepository struct{}

func NewDrugRepository() domainRepo.DrugRepository {
	return &drugRepository{}
}

func (r *drugRepository) Create(db *gorm.DB, drug *entity.Drug) error {
	return db.Omit(clause.Associations).Create(drug).Error
}

func (r *drugRepository) FindByID(db *gorm.DB, id int64) (*entity.Drug, error) {
	return r.find(db, id)
}

func (r *drugRepository) FindByIDForUpdate(db *gorm.DB, id int64) (*entity.Drug, error) {
	return r.find(db.Clauses(forUpdate), id)
}

func (r *drugRepository) find(db *gorm.DB, id int64) (*entity.Drug, error) {
	var drug entity.Drug
	err := db.Where("id = ?", id).First(&drug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drug, nil
}

func (r *drugRepository) Update(db *gorm.DB, drug *entity.Drug) error {
	return db.Omit(clause.Associations).Save(drug).Error
}

func (r *drugRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Drug{})
	return result.RowsAffected, result.Error
}

func (r *drugRepository) CountByCompany(db *gorm.DB, companyName string) (int64, error) {
	var count int64
	err := db.Model(&entity.Drug{}).Where("company_name = ?", companyName).Count(&count).Error
	return count, err
}
