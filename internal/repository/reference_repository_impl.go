package repository

import (
	"fmt"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
)

type referenceTarget struct {
	model  interface{}
	column string
}

var referenceTargets = map[entity.EntityKind]referenceTarget{
	entity.KindPatient:      {model: &entity.Patient{}, column: "national_id"},
	entity.KindDoctor:       {model: &entity.Doctor{}, column: "national_id"},
	entity.KindCompany:      {model: &entity.PharmaceuticalCompany{}, column: "name"},
	entity.KindPharmacy:     {model: &entity.Pharmacy{}, column: "id"},
	entity.KindDrug:         {model: &entity.Drug{}, column: "id"},
	entity.KindContract:     {model: &entity.Contract{}, column: "id"},
	entity.KindPrescription: {model: &entity.Prescription{}, column: "id"},
}

type referenceRepository struct{}

func NewReferenceRepository() domainRepo.ReferenceRepository {
	return &referenceRepository{}
}

// Exists selects the key column rather than counting, since Postgres rejects
// FOR SHARE together with aggregates.
func (r *referenceRepository) Exists(db *gorm.DB, kind entity.EntityKind, key interface{}) (bool, error) {
	target, ok := referenceTargets[kind]
	if !ok {
		return false, fmt.Errorf("no reference lookup for %s", kind)
	}

	var rows []map[string]interface{}
	err := db.Model(target.model).
		Clauses(forShare).
		Select(target.column).
		Where(target.column+" = ?", key).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
