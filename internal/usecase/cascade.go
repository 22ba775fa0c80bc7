package usecase

import (
	"strconv"

	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/pkg/apperror"

	"gorm.io/gorm"
)

// CascadeOrchestrator performs the deletes whose children the schema does not
// remove on its own. Each cascade locks the parent first, removes children
// before the parent, and reports what it removed in execution order. Callers
// run it inside a transaction, so any failing step undoes the earlier ones.
type CascadeOrchestrator struct {
	patientRepo      repository.PatientRepository
	pharmacyRepo     repository.PharmacyRepository
	companyRepo      repository.CompanyRepository
	drugRepo         repository.DrugRepository
	contractRepo     repository.ContractRepository
	inventoryRepo    repository.PharmacyDrugRepository
	prescriptionRepo repository.PrescriptionRepository
	detailRepo       repository.PrescriptionDetailRepository
	guard            *PatientGuard
}

func NewCascadeOrchestrator(
	patientRepo repository.PatientRepository,
	pharmacyRepo repository.PharmacyRepository,
	companyRepo repository.CompanyRepository,
	drugRepo repository.DrugRepository,
	contractRepo repository.ContractRepository,
	inventoryRepo repository.PharmacyDrugRepository,
	prescriptionRepo repository.PrescriptionRepository,
	detailRepo repository.PrescriptionDetailRepository,
	guard *PatientGuard,
) *CascadeOrchestrator {
	return &CascadeOrchestrator{
		patientRepo:      patientRepo,
		pharmacyRepo:     pharmacyRepo,
		companyRepo:      companyRepo,
		drugRepo:         drugRepo,
		contractRepo:     contractRepo,
		inventoryRepo:    inventoryRepo,
		prescriptionRepo: prescriptionRepo,
		detailRepo:       detailRepo,
		guard:            guard,
	}
}

// DeletePatient runs the patient guard before removing the row.
func (c *CascadeOrchestrator) DeletePatient(tx *gorm.DB, nationalID string) (*entity.Patient, *entity.CascadeResult, error) {
	patient, err := c.patientRepo.FindByIDForUpdate(tx, nationalID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, apperror.NotFound(entity.KindPatient.String(), nationalID)
	}

	if err := c.guard.CheckPatientDeletion(tx, patient); err != nil {
		return nil, nil, err
	}

	result := entity.NewCascadeResult(entity.KindPatient, nationalID)
	if err := removeParent(result, func() (int64, error) {
		return c.patientRepo.Delete(tx, nationalID)
	}); err != nil {
		return nil, nil, err
	}
	return patient, result, nil
}

// DeletePharmacy removes inventory rows, then contracts, then the pharmacy.
func (c *CascadeOrchestrator) DeletePharmacy(tx *gorm.DB, id int64) (*entity.Pharmacy, *entity.CascadeResult, error) {
	key := strconv.FormatInt(id, 10)

	pharmacy, err := c.pharmacyRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return nil, nil, err
	}
	if pharmacy == nil {
		return nil, nil, apperror.NotFound(entity.KindPharmacy.String(), key)
	}

	result := entity.NewCascadeResult(entity.KindPharmacy, key)

	inventory, err := c.inventoryRepo.DeleteByPharmacy(tx, id)
	if err != nil {
		return nil, nil, err
	}
	result.Record(entity.KindPharmacyDrug, inventory)

	contracts, err := c.contractRepo.DeleteByPharmacy(tx, id)
	if err != nil {
		return nil, nil, err
	}
	result.Record(entity.KindContract, contracts)

	if err := removeParent(result, func() (int64, error) {
		return c.pharmacyRepo.Delete(tx, id)
	}); err != nil {
		return nil, nil, err
	}
	return pharmacy, result, nil
}

// DeleteCompany removes contracts, then the company. Its drugs are removed by
// the schema's ON DELETE CASCADE; they are counted beforehand so the result
// reports them. A drug still stocked or prescribed blocks the whole delete.
func (c *CascadeOrchestrator) DeleteCompany(tx *gorm.DB, name string) (*entity.PharmaceuticalCompany, *entity.CascadeResult, error) {
	company, err := c.companyRepo.FindByNameForUpdate(tx, name)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, apperror.NotFound(entity.KindCompany.String(), name)
	}

	result := entity.NewCascadeResult(entity.KindCompany, name)

	contracts, err := c.contractRepo.DeleteByCompany(tx, name)
	if err != nil {
		return nil, nil, err
	}
	result.Record(entity.KindContract, contracts)

	drugs, err := c.drugRepo.CountByCompany(tx, name)
	if err != nil {
		return nil, nil, err
	}
	result.Record(entity.KindDrug, drugs)

	if err := removeParent(result, func() (int64, error) {
		return c.companyRepo.Delete(tx, name)
	}); err != nil {
		return nil, nil, err
	}
	return company, result, nil
}

// DeletePrescription removes detail rows, then the prescription.
func (c *CascadeOrchestrator) DeletePrescription(tx *gorm.DB, id int64) (*entity.Prescription, *entity.CascadeResult, error) {
	key := strconv.FormatInt(id, 10)

	prescription, err := c.prescriptionRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		return nil, nil, err
	}
	if prescription == nil {
		return nil, nil, apperror.NotFound(entity.KindPrescription.String(), key)
	}

	result := entity.NewCascadeResult(entity.KindPrescription, key)

	details, err := c.detailRepo.DeleteByPrescription(tx, id)
	if err != nil {
		return nil, nil, err
	}
	result.Record(entity.KindPrescriptionDetail, details)

	if err := removeParent(result, func() (int64, error) {
		return c.prescriptionRepo.Delete(tx, id)
	}); err != nil {
		return nil, nil, err
	}
	return prescription, result, nil
}

// DeleteSimple removes a row with no orchestrated children.
func (c *CascadeOrchestrator) DeleteSimple(kind entity.EntityKind, key string, del func() (int64, error)) (*entity.CascadeResult, error) {
	result := entity.NewCascadeResult(kind, key)
	if err := removeParent(result, del); err != nil {
		return nil, err
	}
	return result, nil
}

func removeParent(result *entity.CascadeResult, del func() (int64, error)) error {
	removed, err := del()
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperror.NotFound(result.Entity.String(), result.Key)
	}
	result.Record(result.Entity, removed)
	return nil
}
