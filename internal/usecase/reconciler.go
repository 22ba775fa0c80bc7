package usecase

import (
	"fmt"

	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
)

// A merge retries when the row it conflicted with is deleted before the
// keyed update reaches it.
const maxMergeAttempts = 3

// Reconciler implements insert-or-merge for inventory rows, prescription
// headers and prescription lines. Each policy inserts with ON CONFLICT DO
// NOTHING and falls back to a keyed UPDATE, so concurrent callers never race
// between an existence check and the write.
type Reconciler struct {
	inventoryRepo    repository.PharmacyDrugRepository
	prescriptionRepo repository.PrescriptionRepository
	detailRepo       repository.PrescriptionDetailRepository
}

func NewReconciler(
	inventoryRepo repository.PharmacyDrugRepository,
	prescriptionRepo repository.PrescriptionRepository,
	detailRepo repository.PrescriptionDetailRepository,
) *Reconciler {
	return &Reconciler{
		inventoryRepo:    inventoryRepo,
		prescriptionRepo: prescriptionRepo,
		detailRepo:       detailRepo,
	}
}

// UpsertInventory stores price and stock for the pair, replacing both when the row exists.
func (r *Reconciler) UpsertInventory(tx *gorm.DB, item *entity.PharmacyDrug) (entity.Outcome, error) {
	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		inserted, err := r.inventoryRepo.InsertIfAbsent(tx, item)
		if err != nil {
			return "", err
		}
		if inserted {
			return entity.OutcomeInserted, nil
		}

		updated, err := r.inventoryRepo.Replace(tx, item)
		if err != nil {
			return "", err
		}
		if updated > 0 {
			return entity.OutcomeUpdated, nil
		}
	}
	return "", fmt.Errorf("inventory row (%d, %d) changed concurrently %d times", item.PharmacyID, item.DrugID, maxMergeAttempts)
}

// UpsertPrescriptionDetail stores the quantity for the pair, overwriting it when the row exists.
func (r *Reconciler) UpsertPrescriptionDetail(tx *gorm.DB, detail *entity.PrescriptionDetail) (entity.Outcome, error) {
	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		inserted, err := r.detailRepo.InsertIfAbsent(tx, detail)
		if err != nil {
			return "", err
		}
		if inserted {
			return entity.OutcomeInserted, nil
		}

		updated, err := r.detailRepo.UpdateQuantity(tx, detail.PrescriptionID, detail.DrugID, detail.Quantity)
		if err != nil {
			return "", err
		}
		if updated > 0 {
			return entity.OutcomeUpdated, nil
		}
	}
	return "", fmt.Errorf("prescription detail (%d, %d) changed concurrently %d times", detail.PrescriptionID, detail.DrugID, maxMergeAttempts)
}

// UpsertPrescription finds or creates the single prescription of the
// (patient, doctor) pair. An existing prescription is re-dated only when the
// new date is strictly later, and only then are its detail rows cleared.
// On return prescription holds the stored row; cleared counts removed details.
func (r *Reconciler) UpsertPrescription(tx *gorm.DB, prescription *entity.Prescription) (entity.Outcome, int64, error) {
	prescription.Date = normalizeDate(prescription.Date)

	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		inserted, err := r.prescriptionRepo.InsertIfAbsent(tx, prescription)
		if err != nil {
			return "", 0, err
		}
		if inserted {
			return entity.OutcomeInserted, 0, nil
		}

		existing, err := r.prescriptionRepo.FindByPairForUpdate(tx, prescription.PatientID, prescription.DoctorID)
		if err != nil {
			return "", 0, err
		}
		if existing == nil {
			continue
		}

		advanced, err := r.prescriptionRepo.AdvanceDate(tx, existing.ID, prescription.Date)
		if err != nil {
			return "", 0, err
		}
		if advanced == 0 {
			*prescription = *existing
			return entity.OutcomeUnchanged, 0, nil
		}

		cleared, err := r.detailRepo.DeleteByPrescription(tx, existing.ID)
		if err != nil {
			return "", 0, err
		}

		date := prescription.Date
		*prescription = *existing
		prescription.Date = date
		return entity.OutcomeUpdated, cleared, nil
	}
	return "", 0, fmt.Errorf("prescription for patient %s and doctor %s changed concurrently %d times", prescription.PatientID, prescription.DoctorID, maxMergeAttempts)
}
