package usecase

import (
	"errors"

	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/pkg/apperror"

	"gorm.io/gorm"
)

const ruleDoctorRetainsPatient = "doctor must retain ≥1 patient"

// PatientGuard enforces that deleting a patient never leaves their doctor
// without patients.
//
// The doctor row is locked before the count, so two deletions under the same
// doctor serialize and the second one counts after the first has committed.
type PatientGuard struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewPatientGuard(patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) *PatientGuard {
	return &PatientGuard{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// CheckPatientDeletion must run in the same transaction as the delete it protects.
func (g *PatientGuard) CheckPatientDeletion(tx *gorm.DB, patient *entity.Patient) error {
	if _, err := g.doctorRepo.FindByIDForUpdate(tx, patient.DoctorID); err != nil {
		return err
	}

	others, err := g.patientRepo.CountByDoctorExcluding(tx, patient.DoctorID, patient.NationalID)
	if err != nil {
		return err
	}
	if others == 0 {
		return apperror.InvariantViolation(entity.KindPatient.String(), patient.NationalID, ruleDoctorRetainsPatient)
	}
	return nil
}

// CanDeletePatient reports whether the patient could be deleted right now.
// A missing patient is NotFound.
func (g *PatientGuard) CanDeletePatient(tx *gorm.DB, patientID string) (bool, error) {
	patient, err := g.patientRepo.FindByIDForUpdate(tx, patientID)
	if err != nil {
		return false, err
	}
	if patient == nil {
		return false, apperror.NotFound(entity.KindPatient.String(), patientID)
	}

	if err := g.CheckPatientDeletion(tx, patient); err != nil {
		if errors.Is(err, apperror.ErrInvariantViolation) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
