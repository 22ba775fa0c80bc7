package usecase

import (
	"context"

	"pharmacy-records/internal/converter"
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/internal/service"
	"pharmacy-records/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, nationalID string) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, nationalID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, nationalID string) (*dto.DeleteResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	txRunner     *TxRunner
	validator    *ReferenceValidator
	cascade      *CascadeOrchestrator
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	validator *ReferenceValidator,
	cascade *CascadeOrchestrator,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		txRunner:     txRunner,
		validator:    validator,
		cascade:      cascade,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		NationalID: req.NationalID,
		Name:       req.Name,
		Address:    req.Address,
		Age:        req.Age,
		DoctorID:   req.DoctorID,
	}

	err := u.txRunner.Run(ctx, "AddPatient", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx, Ref(entity.KindDoctor, req.DoctorID)); err != nil {
			return err
		}
		if err := u.patientRepo.Create(tx, patient); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPatientCreate, entity.KindPatient, patient.NationalID, converter.PatientToResponse(patient))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Patient created: id=%s, doctor=%s", patient.NationalID, patient.DoctorID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, nationalID string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), nationalID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", nationalID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NotFound(entity.KindPatient.String(), nationalID)
	}

	return converter.PatientToResponse(patient), nil
}

// UpdatePatient replaces the patient's attributes, including the primary
// physician. Moving a patient away from a doctor is not guarded; only
// deletions are.
func (u *patientUsecase) UpdatePatient(ctx context.Context, nationalID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	var patient *entity.Patient

	err := u.txRunner.Run(ctx, "UpdatePatient", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx, Ref(entity.KindDoctor, req.DoctorID)); err != nil {
			return err
		}

		var err error
		patient, err = u.patientRepo.FindByIDForUpdate(tx, nationalID)
		if err != nil {
			return err
		}
		if patient == nil {
			return apperror.NotFound(entity.KindPatient.String(), nationalID)
		}

		// Capture old value for audit
		oldValue := converter.PatientToResponse(patient)

		patient.Name = req.Name
		patient.Address = req.Address
		patient.Age = req.Age
		patient.DoctorID = req.DoctorID

		if err := u.patientRepo.Update(tx, patient); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPatientUpdate, entity.KindPatient, nationalID, oldValue, converter.PatientToResponse(patient))
	})
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient fails with InvariantViolation when the patient is the last one
// of their doctor.
func (u *patientUsecase) DeletePatient(ctx context.Context, nationalID string) (*dto.DeleteResponse, error) {
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeletePatient", func(tx *gorm.DB) error {
		patient, res, err := u.cascade.DeletePatient(tx, nationalID)
		if err != nil {
			return err
		}
		result = res
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPatientDelete, entity.KindPatient, nationalID, converter.PatientToResponse(patient))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Patient deleted: id=%s", nationalID)
	return converter.CascadeResultToResponse(result), nil
}
