package usecase

import (
	"context"
	"fmt"
	"strconv"

	"pharmacy-records/internal/converter"
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/internal/service"
	"pharmacy-records/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PrescriptionUsecase interface {
	AddPrescription(ctx context.Context, req *dto.AddPrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, id int64) (*dto.PrescriptionResponse, error)
	UpdatePrescription(ctx context.Context, id int64, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, id int64) (*dto.DeleteResponse, error)

	AddDrugToPrescription(ctx context.Context, req *dto.AddPrescriptionDetailRequest) (*dto.PrescriptionDetailResponse, error)
	GetPrescriptionDetail(ctx context.Context, prescriptionID, drugID int64) (*dto.PrescriptionDetailResponse, error)
	UpdatePrescriptionDetail(ctx context.Context, prescriptionID, drugID int64, req *dto.UpdatePrescriptionDetailRequest) (*dto.PrescriptionDetailResponse, error)
	DeletePrescriptionDetail(ctx context.Context, prescriptionID, drugID int64) (*dto.DeleteResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	txRunner         *TxRunner
	validator        *ReferenceValidator
	reconciler       *Reconciler
	cascade          *CascadeOrchestrator
	prescriptionRepo repository.PrescriptionRepository
	detailRepo       repository.PrescriptionDetailRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	validator *ReferenceValidator,
	reconciler *Reconciler,
	cascade *CascadeOrchestrator,
	prescriptionRepo repository.PrescriptionRepository,
	detailRepo repository.PrescriptionDetailRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		txRunner:         txRunner,
		validator:        validator,
		reconciler:       reconciler,
		cascade:          cascade,
		prescriptionRepo: prescriptionRepo,
		detailRepo:       detailRepo,
		auditService:     auditService,
	}
}

func detailKey(prescriptionID, drugID int64) string {
	return fmt.Sprintf("%d/%d", prescriptionID, drugID)
}

// AddPrescription records a prescription of the doctor for the patient. The
// pair keeps a single prescription: a strictly later date re-dates it and
// clears its lines, any other date leaves it untouched.
func (u *prescriptionUsecase) AddPrescription(ctx context.Context, req *dto.AddPrescriptionRequest) (*dto.PrescriptionResponse, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      date,
	}

	var (
		outcome entity.Outcome
		cleared int64
	)
	err = u.txRunner.Run(ctx, "AddPrescription", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx,
			Ref(entity.KindPatient, req.PatientID),
			Ref(entity.KindDoctor, req.DoctorID),
		); err != nil {
			return err
		}

		var err error
		outcome, cleared, err = u.reconciler.UpsertPrescription(tx, prescription)
		if err != nil {
			return err
		}
		if outcome == entity.OutcomeUnchanged {
			return nil
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPrescriptionUpsert, entity.KindPrescription, strconv.FormatInt(prescription.ID, 10), converter.PrescriptionToResponse(prescription))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Prescription %s: id=%d, patient=%s, doctor=%s, cleared_details=%d", outcome, prescription.ID, prescription.PatientID, prescription.DoctorID, cleared)

	response := converter.PrescriptionToResponse(prescription)
	response.Outcome = string(outcome)
	response.ClearedDetails = cleared
	return response, nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id int64) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, apperror.NotFound(entity.KindPrescription.String(), strconv.FormatInt(id, 10))
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// UpdatePrescription overwrites the header as given. Moving it onto a
// (patient, doctor) pair that already has a prescription is a unique
// ConstraintViolation.
func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, id int64, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	key := strconv.FormatInt(id, 10)

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	var prescription *entity.Prescription
	err = u.txRunner.Run(ctx, "UpdatePrescription", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx,
			Ref(entity.KindPatient, req.PatientID),
			Ref(entity.KindDoctor, req.DoctorID),
		); err != nil {
			return err
		}

		var err error
		prescription, err = u.prescriptionRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if prescription == nil {
			return apperror.NotFound(entity.KindPrescription.String(), key)
		}

		oldValue := converter.PrescriptionToResponse(prescription)

		prescription.PatientID = req.PatientID
		prescription.DoctorID = req.DoctorID
		prescription.Date = date

		if err := u.prescriptionRepo.Update(tx, prescription); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPrescriptionUpdate, entity.KindPrescription, key, oldValue, converter.PrescriptionToResponse(prescription))
	})
	if err != nil {
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// DeletePrescription removes the prescription's lines, then the prescription.
func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	key := strconv.FormatInt(id, 10)
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeletePrescription", func(tx *gorm.DB) error {
		prescription, res, err := u.cascade.DeletePrescription(tx, id)
		if err != nil {
			return err
		}
		result = res
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPrescriptionDelete, entity.KindPrescription, key, converter.PrescriptionToResponse(prescription))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Prescription deleted: id=%d, removed=%v", id, result.Removed)
	return converter.CascadeResultToResponse(result), nil
}

// AddDrugToPrescription adds a line to a prescription, overwriting the
// quantity when the drug is already on it.
func (u *prescriptionUsecase) AddDrugToPrescription(ctx context.Context, req *dto.AddPrescriptionDetailRequest) (*dto.PrescriptionDetailResponse, error) {
	detail := &entity.PrescriptionDetail{
		PrescriptionID: req.PrescriptionID,
		DrugID:         req.DrugID,
		Quantity:       req.Quantity,
	}
	key := detailKey(detail.PrescriptionID, detail.DrugID)

	var outcome entity.Outcome
	err := u.txRunner.Run(ctx, "AddDrugToPrescription", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx,
			Ref(entity.KindPrescription, req.PrescriptionID),
			Ref(entity.KindDrug, req.DrugID),
		); err != nil {
			return err
		}

		var err error
		outcome, err = u.reconciler.UpsertPrescriptionDetail(tx, detail)
		if err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPrescriptionDetailUpsert, entity.KindPrescriptionDetail, key, converter.PrescriptionDetailToResponse(detail, outcome))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Prescription detail %s: prescription=%d, drug=%d, quantity=%d", outcome, detail.PrescriptionID, detail.DrugID, detail.Quantity)
	return converter.PrescriptionDetailToResponse(detail, outcome), nil
}

func (u *prescriptionUsecase) GetPrescriptionDetail(ctx context.Context, prescriptionID, drugID int64) (*dto.PrescriptionDetailResponse, error) {
	detail, err := u.detailRepo.Find(u.db.WithContext(ctx), prescriptionID, drugID)
	if err != nil {
		u.log.Warnf("Failed to find prescription detail %s: %+v", detailKey(prescriptionID, drugID), err)
		return nil, err
	}
	if detail == nil {
		return nil, apperror.NotFound(entity.KindPrescriptionDetail.String(), detailKey(prescriptionID, drugID))
	}

	return converter.PrescriptionDetailToResponse(detail, ""), nil
}

func (u *prescriptionUsecase) UpdatePrescriptionDetail(ctx context.Context, prescriptionID, drugID int64, req *dto.UpdatePrescriptionDetailRequest) (*dto.PrescriptionDetailResponse, error) {
	key := detailKey(prescriptionID, drugID)
	var detail *entity.PrescriptionDetail

	err := u.txRunner.Run(ctx, "UpdatePrescriptionDetail", func(tx *gorm.DB) error {
		var err error
		detail, err = u.detailRepo.FindForUpdate(tx, prescriptionID, drugID)
		if err != nil {
			return err
		}
		if detail == nil {
			return apperror.NotFound(entity.KindPrescriptionDetail.String(), key)
		}

		oldValue := converter.PrescriptionDetailToResponse(detail, "")

		updated, err := u.detailRepo.UpdateQuantity(tx, prescriptionID, drugID, req.Quantity)
		if err != nil {
			return err
		}
		if updated == 0 {
			return apperror.NotFound(entity.KindPrescriptionDetail.String(), key)
		}
		detail.Quantity = req.Quantity

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPrescriptionDetailUpdate, entity.KindPrescriptionDetail, key, oldValue, converter.PrescriptionDetailToResponse(detail, ""))
	})
	if err != nil {
		return nil, err
	}

	return converter.PrescriptionDetailToResponse(detail, entity.OutcomeUpdated), nil
}

func (u *prescriptionUsecase) DeletePrescriptionDetail(ctx context.Context, prescriptionID, drugID int64) (*dto.DeleteResponse, error) {
	key := detailKey(prescriptionID, drugID)
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeletePrescriptionDetail", func(tx *gorm.DB) error {
		detail, err := u.detailRepo.FindForUpdate(tx, prescriptionID, drugID)
		if err != nil {
			return err
		}
		if detail == nil {
			return apperror.NotFound(entity.KindPrescriptionDetail.String(), key)
		}

		result, err = u.cascade.DeleteSimple(entity.KindPrescriptionDetail, key, func() (int64, error) {
			return u.detailRepo.Delete(tx, prescriptionID, drugID)
		})
		if err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPrescriptionDetailDelete, entity.KindPrescriptionDetail, key, converter.PrescriptionDetailToResponse(detail, ""))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Prescription detail deleted: prescription=%d, drug=%d", prescriptionID, drugID)
	return converter.CascadeResultToResponse(result), nil
}
