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

type DoctorUsecase interface {
	AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, nationalID string) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, nationalID string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, nationalID string) (*dto.DeleteResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	txRunner     *TxRunner
	cascade      *CascadeOrchestrator
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	cascade *CascadeOrchestrator,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		txRunner:     txRunner,
		cascade:      cascade,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		NationalID:        req.NationalID,
		Name:              req.Name,
		Specialty:         req.Specialty,
		YearsOfExperience: req.YearsOfExperience,
	}

	err := u.txRunner.Run(ctx, "AddDoctor", func(tx *gorm.DB) error {
		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionDoctorCreate, entity.KindDoctor, doctor.NationalID, converter.DoctorToResponse(doctor))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Doctor created: id=%s", doctor.NationalID)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, nationalID string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), nationalID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", nationalID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NotFound(entity.KindDoctor.String(), nationalID)
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, nationalID string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	var doctor *entity.Doctor

	err := u.txRunner.Run(ctx, "UpdateDoctor", func(tx *gorm.DB) error {
		var err error
		doctor, err = u.doctorRepo.FindByIDForUpdate(tx, nationalID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return apperror.NotFound(entity.KindDoctor.String(), nationalID)
		}

		// Capture old value for audit
		oldValue := converter.DoctorToResponse(doctor)

		doctor.Name = req.Name
		doctor.Specialty = req.Specialty
		doctor.YearsOfExperience = req.YearsOfExperience

		if err := u.doctorRepo.Update(tx, doctor); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionDoctorUpdate, entity.KindDoctor, nationalID, oldValue, converter.DoctorToResponse(doctor))
	})
	if err != nil {
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor is not guarded by the patient rule. A doctor still referenced
// by patients or prescriptions is kept by the foreign keys and the call fails
// with a foreign key ConstraintViolation.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, nationalID string) (*dto.DeleteResponse, error) {
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeleteDoctor", func(tx *gorm.DB) error {
		doctor, err := u.doctorRepo.FindByIDForUpdate(tx, nationalID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return apperror.NotFound(entity.KindDoctor.String(), nationalID)
		}

		result, err = u.cascade.DeleteSimple(entity.KindDoctor, nationalID, func() (int64, error) {
			return u.doctorRepo.Delete(tx, nationalID)
		})
		if err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionDoctorDelete, entity.KindDoctor, nationalID, converter.DoctorToResponse(doctor))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Doctor deleted: id=%s", nationalID)
	return converter.CascadeResultToResponse(result), nil
}
