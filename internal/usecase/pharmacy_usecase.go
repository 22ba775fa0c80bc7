package usecase

import (
	"context"
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

type PharmacyUsecase interface {
	AddPharmacy(ctx context.Context, req *dto.CreatePharmacyRequest) (*dto.PharmacyResponse, error)
	GetPharmacy(ctx context.Context, id int64) (*dto.PharmacyResponse, error)
	UpdatePharmacy(ctx context.Context, id int64, req *dto.UpdatePharmacyRequest) (*dto.PharmacyResponse, error)
	DeletePharmacy(ctx context.Context, id int64) (*dto.DeleteResponse, error)
}

type pharmacyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	txRunner     *TxRunner
	cascade      *CascadeOrchestrator
	pharmacyRepo repository.PharmacyRepository
	auditService service.AuditService
}

func NewPharmacyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	cascade *CascadeOrchestrator,
	pharmacyRepo repository.PharmacyRepository,
	auditService service.AuditService,
) PharmacyUsecase {
	return &pharmacyUsecase{
		db:           db,
		log:          log,
		txRunner:     txRunner,
		cascade:      cascade,
		pharmacyRepo: pharmacyRepo,
		auditService: auditService,
	}
}

func (u *pharmacyUsecase) AddPharmacy(ctx context.Context, req *dto.CreatePharmacyRequest) (*dto.PharmacyResponse, error) {
	pharmacy := &entity.Pharmacy{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}

	err := u.txRunner.Run(ctx, "AddPharmacy", func(tx *gorm.DB) error {
		if err := u.pharmacyRepo.Create(tx, pharmacy); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionPharmacyCreate, entity.KindPharmacy, strconv.FormatInt(pharmacy.ID, 10), converter.PharmacyToResponse(pharmacy))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Pharmacy created: id=%d", pharmacy.ID)
	return converter.PharmacyToResponse(pharmacy), nil
}

func (u *pharmacyUsecase) GetPharmacy(ctx context.Context, id int64) (*dto.PharmacyResponse, error) {
	pharmacy, err := u.pharmacyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy %d: %+v", id, err)
		return nil, err
	}
	if pharmacy == nil {
		return nil, apperror.NotFound(entity.KindPharmacy.String(), strconv.FormatInt(id, 10))
	}

	return converter.PharmacyToResponse(pharmacy), nil
}

func (u *pharmacyUsecase) UpdatePharmacy(ctx context.Context, id int64, req *dto.UpdatePharmacyRequest) (*dto.PharmacyResponse, error) {
	key := strconv.FormatInt(id, 10)
	var pharmacy *entity.Pharmacy

	err := u.txRunner.Run(ctx, "UpdatePharmacy", func(tx *gorm.DB) error {
		var err error
		pharmacy, err = u.pharmacyRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if pharmacy == nil {
			return apperror.NotFound(entity.KindPharmacy.String(), key)
		}

		oldValue := converter.PharmacyToResponse(pharmacy)

		pharmacy.Name = req.Name
		pharmacy.Address = req.Address
		pharmacy.Phone = req.Phone

		if err := u.pharmacyRepo.Update(tx, pharmacy); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionPharmacyUpdate, entity.KindPharmacy, key, oldValue, converter.PharmacyToResponse(pharmacy))
	})
	if err != nil {
		return nil, err
	}

	return converter.PharmacyToResponse(pharmacy), nil
}

// DeletePharmacy removes the pharmacy's inventory, then its contracts, then the pharmacy.
func (u *pharmacyUsecase) DeletePharmacy(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	key := strconv.FormatInt(id, 10)
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeletePharmacy", func(tx *gorm.DB) error {
		pharmacy, res, err := u.cascade.DeletePharmacy(tx, id)
		if err != nil {
			return err
		}
		result = res
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionPharmacyDelete, entity.KindPharmacy, key, converter.PharmacyToResponse(pharmacy))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Pharmacy deleted: id=%d, removed=%v", id, result.Removed)
	return converter.CascadeResultToResponse(result), nil
}
