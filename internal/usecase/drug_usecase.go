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

type DrugUsecase interface {
	AddDrug(ctx context.Context, req *dto.CreateDrugRequest) (*dto.DrugResponse, error)
	GetDrug(ctx context.Context, id int64) (*dto.DrugResponse, error)
	UpdateDrug(ctx context.Context, id int64, req *dto.UpdateDrugRequest) (*dto.DrugResponse, error)
	DeleteDrug(ctx context.Context, id int64) (*dto.DeleteResponse, error)
}

type drugUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	txRunner     *TxRunner
	validator    *ReferenceValidator
	cascade      *CascadeOrchestrator
	drugRepo     repository.DrugRepository
	auditService service.AuditService
}

func NewDrugUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	validator *ReferenceValidator,
	cascade *CascadeOrchestrator,
	drugRepo repository.DrugRepository,
	auditService service.AuditService,
) DrugUsecase {
	return &drugUsecase{
		db:           db,
		log:          log,
		txRunner:     txRunner,
		validator:    validator,
		cascade:      cascade,
		drugRepo:     drugRepo,
		auditService: auditService,
	}
}

func (u *drugUsecase) AddDrug(ctx context.Context, req *dto.CreateDrugRequest) (*dto.DrugResponse, error) {
	drug := &entity.Drug{
		TradeName:   req.TradeName,
		Formula:     req.Formula,
		CompanyName: req.CompanyName,
	}

	err := u.txRunner.Run(ctx, "AddDrug", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx, Ref(entity.KindCompany, req.CompanyName)); err != nil {
			return err
		}
		if err := u.drugRepo.Create(tx, drug); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionDrugCreate, entity.KindDrug, strconv.FormatInt(drug.ID, 10), converter.DrugToResponse(drug))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Drug created: id=%d, trade_name=%s, company=%s", drug.ID, drug.TradeName, drug.CompanyName)
	return converter.DrugToResponse(drug), nil
}

func (u *drugUsecase) GetDrug(ctx context.Context, id int64) (*dto.DrugResponse, error) {
	drug, err := u.drugRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find drug %d: %+v", id, err)
		return nil, err
	}
	if drug == nil {
		return nil, apperror.NotFound(entity.KindDrug.String(), strconv.FormatInt(id, 10))
	}

	return converter.DrugToResponse(drug), nil
}

func (u *drugUsecase) UpdateDrug(ctx context.Context, id int64, req *dto.UpdateDrugRequest) (*dto.DrugResponse, error) {
	key := strconv.FormatInt(id, 10)
	var drug *entity.Drug

	err := u.txRunner.Run(ctx, "UpdateDrug", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx, Ref(entity.KindCompany, req.CompanyName)); err != nil {
			return err
		}

		var err error
		drug, err = u.drugRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if drug == nil {
			return apperror.NotFound(entity.KindDrug.String(), key)
		}

		oldValue := converter.DrugToResponse(drug)

		drug.TradeName = req.TradeName
		drug.Formula = req.Formula
		drug.CompanyName = req.CompanyName

		if err := u.drugRepo.Update(tx, drug); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionDrugUpdate, entity.KindDrug, key, oldValue, converter.DrugToResponse(drug))
	})
	if err != nil {
		return nil, err
	}

	return converter.DrugToResponse(drug), nil
}

// DeleteDrug fails with a foreign key ConstraintViolation while the drug is
// still stocked or prescribed.
func (u *drugUsecase) DeleteDrug(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	key := strconv.FormatInt(id, 10)
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeleteDrug", func(tx *gorm.DB) error {
		drug, err := u.drugRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if drug == nil {
			return apperror.NotFound(entity.KindDrug.String(), key)
		}

		result, err = u.cascade.DeleteSimple(entity.KindDrug, key, func() (int64, error) {
			return u.drugRepo.Delete(tx, id)
		})
		if err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionDrugDelete, entity.KindDrug, key, converter.DrugToResponse(drug))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Drug deleted: id=%d", id)
	return converter.CascadeResultToResponse(result), nil
}
