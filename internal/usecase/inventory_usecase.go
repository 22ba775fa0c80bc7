package usecase

import (
	"context"
	"fmt"

	"pharmacy-records/internal/converter"
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/internal/service"
	"pharmacy-records/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InventoryUsecase manages the price and stock of drugs at pharmacies.
type InventoryUsecase interface {
	AddDrugToPharmacy(ctx context.Context, req *dto.UpsertPharmacyDrugRequest) (*dto.PharmacyDrugResponse, error)
	GetPharmacyDrug(ctx context.Context, pharmacyID, drugID int64) (*dto.PharmacyDrugResponse, error)
	UpdatePharmacyDrug(ctx context.Context, pharmacyID, drugID int64, req *dto.UpdatePharmacyDrugRequest) (*dto.PharmacyDrugResponse, error)
	DeletePharmacyDrug(ctx context.Context, pharmacyID, drugID int64) (*dto.DeleteResponse, error)
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	txRunner      *TxRunner
	validator     *ReferenceValidator
	reconciler    *Reconciler
	cascade       *CascadeOrchestrator
	inventoryRepo repository.PharmacyDrugRepository
	auditService  service.AuditService
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	validator *ReferenceValidator,
	reconciler *Reconciler,
	cascade *CascadeOrchestrator,
	inventoryRepo repository.PharmacyDrugRepository,
	auditService service.AuditService,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		txRunner:      txRunner,
		validator:     validator,
		reconciler:    reconciler,
		cascade:       cascade,
		inventoryRepo: inventoryRepo,
		auditService:  auditService,
	}
}

func inventoryKey(pharmacyID, drugID int64) string {
	return fmt.Sprintf("%d/%d", pharmacyID, drugID)
}

// AddDrugToPharmacy stocks a drug at a pharmacy. When the pair is already
// stocked, price and stock are both replaced.
func (u *inventoryUsecase) AddDrugToPharmacy(ctx context.Context, req *dto.UpsertPharmacyDrugRequest) (*dto.PharmacyDrugResponse, error) {
	item := &entity.PharmacyDrug{
		PharmacyID: req.PharmacyID,
		DrugID:     req.DrugID,
		Price:      req.Price,
		Stock:      req.Stock,
	}
	key := inventoryKey(item.PharmacyID, item.DrugID)

	var outcome entity.Outcome
	err := u.txRunner.Run(ctx, "AddDrugToPharmacy", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx,
			Ref(entity.KindPharmacy, req.PharmacyID),
			Ref(entity.KindDrug, req.DrugID),
		); err != nil {
			return err
		}

		var err error
		outcome, err = u.reconciler.UpsertInventory(tx, item)
		if err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionInventoryUpsert, entity.KindPharmacyDrug, key, converter.PharmacyDrugToResponse(item, outcome))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Inventory %s: pharmacy=%d, drug=%d, price=%s, stock=%d", outcome, item.PharmacyID, item.DrugID, item.Price, item.Stock)
	return converter.PharmacyDrugToResponse(item, outcome), nil
}

func (u *inventoryUsecase) GetPharmacyDrug(ctx context.Context, pharmacyID, drugID int64) (*dto.PharmacyDrugResponse, error) {
	item, err := u.inventoryRepo.Find(u.db.WithContext(ctx), pharmacyID, drugID)
	if err != nil {
		u.log.Warnf("Failed to find inventory row %s: %+v", inventoryKey(pharmacyID, drugID), err)
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound(entity.KindPharmacyDrug.String(), inventoryKey(pharmacyID, drugID))
	}

	return converter.PharmacyDrugToResponse(item, ""), nil
}

func (u *inventoryUsecase) UpdatePharmacyDrug(ctx context.Context, pharmacyID, drugID int64, req *dto.UpdatePharmacyDrugRequest) (*dto.PharmacyDrugResponse, error) {
	key := inventoryKey(pharmacyID, drugID)
	var item *entity.PharmacyDrug

	err := u.txRunner.Run(ctx, "UpdatePharmacyDrug", func(tx *gorm.DB) error {
		var err error
		item, err = u.inventoryRepo.FindForUpdate(tx, pharmacyID, drugID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperror.NotFound(entity.KindPharmacyDrug.String(), key)
		}

		oldValue := converter.PharmacyDrugToResponse(item, "")

		item.Price = req.Price
		item.Stock = req.Stock

		updated, err := u.inventoryRepo.Replace(tx, item)
		if err != nil {
			return err
		}
		if updated == 0 {
			return apperror.NotFound(entity.KindPharmacyDrug.String(), key)
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionInventoryUpdate, entity.KindPharmacyDrug, key, oldValue, converter.PharmacyDrugToResponse(item, ""))
	})
	if err != nil {
		return nil, err
	}

	return converter.PharmacyDrugToResponse(item, entity.OutcomeUpdated), nil
}

func (u *inventoryUsecase) DeletePharmacyDrug(ctx context.Context, pharmacyID, drugID int64) (*dto.DeleteResponse, error) {
	key := inventoryKey(pharmacyID, drugID)
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeletePharmacyDrug", func(tx *gorm.DB) error {
		item, err := u.inventoryRepo.FindForUpdate(tx, pharmacyID, drugID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperror.NotFound(entity.KindPharmacyDrug.String(), key)
		}

		result, err = u.cascade.DeleteSimple(entity.KindPharmacyDrug, key, func() (int64, error) {
			return u.inventoryRepo.Delete(tx, pharmacyID, drugID)
		})
		if err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionInventoryDelete, entity.KindPharmacyDrug, key, converter.PharmacyDrugToResponse(item, ""))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Inventory row deleted: pharmacy=%d, drug=%d", pharmacyID, drugID)
	return converter.CascadeResultToResponse(result), nil
}
