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

type ContractUsecase interface {
	AddContract(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error)
	GetContract(ctx context.Context, id int64) (*dto.ContractResponse, error)
	UpdateContract(ctx context.Context, id int64, req *dto.UpdateContractRequest) (*dto.ContractResponse, error)
	UpdateContractSupervisor(ctx context.Context, id int64, req *dto.UpdateContractSupervisorRequest) (*dto.ContractResponse, error)
	DeleteContract(ctx context.Context, id int64) (*dto.DeleteResponse, error)
}

type contractUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	txRunner     *TxRunner
	validator    *ReferenceValidator
	cascade      *CascadeOrchestrator
	contractRepo repository.ContractRepository
	auditService service.AuditService
}

func NewContractUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	validator *ReferenceValidator,
	cascade *CascadeOrchestrator,
	contractRepo repository.ContractRepository,
	auditService service.AuditService,
) ContractUsecase {
	return &contractUsecase{
		db:           db,
		log:          log,
		txRunner:     txRunner,
		validator:    validator,
		cascade:      cascade,
		contractRepo: contractRepo,
		auditService: auditService,
	}
}

// AddContract stores a contract between an existing pharmacy and company. The
// period check (end after start) is left to the database.
func (u *contractUsecase) AddContract(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	contract := &entity.Contract{
		PharmacyID:  req.PharmacyID,
		CompanyName: req.CompanyName,
		StartDate:   startDate,
		EndDate:     endDate,
		Content:     req.Content,
		Supervisor:  req.Supervisor,
	}

	err = u.txRunner.Run(ctx, "AddContract", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx,
			Ref(entity.KindPharmacy, req.PharmacyID),
			Ref(entity.KindCompany, req.CompanyName),
		); err != nil {
			return err
		}
		if err := u.contractRepo.Create(tx, contract); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionContractCreate, entity.KindContract, strconv.FormatInt(contract.ID, 10), converter.ContractToResponse(contract))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Contract created: id=%d, pharmacy=%d, company=%s", contract.ID, contract.PharmacyID, contract.CompanyName)
	return converter.ContractToResponse(contract), nil
}

func (u *contractUsecase) GetContract(ctx context.Context, id int64) (*dto.ContractResponse, error) {
	contract, err := u.contractRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find contract %d: %+v", id, err)
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NotFound(entity.KindContract.String(), strconv.FormatInt(id, 10))
	}

	return converter.ContractToResponse(contract), nil
}

func (u *contractUsecase) UpdateContract(ctx context.Context, id int64, req *dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	key := strconv.FormatInt(id, 10)

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	var contract *entity.Contract
	err = u.txRunner.Run(ctx, "UpdateContract", func(tx *gorm.DB) error {
		if err := u.validator.Require(tx,
			Ref(entity.KindPharmacy, req.PharmacyID),
			Ref(entity.KindCompany, req.CompanyName),
		); err != nil {
			return err
		}

		var err error
		contract, err = u.contractRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return apperror.NotFound(entity.KindContract.String(), key)
		}

		oldValue := converter.ContractToResponse(contract)

		contract.PharmacyID = req.PharmacyID
		contract.CompanyName = req.CompanyName
		contract.StartDate = startDate
		contract.EndDate = endDate
		contract.Content = req.Content
		contract.Supervisor = req.Supervisor

		if err := u.contractRepo.Update(tx, contract); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionContractUpdate, entity.KindContract, key, oldValue, converter.ContractToResponse(contract))
	})
	if err != nil {
		return nil, err
	}

	return converter.ContractToResponse(contract), nil
}

// UpdateContractSupervisor changes only the supervisor of a contract.
func (u *contractUsecase) UpdateContractSupervisor(ctx context.Context, id int64, req *dto.UpdateContractSupervisorRequest) (*dto.ContractResponse, error) {
	key := strconv.FormatInt(id, 10)
	var contract *entity.Contract

	err := u.txRunner.Run(ctx, "UpdateContractSupervisor", func(tx *gorm.DB) error {
		var err error
		contract, err = u.contractRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return apperror.NotFound(entity.KindContract.String(), key)
		}

		oldValue := converter.ContractToResponse(contract)

		updated, err := u.contractRepo.UpdateSupervisor(tx, id, req.Supervisor)
		if err != nil {
			return err
		}
		if updated == 0 {
			return apperror.NotFound(entity.KindContract.String(), key)
		}
		contract.Supervisor = req.Supervisor

		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionContractUpdate, entity.KindContract, key, oldValue, converter.ContractToResponse(contract))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Contract supervisor changed: id=%d, supervisor=%s", id, req.Supervisor)
	return converter.ContractToResponse(contract), nil
}

func (u *contractUsecase) DeleteContract(ctx context.Context, id int64) (*dto.DeleteResponse, error) {
	key := strconv.FormatInt(id, 10)
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeleteContract", func(tx *gorm.DB) error {
		contract, err := u.contractRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return apperror.NotFound(entity.KindContract.String(), key)
		}

		result, err = u.cascade.DeleteSimple(entity.KindContract, key, func() (int64, error) {
			return u.contractRepo.Delete(tx, id)
		})
		if err != nil {
			return err
		}
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionContractDelete, entity.KindContract, key, converter.ContractToResponse(contract))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Contract deleted: id=%d", id)
	return converter.CascadeResultToResponse(result), nil
}
