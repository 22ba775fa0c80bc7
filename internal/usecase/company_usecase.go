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

type CompanyUsecase interface {
	AddPharmaceuticalCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetPharmaceuticalCompany(ctx context.Context, name string) (*dto.CompanyResponse, error)
	UpdatePharmaceuticalCompany(ctx context.Context, name string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	DeletePharmaceuticalCompany(ctx context.Context, name string) (*dto.DeleteResponse, error)
}

type companyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	txRunner     *TxRunner
	cascade      *CascadeOrchestrator
	companyRepo  repository.CompanyRepository
	auditService service.AuditService
}

func NewCompanyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	txRunner *TxRunner,
	cascade *CascadeOrchestrator,
	companyRepo repository.CompanyRepository,
	auditService service.AuditService,
) CompanyUsecase {
	return &companyUsecase{
		db:           db,
		log:          log,
		txRunner:     txRunner,
		cascade:      cascade,
		companyRepo:  companyRepo,
		auditService: auditService,
	}
}

func (u *companyUsecase) AddPharmaceuticalCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.PharmaceuticalCompany{
		Name:  req.Name,
		Phone: req.Phone,
	}

	err := u.txRunner.Run(ctx, "AddPharmaceuticalCompany", func(tx *gorm.DB) error {
		if err := u.companyRepo.Create(tx, company); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionCompanyCreate, entity.KindCompany, company.Name, converter.CompanyToResponse(company))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Pharmaceutical company created: name=%s", company.Name)
	return converter.CompanyToResponse(company), nil
}

func (u *companyUsecase) GetPharmaceuticalCompany(ctx context.Context, name string) (*dto.CompanyResponse, error) {
	company, err := u.companyRepo.FindByName(u.db.WithContext(ctx), name)
	if err != nil {
		u.log.Warnf("Failed to find company %s: %+v", name, err)
		return nil, err
	}
	if company == nil {
		return nil, apperror.NotFound(entity.KindCompany.String(), name)
	}

	return converter.CompanyToResponse(company), nil
}

func (u *companyUsecase) UpdatePharmaceuticalCompany(ctx context.Context, name string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	var company *entity.PharmaceuticalCompany

	err := u.txRunner.Run(ctx, "UpdatePharmaceuticalCompany", func(tx *gorm.DB) error {
		var err error
		company, err = u.companyRepo.FindByNameForUpdate(tx, name)
		if err != nil {
			return err
		}
		if company == nil {
			return apperror.NotFound(entity.KindCompany.String(), name)
		}

		oldValue := converter.CompanyToResponse(company)
		company.Phone = req.Phone

		if err := u.companyRepo.Update(tx, company); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, entity.AuditActionCompanyUpdate, entity.KindCompany, name, oldValue, converter.CompanyToResponse(company))
	})
	if err != nil {
		return nil, err
	}

	return converter.CompanyToResponse(company), nil
}

// DeletePharmaceuticalCompany removes the company's contracts and the company.
// Its drugs go with it through the foreign key and are counted in the result.
func (u *companyUsecase) DeletePharmaceuticalCompany(ctx context.Context, name string) (*dto.DeleteResponse, error) {
	var result *entity.CascadeResult

	err := u.txRunner.Run(ctx, "DeletePharmaceuticalCompany", func(tx *gorm.DB) error {
		company, res, err := u.cascade.DeleteCompany(tx, name)
		if err != nil {
			return err
		}
		result = res
		return u.auditService.LogDelete(ctx, tx, entity.AuditActionCompanyDelete, entity.KindCompany, name, converter.CompanyToResponse(company))
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Pharmaceutical company deleted: name=%s, removed=%v", name, result.Removed)
	return converter.CascadeResultToResponse(result), nil
}
