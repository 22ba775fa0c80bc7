package usecase

import (
	"context"
	"fmt"
	"strconv"

	"pharmacy-records/internal/converter"
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/internal/service"
	"pharmacy-records/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Report names, used in cache keys and metrics labels.
const (
	ReportPatientPrescriptions     = "patient_prescriptions"
	ReportPrescriptionLines        = "prescription_lines"
	ReportCompanyCatalog           = "company_catalog"
	ReportPharmacyStock            = "pharmacy_stock"
	ReportPharmacyCompanyContracts = "pharmacy_company_contracts"
	ReportDoctorPatients           = "doctor_patients"
)

// ReportUsecase serves the read-only reports. Reports run outside any
// transaction and may be answered from the report cache.
type ReportUsecase interface {
	PatientPrescriptions(ctx context.Context, patientID, from, to string) (*dto.PatientPrescriptionsReport, error)
	PrescriptionLines(ctx context.Context, patientID, date string) (*dto.PrescriptionLinesReport, error)
	CompanyCatalog(ctx context.Context, companyName string) (*dto.CompanyCatalogReport, error)
	PharmacyStock(ctx context.Context, pharmacyID int64) (*dto.PharmacyStockReport, error)
	PharmacyCompanyContracts(ctx context.Context, pharmacyID int64, companyName string) (*dto.PharmacyCompanyContractsReport, error)
	DoctorPatients(ctx context.Context, doctorID string) (*dto.DoctorPatientsReport, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	cache      *service.ReportCache
	reportRepo repository.ReportRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *service.ReportCache,
	reportRepo repository.ReportRepository,
) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		cache:      cache,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) PatientPrescriptions(ctx context.Context, patientID, from, to string) (*dto.PatientPrescriptionsReport, error) {
	fromDate, err := parseDate("from", from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate("to", to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, apperror.InvalidInput(fmt.Sprintf("date range %s..%s is empty", from, to), nil)
	}

	args := []string{patientID, fromDate.Format(converter.DateLayout), toDate.Format(converter.DateLayout)}
	return service.Cached(ctx, u.cache, ReportPatientPrescriptions, args, func() (*dto.PatientPrescriptionsReport, error) {
		rows, err := u.reportRepo.PatientPrescriptions(u.db.WithContext(ctx), patientID, fromDate, toDate)
		if err != nil {
			u.log.Warnf("Failed to load prescriptions of patient %s: %+v", patientID, err)
			return nil, err
		}
		return &dto.PatientPrescriptionsReport{
			PatientID:     patientID,
			From:          args[1],
			To:            args[2],
			Prescriptions: converter.PatientPrescriptionRowsToItems(rows),
		}, nil
	})
}

func (u *reportUsecase) PrescriptionLines(ctx context.Context, patientID, date string) (*dto.PrescriptionLinesReport, error) {
	day, err := parseDate("date", date)
	if err != nil {
		return nil, err
	}

	args := []string{patientID, day.Format(converter.DateLayout)}
	return service.Cached(ctx, u.cache, ReportPrescriptionLines, args, func() (*dto.PrescriptionLinesReport, error) {
		rows, err := u.reportRepo.PrescriptionLines(u.db.WithContext(ctx), patientID, day)
		if err != nil {
			u.log.Warnf("Failed to load prescription lines of patient %s on %s: %+v", patientID, args[1], err)
			return nil, err
		}
		return &dto.PrescriptionLinesReport{
			PatientID: patientID,
			Date:      args[1],
			Lines:     converter.PrescriptionLineRowsToItems(rows),
		}, nil
	})
}

func (u *reportUsecase) CompanyCatalog(ctx context.Context, companyName string) (*dto.CompanyCatalogReport, error) {
	return service.Cached(ctx, u.cache, ReportCompanyCatalog, []string{companyName}, func() (*dto.CompanyCatalogReport, error) {
		rows, err := u.reportRepo.CompanyCatalog(u.db.WithContext(ctx), companyName)
		if err != nil {
			u.log.Warnf("Failed to load catalog of company %s: %+v", companyName, err)
			return nil, err
		}
		return &dto.CompanyCatalogReport{
			CompanyName: companyName,
			Drugs:       converter.CompanyCatalogRowsToItems(rows),
		}, nil
	})
}

func (u *reportUsecase) PharmacyStock(ctx context.Context, pharmacyID int64) (*dto.PharmacyStockReport, error) {
	args := []string{strconv.FormatInt(pharmacyID, 10)}
	return service.Cached(ctx, u.cache, ReportPharmacyStock, args, func() (*dto.PharmacyStockReport, error) {
		rows, err := u.reportRepo.PharmacyStock(u.db.WithContext(ctx), pharmacyID)
		if err != nil {
			u.log.Warnf("Failed to load stock of pharmacy %d: %+v", pharmacyID, err)
			return nil, err
		}
		return &dto.PharmacyStockReport{
			PharmacyID: pharmacyID,
			Items:      converter.PharmacyStockRowsToItems(rows),
		}, nil
	})
}

func (u *reportUsecase) PharmacyCompanyContracts(ctx context.Context, pharmacyID int64, companyName string) (*dto.PharmacyCompanyContractsReport, error) {
	args := []string{strconv.FormatInt(pharmacyID, 10), companyName}
	return service.Cached(ctx, u.cache, ReportPharmacyCompanyContracts, args, func() (*dto.PharmacyCompanyContractsReport, error) {
		contracts, err := u.reportRepo.PharmacyCompanyContracts(u.db.WithContext(ctx), pharmacyID, companyName)
		if err != nil {
			u.log.Warnf("Failed to load contracts of pharmacy %d with %s: %+v", pharmacyID, companyName, err)
			return nil, err
		}
		return &dto.PharmacyCompanyContractsReport{
			PharmacyID:  pharmacyID,
			CompanyName: companyName,
			Contracts:   converter.ContractsToResponses(contracts),
		}, nil
	})
}

func (u *reportUsecase) DoctorPatients(ctx context.Context, doctorID string) (*dto.DoctorPatientsReport, error) {
	return service.Cached(ctx, u.cache, ReportDoctorPatients, []string{doctorID}, func() (*dto.DoctorPatientsReport, error) {
		rows, err := u.reportRepo.DoctorPatients(u.db.WithContext(ctx), doctorID)
		if err != nil {
			u.log.Warnf("Failed to load patients of doctor %s: %+v", doctorID, err)
			return nil, err
		}
		return &dto.DoctorPatientsReport{
			DoctorID: doctorID,
			Patients: converter.DoctorPatientRowsToItems(rows),
		}, nil
	})
}
