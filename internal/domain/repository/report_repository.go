package repository

import (
	"time"

	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

// ReportRepository runs the read-only joins behind the reports.
type ReportRepository interface {
	PatientPrescriptions(db *gorm.DB, patientID string, from, to time.Time) ([]entity.PatientPrescriptionRow, error)
	PrescriptionLines(db *gorm.DB, patientID string, date time.Time) ([]entity.PrescriptionLineRow, error)
	CompanyCatalog(db *gorm.DB, companyName string) ([]entity.CompanyCatalogRow, error)
	PharmacyStock(db *gorm.DB, pharmacyID int64) ([]entity.PharmacyStockRow, error)
	PharmacyCompanyContracts(db *gorm.DB, pharmacyID int64, companyName string) ([]entity.Contract, error)
	DoctorPatients(db *gorm.DB, doctorID string) ([]entity.DoctorPatientRow, error)
}
