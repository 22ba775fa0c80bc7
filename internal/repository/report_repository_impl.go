package repository

import (
	"time"

	"pharmacy-records/internal/domain/entity"
	domainRepo "pharmacy-records/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) PatientPrescriptions(db *gorm.DB, patientID string, from, to time.Time) ([]entity.PatientPrescriptionRow, error) {
	var rows []entity.PatientPrescriptionRow
	err := db.Table("prescriptions").
		Select("prescriptions.id AS prescription_id, prescriptions.date, doctors.national_id AS doctor_id, doctors.name AS doctor_name").
		Joins("JOIN doctors ON doctors.national_id = prescriptions.doctor_id").
		Where("prescriptions.patient_id = ? AND prescriptions.date >= ? AND prescriptions.date <= ?", patientID, from, to).
		Order("prescriptions.date ASC, prescriptions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) PrescriptionLines(db *gorm.DB, patientID string, date time.Time) ([]entity.PrescriptionLineRow, error) {
	var rows []entity.PrescriptionLineRow
	err := db.Table("prescription_details").
		Select("prescription_details.prescription_id, drugs.id AS drug_id, drugs.trade_name, drugs.formula, drugs.company_name, prescription_details.quantity").
		Joins("JOIN prescriptions ON prescriptions.id = prescription_details.prescription_id").
		Joins("JOIN drugs ON drugs.id = prescription_details.drug_id").
		Where("prescriptions.patient_id = ? AND prescriptions.date = ?", patientID, date).
		Order("prescription_details.prescription_id ASC, drugs.trade_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) CompanyCatalog(db *gorm.DB, companyName string) ([]entity.CompanyCatalogRow, error) {
	var rows []entity.CompanyCatalogRow
	err := db.Table("drugs").
		Select("drugs.id AS drug_id, drugs.trade_name, drugs.formula, COUNT(pharmacy_drugs.pharmacy_id) AS pharmacy_count").
		Joins("LEFT JOIN pharmacy_drugs ON pharmacy_drugs.drug_id = drugs.id").
		Where("drugs.company_name = ?", companyName).
		Group("drugs.id, drugs.trade_name, drugs.formula").
		Order("drugs.trade_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) PharmacyStock(db *gorm.DB, pharmacyID int64) ([]entity.PharmacyStockRow, error) {
	var rows []entity.PharmacyStockRow
	err := db.Table("pharmacy_drugs").
		Select("drugs.id AS drug_id, drugs.trade_name, drugs.company_name, pharmacy_drugs.price, pharmacy_drugs.stock").
		Joins("JOIN drugs ON drugs.id = pharmacy_drugs.drug_id").
		Where("pharmacy_drugs.pharmacy_id = ?", pharmacyID).
		Order("drugs.trade_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) PharmacyCompanyContracts(db *gorm.DB, pharmacyID int64, companyName string) ([]entity.Contract, error) {
	var contracts []entity.Contract
	err := db.Where("pharmacy_id = ? AND company_name = ?", pharmacyID, companyName).
		Order("start_date ASC, id ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// DoctorPatients counts, per patient, the prescriptions written by that same doctor.
func (r *reportRepository) DoctorPatients(db *gorm.DB, doctorID string) ([]entity.DoctorPatientRow, error) {
	var rows []entity.DoctorPatientRow
	err := db.Table("patients").
		Select("patients.national_id AS patient_id, patients.name, patients.age, COUNT(prescriptions.id) AS prescription_count").
		Joins("LEFT JOIN prescriptions ON prescriptions.patient_id = patients.national_id AND prescriptions.doctor_id = patients.doctor_id").
		Where("patients.doctor_id = ?", doctorID).
		Group("patients.national_id, patients.name, patients.age").
		Order("patients.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
