package dto

import "github.com/shopspring/decimal"

type PatientPrescriptionItem struct {
	PrescriptionID int64  `json:"prescription_id"`
	Date           string `json:"date"`
	DoctorID       string `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
}

type PatientPrescriptionsReport struct {
	PatientID     string                    `json:"patient_id"`
	From          string                    `json:"from"`
	To            string                    `json:"to"`
	Prescriptions []PatientPrescriptionItem `json:"prescriptions"`
}

type PrescriptionLineItem struct {
	PrescriptionID int64  `json:"prescription_id"`
	DrugID         int64  `json:"drug_id"`
	TradeName      string `json:"trade_name"`
	Formula        string `json:"formula"`
	CompanyName    string `json:"company_name"`
	Quantity       int    `json:"quantity"`
}

type PrescriptionLinesReport struct {
	PatientID string                 `json:"patient_id"`
	Date      string                 `json:"date"`
	Lines     []PrescriptionLineItem `json:"lines"`
}

type CompanyCatalogItem struct {
	DrugID        int64  `json:"drug_id"`
	TradeName     string `json:"trade_name"`
	Formula       string `json:"formula"`
	PharmacyCount int64  `json:"pharmacy_count"`
}

type CompanyCatalogReport struct {
	CompanyName string               `json:"company_name"`
	Drugs       []CompanyCatalogItem `json:"drugs"`
}

type PharmacyStockItem struct {
	DrugID      int64           `json:"drug_id"`
	TradeName   string          `json:"trade_name"`
	CompanyName string          `json:"company_name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type PharmacyStockReport struct {
	PharmacyID int64               `json:"pharmacy_id"`
	Items      []PharmacyStockItem `json:"items"`
}

type PharmacyCompanyContractsReport struct {
	PharmacyID  int64              `json:"pharmacy_id"`
	CompanyName string             `json:"company_name"`
	Contracts   []ContractResponse `json:"contracts"`
}

type DoctorPatientItem struct {
	PatientID         string `json:"patient_id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	PrescriptionCount int64  `json:"prescription_count"`
}

type DoctorPatientsReport struct {
	DoctorID string              `json:"doctor_id"`
	Patients []DoctorPatientItem `json:"patients"`
}
