package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report rows are read-only projections produced by raw joins.

type PatientPrescriptionRow struct {
	PrescriptionID int64     `json:"prescription_id"`
	Date           time.Time `json:"date"`
	DoctorID       string    `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
}

type PrescriptionLineRow struct {
	PrescriptionID int64  `json:"prescription_id"`
	DrugID         int64  `json:"drug_id"`
	TradeName      string `json:"trade_name"`
	Formula        string `json:"formula"`
	CompanyName    string `json:"company_name"`
	Quantity       int    `json:"quantity"`
}

type CompanyCatalogRow struct {
	DrugID        int64  `json:"drug_id"`
	TradeName     string `json:"trade_name"`
	Formula       string `json:"formula"`
	PharmacyCount int64  `json:"pharmacy_count"`
}

type PharmacyStockRow struct {
	DrugID      int64           `json:"drug_id"`
	TradeName   string          `json:"trade_name"`
	CompanyName string          `json:"company_name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type DoctorPatientRow struct {
	PatientID         string `json:"patient_id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	PrescriptionCount int64  `json:"prescription_count"`
}
