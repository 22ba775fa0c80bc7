package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePharmacyRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=20"`
}

type UpdatePharmacyRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=20"`
}

// UpsertPharmacyDrugRequest stocks a drug at a pharmacy. Both values replace
// whatever the row held before.
type UpsertPharmacyDrugRequest struct {
	PharmacyID int64           `json:"pharmacy_id" validate:"required"`
	DrugID     int64           `json:"drug_id" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock" validate:"gte=0"`
}

type UpdatePharmacyDrugRequest struct {
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"gte=0"`
}

// Response DTOs

type PharmacyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PharmacyDrugResponse struct {
	PharmacyID int64           `json:"pharmacy_id"`
	DrugID     int64           `json:"drug_id"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Outcome    string          `json:"outcome,omitempty"`
}
