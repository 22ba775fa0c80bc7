package dto

import "time"

// Request DTOs

// Dates use the YYYY-MM-DD layout. The end date must fall after the start
// date; that rule is enforced by the database.
type CreateContractRequest struct {
	PharmacyID  int64  `json:"pharmacy_id" validate:"required"`
	CompanyName string `json:"company_name" validate:"required,max=100"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Content     string `json:"content" validate:"required"`
	Supervisor  string `json:"supervisor" validate:"required,max=100"`
}

type UpdateContractRequest struct {
	PharmacyID  int64  `json:"pharmacy_id" validate:"required"`
	CompanyName string `json:"company_name" validate:"required,max=100"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Content     string `json:"content" validate:"required"`
	Supervisor  string `json:"supervisor" validate:"required,max=100"`
}

type UpdateContractSupervisorRequest struct {
	Supervisor string `json:"supervisor" validate:"required,max=100"`
}

// Response DTOs

type ContractResponse struct {
	ID          int64     `json:"id"`
	PharmacyID  int64     `json:"pharmacy_id"`
	CompanyName string    `json:"company_name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Content     string    `json:"content"`
	Supervisor  string    `json:"supervisor"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
