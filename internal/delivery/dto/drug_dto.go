package dto

import "time"

// Request DTOs

type CreateDrugRequest struct {
	TradeName   string `json:"trade_name" validate:"required,max=100"`
	Formula     string `json:"formula" validate:"required"`
	CompanyName string `json:"company_name" validate:"required,max=100"`
}

type UpdateDrugRequest struct {
	TradeName   string `json:"trade_name" validate:"required,max=100"`
	Formula     string `json:"formula" validate:"required"`
	CompanyName string `json:"company_name" validate:"required,max=100"`
}

// Response DTOs

type DrugResponse struct {
	ID          int64     `json:"id"`
	TradeName   string    `json:"trade_name"`
	Formula     string    `json:"formula"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
