package dto

import "time"

// Request DTOs

type CreateCompanyRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
}

type UpdateCompanyRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
}

// Response DTOs

type CompanyResponse struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
