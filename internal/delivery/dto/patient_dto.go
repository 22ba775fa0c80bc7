package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	NationalID string `json:"national_id" validate:"required,max=20"`
	Name       string `json:"name" validate:"required,max=100"`
	Address    string `json:"address" validate:"required,max=255"`
	Age        int    `json:"age" validate:"gt=0"`
	DoctorID   string `json:"doctor_id" validate:"required,max=20"`
}

type UpdatePatientRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Address  string `json:"address" validate:"required,max=255"`
	Age      int    `json:"age" validate:"gt=0"`
	DoctorID string `json:"doctor_id" validate:"required,max=20"`
}

// Response DTOs

type PatientResponse struct {
	NationalID string    `json:"national_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Age        int       `json:"age"`
	DoctorID   string    `json:"doctor_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
