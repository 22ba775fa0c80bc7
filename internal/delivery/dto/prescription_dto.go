package dto

import "time"

// Request DTOs

type AddPrescriptionRequest struct {
	PatientID string `json:"patient_id" validate:"required,max=20"`
	DoctorID  string `json:"doctor_id" validate:"required,max=20"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type UpdatePrescriptionRequest struct {
	PatientID string `json:"patient_id" validate:"required,max=20"`
	DoctorID  string `json:"doctor_id" validate:"required,max=20"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type AddPrescriptionDetailRequest struct {
	PrescriptionID int64 `json:"prescription_id" validate:"required"`
	DrugID         int64 `json:"drug_id" validate:"required"`
	Quantity       int   `json:"quantity" validate:"gt=0"`
}

type UpdatePrescriptionDetailRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID             int64     `json:"id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	Date           string    `json:"date"`
	Outcome        string    `json:"outcome,omitempty"`
	ClearedDetails int64     `json:"cleared_details,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PrescriptionDetailResponse struct {
	PrescriptionID int64  `json:"prescription_id"`
	DrugID         int64  `json:"drug_id"`
	Quantity       int    `json:"quantity"`
	Outcome        string `json:"outcome,omitempty"`
}
