package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	NationalID        string `json:"national_id" validate:"required,max=20"`
	Name              string `json:"name" validate:"required,max=100"`
	Specialty         string `json:"specialty" validate:"required,max=100"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0"`
}

type UpdateDoctorRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Specialty         string `json:"specialty" validate:"required,max=100"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0"`
}

// Response DTOs

type DoctorResponse struct {
	NationalID        string    `json:"national_id"`
	Name              string    `json:"name"`
	Specialty         string    `json:"specialty"`
	YearsOfExperience int       `json:"years_of_experience"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
