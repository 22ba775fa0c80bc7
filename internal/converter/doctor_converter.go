package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		NationalID:        doctor.NationalID,
		Name:              doctor.Name,
		Specialty:         doctor.Specialty,
		YearsOfExperience: doctor.YearsOfExperience,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
}
