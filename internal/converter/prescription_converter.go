package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:        prescription.ID,
		PatientID: prescription.PatientID,
		DoctorID:  prescription.DoctorID,
		Date:      prescription.Date.Format(DateLayout),
		CreatedAt: prescription.CreatedAt,
		UpdatedAt: prescription.UpdatedAt,
	}
}

func PrescriptionDetailToResponse(detail *entity.PrescriptionDetail, outcome entity.Outcome) *dto.PrescriptionDetailResponse {
	if detail == nil {
		return nil
	}

	return &dto.PrescriptionDetailResponse{
		PrescriptionID: detail.PrescriptionID,
		DrugID:         detail.DrugID,
		Quantity:       detail.Quantity,
		Outcome:        string(outcome),
	}
}
