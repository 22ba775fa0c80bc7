package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

func PharmacyToResponse(pharmacy *entity.Pharmacy) *dto.PharmacyResponse {
	if pharmacy == nil {
		return nil
	}

	return &dto.PharmacyResponse{
		ID:        pharmacy.ID,
		Name:      pharmacy.Name,
		Address:   pharmacy.Address,
		Phone:     pharmacy.Phone,
		CreatedAt: pharmacy.CreatedAt,
		UpdatedAt: pharmacy.UpdatedAt,
	}
}

// PharmacyDrugToResponse converts an inventory row. outcome is empty for plain updates.
func PharmacyDrugToResponse(item *entity.PharmacyDrug, outcome entity.Outcome) *dto.PharmacyDrugResponse {
	if item == nil {
		return nil
	}

	return &dto.PharmacyDrugResponse{
		PharmacyID: item.PharmacyID,
		DrugID:     item.DrugID,
		Price:      item.Price,
		Stock:      item.Stock,
		Outcome:    string(outcome),
	}
}
