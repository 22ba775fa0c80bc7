package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

func DrugToResponse(drug *entity.Drug) *dto.DrugResponse {
	if drug == nil {
		return nil
	}

	return &dto.DrugResponse{
		ID:          drug.ID,
		TradeName:   drug.TradeName,
		Formula:     drug.Formula,
		CompanyName: drug.CompanyName,
		CreatedAt:   drug.CreatedAt,
		UpdatedAt:   drug.UpdatedAt,
	}
}
