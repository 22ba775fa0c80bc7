package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

func ContractToResponse(contract *entity.Contract) *dto.ContractResponse {
	if contract == nil {
		return nil
	}

	return &dto.ContractResponse{
		ID:          contract.ID,
		PharmacyID:  contract.PharmacyID,
		CompanyName: contract.CompanyName,
		StartDate:   contract.StartDate.Format(DateLayout),
		EndDate:     contract.EndDate.Format(DateLayout),
		Content:     contract.Content,
		Supervisor:  contract.Supervisor,
		CreatedAt:   contract.CreatedAt,
		UpdatedAt:   contract.UpdatedAt,
	}
}

func ContractsToResponses(contracts []entity.Contract) []dto.ContractResponse {
	responses := make([]dto.ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = *ContractToResponse(&contracts[i])
	}
	return responses
}
