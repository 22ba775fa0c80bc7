package converter

import (
	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
)

func CompanyToResponse(company *entity.PharmaceuticalCompany) *dto.CompanyResponse {
	if company == nil {
		return nil
	}

	return &dto.CompanyResponse{
		Name:      company.Name,
		Phone:     company.Phone,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}
