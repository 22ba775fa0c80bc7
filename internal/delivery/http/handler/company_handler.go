package handler

import (
	"encoding/json"
	"net/http"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/response"
	"pharmacy-records/pkg/validator"

	"github.com/gorilla/mux"
)

type CompanyHandler struct {
	companyUsecase usecase.CompanyUsecase
	validator      *validator.CustomValidator
}

func NewCompanyHandler(companyUsecase usecase.CompanyUsecase, validator *validator.CustomValidator) *CompanyHandler {
	return &CompanyHandler{
		companyUsecase: companyUsecase,
		validator:      validator,
	}
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	company, err := h.companyUsecase.AddPharmaceuticalCompany(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create company")
		return
	}

	response.Success(w, http.StatusCreated, "Company created successfully", company)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyUsecase.GetPharmaceuticalCompany(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err, "Failed to get company")
		return
	}

	response.Success(w, http.StatusOK, "Company retrieved successfully", company)
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	company, err := h.companyUsecase.UpdatePharmaceuticalCompany(r.Context(), mux.Vars(r)["name"], &req)
	if err != nil {
		writeError(w, err, "Failed to update company")
		return
	}

	response.Success(w, http.StatusOK, "Company updated successfully", company)
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyUsecase.DeletePharmaceuticalCompany(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err, "Failed to delete company")
		return
	}

	response.Success(w, http.StatusOK, "Company deleted successfully", result)
}
