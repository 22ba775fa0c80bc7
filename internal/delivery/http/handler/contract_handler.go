package handler

import (
	"encoding/json"
	"net/http"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/response"
	"pharmacy-records/pkg/validator"
)

type ContractHandler struct {
	contractUsecase usecase.ContractUsecase
	validator       *validator.CustomValidator
}

func NewContractHandler(contractUsecase usecase.ContractUsecase, validator *validator.CustomValidator) *ContractHandler {
	return &ContractHandler{
		contractUsecase: contractUsecase,
		validator:       validator,
	}
}

func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contract, err := h.contractUsecase.AddContract(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create contract")
		return
	}

	response.Success(w, http.StatusCreated, "Contract created successfully", contract)
}

func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contract ID", nil)
		return
	}

	contract, err := h.contractUsecase.GetContract(r.Context(), contractID)
	if err != nil {
		writeError(w, err, "Failed to get contract")
		return
	}

	response.Success(w, http.StatusOK, "Contract retrieved successfully", contract)
}

func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contract ID", nil)
		return
	}

	var req dto.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contract, err := h.contractUsecase.UpdateContract(r.Context(), contractID, &req)
	if err != nil {
		writeError(w, err, "Failed to update contract")
		return
	}

	response.Success(w, http.StatusOK, "Contract updated successfully", contract)
}

func (h *ContractHandler) UpdateSupervisor(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contract ID", nil)
		return
	}

	var req dto.UpdateContractSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contract, err := h.contractUsecase.UpdateContractSupervisor(r.Context(), contractID, &req)
	if err != nil {
		writeError(w, err, "Failed to update contract supervisor")
		return
	}

	response.Success(w, http.StatusOK, "Contract supervisor updated successfully", contract)
}

func (h *ContractHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid contract ID", nil)
		return
	}

	result, err := h.contractUsecase.DeleteContract(r.Context(), contractID)
	if err != nil {
		writeError(w, err, "Failed to delete contract")
		return
	}

	response.Success(w, http.StatusOK, "Contract deleted successfully", result)
}
