package handler

import (
	"encoding/json"
	"net/http"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/response"
	"pharmacy-records/pkg/validator"
)

type DrugHandler struct {
	drugUsecase usecase.DrugUsecase
	validator   *validator.CustomValidator
}

func NewDrugHandler(drugUsecase usecase.DrugUsecase, validator *validator.CustomValidator) *DrugHandler {
	return &DrugHandler{
		drugUsecase: drugUsecase,
		validator:   validator,
	}
}

func (h *DrugHandler) CreateDrug(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	drug, err := h.drugUsecase.AddDrug(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create drug")
		return
	}

	response.Success(w, http.StatusCreated, "Drug created successfully", drug)
}

func (h *DrugHandler) GetDrug(w http.ResponseWriter, r *http.Request) {
	drugID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	drug, err := h.drugUsecase.GetDrug(r.Context(), drugID)
	if err != nil {
		writeError(w, err, "Failed to get drug")
		return
	}

	response.Success(w, http.StatusOK, "Drug retrieved successfully", drug)
}

func (h *DrugHandler) UpdateDrug(w http.ResponseWriter, r *http.Request) {
	drugID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	var req dto.UpdateDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	drug, err := h.drugUsecase.UpdateDrug(r.Context(), drugID, &req)
	if err != nil {
		writeError(w, err, "Failed to update drug")
		return
	}

	response.Success(w, http.StatusOK, "Drug updated successfully", drug)
}

func (h *DrugHandler) DeleteDrug(w http.ResponseWriter, r *http.Request) {
	drugID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	result, err := h.drugUsecase.DeleteDrug(r.Context(), drugID)
	if err != nil {
		writeError(w, err, "Failed to delete drug")
		return
	}

	response.Success(w, http.StatusOK, "Drug deleted successfully", result)
}
