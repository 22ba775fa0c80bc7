package handler

import (
	"encoding/json"
	"net/http"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/response"
	"pharmacy-records/pkg/validator"
)

type PharmacyHandler struct {
	pharmacyUsecase  usecase.PharmacyUsecase
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase:  pharmacyUsecase,
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *PharmacyHandler) CreatePharmacy(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacy, err := h.pharmacyUsecase.AddPharmacy(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create pharmacy")
		return
	}

	response.Success(w, http.StatusCreated, "Pharmacy created successfully", pharmacy)
}

func (h *PharmacyHandler) GetPharmacy(w http.ResponseWriter, r *http.Request) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	pharmacy, err := h.pharmacyUsecase.GetPharmacy(r.Context(), pharmacyID)
	if err != nil {
		writeError(w, err, "Failed to get pharmacy")
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy retrieved successfully", pharmacy)
}

func (h *PharmacyHandler) UpdatePharmacy(w http.ResponseWriter, r *http.Request) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	var req dto.UpdatePharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacy, err := h.pharmacyUsecase.UpdatePharmacy(r.Context(), pharmacyID, &req)
	if err != nil {
		writeError(w, err, "Failed to update pharmacy")
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy updated successfully", pharmacy)
}

func (h *PharmacyHandler) DeletePharmacy(w http.ResponseWriter, r *http.Request) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	result, err := h.pharmacyUsecase.DeletePharmacy(r.Context(), pharmacyID)
	if err != nil {
		writeError(w, err, "Failed to delete pharmacy")
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy deleted successfully", result)
}

// StockDrug inserts or replaces the inventory row for the pharmacy in the path.
func (h *PharmacyHandler) StockDrug(w http.ResponseWriter, r *http.Request) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	var req dto.UpsertPharmacyDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.PharmacyID = pharmacyID

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.AddDrugToPharmacy(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to stock drug")
		return
	}

	status := http.StatusOK
	if item.Outcome == string(entity.OutcomeInserted) {
		status = http.StatusCreated
	}
	response.Success(w, status, "Drug stocked successfully", item)
}

func (h *PharmacyHandler) GetStockedDrug(w http.ResponseWriter, r *http.Request) {
	pharmacyID, drugID, ok := inventoryPath(w, r)
	if !ok {
		return
	}

	item, err := h.inventoryUsecase.GetPharmacyDrug(r.Context(), pharmacyID, drugID)
	if err != nil {
		writeError(w, err, "Failed to get inventory")
		return
	}

	response.Success(w, http.StatusOK, "Inventory retrieved successfully", item)
}

func (h *PharmacyHandler) UpdateStockedDrug(w http.ResponseWriter, r *http.Request) {
	pharmacyID, drugID, ok := inventoryPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePharmacyDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.UpdatePharmacyDrug(r.Context(), pharmacyID, drugID, &req)
	if err != nil {
		writeError(w, err, "Failed to update inventory")
		return
	}

	response.Success(w, http.StatusOK, "Inventory updated successfully", item)
}

func (h *PharmacyHandler) RemoveStockedDrug(w http.ResponseWriter, r *http.Request) {
	pharmacyID, drugID, ok := inventoryPath(w, r)
	if !ok {
		return
	}

	result, err := h.inventoryUsecase.DeletePharmacyDrug(r.Context(), pharmacyID, drugID)
	if err != nil {
		writeError(w, err, "Failed to delete inventory")
		return
	}

	response.Success(w, http.StatusOK, "Inventory deleted successfully", result)
}

func inventoryPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return 0, 0, false
	}
	drugID, err := pathInt64(r, "drugId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return 0, 0, false
	}
	return pharmacyID, drugID, true
}
