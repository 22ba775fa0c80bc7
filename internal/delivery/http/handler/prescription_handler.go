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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// CreatePrescription answers 201 for a new prescription and 200 when the
// pair's existing prescription was re-dated or left as it was.
func (h *PrescriptionHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.AddPrescription(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to add prescription")
		return
	}

	status := http.StatusOK
	if prescription.Outcome == string(entity.OutcomeInserted) {
		status = http.StatusCreated
	}
	response.Success(w, status, "Prescription recorded successfully", prescription)
}

func (h *PrescriptionHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	prescription, err := h.prescriptionUsecase.GetPrescription(r.Context(), prescriptionID)
	if err != nil {
		writeError(w, err, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.UpdatePrescription(r.Context(), prescriptionID, &req)
	if err != nil {
		writeError(w, err, "Failed to update prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	result, err := h.prescriptionUsecase.DeletePrescription(r.Context(), prescriptionID)
	if err != nil {
		writeError(w, err, "Failed to delete prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", result)
}

func (h *PrescriptionHandler) AddDrug(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	var req dto.AddPrescriptionDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.PrescriptionID = prescriptionID

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	detail, err := h.prescriptionUsecase.AddDrugToPrescription(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to add drug to prescription")
		return
	}

	status := http.StatusOK
	if detail.Outcome == string(entity.OutcomeInserted) {
		status = http.StatusCreated
	}
	response.Success(w, status, "Prescription line recorded successfully", detail)
}

func (h *PrescriptionHandler) GetDrug(w http.ResponseWriter, r *http.Request) {
	prescriptionID, drugID, ok := detailPath(w, r)
	if !ok {
		return
	}

	detail, err := h.prescriptionUsecase.GetPrescriptionDetail(r.Context(), prescriptionID, drugID)
	if err != nil {
		writeError(w, err, "Failed to get prescription line")
		return
	}

	response.Success(w, http.StatusOK, "Prescription line retrieved successfully", detail)
}

func (h *PrescriptionHandler) UpdateDrug(w http.ResponseWriter, r *http.Request) {
	prescriptionID, drugID, ok := detailPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePrescriptionDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	detail, err := h.prescriptionUsecase.UpdatePrescriptionDetail(r.Context(), prescriptionID, drugID, &req)
	if err != nil {
		writeError(w, err, "Failed to update prescription line")
		return
	}

	response.Success(w, http.StatusOK, "Prescription line updated successfully", detail)
}

func (h *PrescriptionHandler) RemoveDrug(w http.ResponseWriter, r *http.Request) {
	prescriptionID, drugID, ok := detailPath(w, r)
	if !ok {
		return
	}

	result, err := h.prescriptionUsecase.DeletePrescriptionDetail(r.Context(), prescriptionID, drugID)
	if err != nil {
		writeError(w, err, "Failed to delete prescription line")
		return
	}

	response.Success(w, http.StatusOK, "Prescription line deleted successfully", result)
}

func detailPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	prescriptionID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return 0, 0, false
	}
	drugID, err := pathInt64(r, "drugId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return 0, 0, false
	}
	return prescriptionID, drugID, true
}
