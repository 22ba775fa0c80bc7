package handler

import (
	"net/http"

	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/response"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

func (h *ReportHandler) PatientPrescriptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("from") == "" || query.Get("to") == "" {
		response.BadRequest(w, "Query parameters from and to are required")
		return
	}

	report, err := h.reportUsecase.PatientPrescriptions(r.Context(), mux.Vars(r)["id"], query.Get("from"), query.Get("to"))
	if err != nil {
		writeError(w, err, "Failed to load patient prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) PrescriptionLines(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter date is required")
		return
	}

	report, err := h.reportUsecase.PrescriptionLines(r.Context(), mux.Vars(r)["id"], date)
	if err != nil {
		writeError(w, err, "Failed to load prescription lines")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) CompanyCatalog(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.CompanyCatalog(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err, "Failed to load company catalog")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) PharmacyStock(w http.ResponseWriter, r *http.Request) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	report, err := h.reportUsecase.PharmacyStock(r.Context(), pharmacyID)
	if err != nil {
		writeError(w, err, "Failed to load pharmacy stock")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) PharmacyCompanyContracts(w http.ResponseWriter, r *http.Request) {
	pharmacyID, err := pathInt64(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	company := r.URL.Query().Get("company")
	if company == "" {
		response.BadRequest(w, "Query parameter company is required")
		return
	}

	report, err := h.reportUsecase.PharmacyCompanyContracts(r.Context(), pharmacyID, company)
	if err != nil {
		writeError(w, err, "Failed to load contracts")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) DoctorPatients(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.DoctorPatients(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to load doctor patients")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}
