package http

import (
	"net/http"

	"pharmacy-records/internal/delivery/http/handler"
	"pharmacy-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                   *mux.Router
	doctorHandler            *handler.DoctorHandler
	patientHandler           *handler.PatientHandler
	companyHandler           *handler.CompanyHandler
	pharmacyHandler          *handler.PharmacyHandler
	drugHandler              *handler.DrugHandler
	contractHandler          *handler.ContractHandler
	prescriptionHandler      *handler.PrescriptionHandler
	reportHandler            *handler.ReportHandler
	auditLogHandler          *handler.AuditLogHandler
	requestContextMiddleware *middleware.RequestContextMiddleware
	metricsMiddleware        *middleware.MetricsMiddleware
	corsMiddleware           *middleware.CORSMiddleware
	metricsHandler           http.Handler
}

type Handlers struct {
	Doctor       *handler.DoctorHandler
	Patient      *handler.PatientHandler
	Company      *handler.CompanyHandler
	Pharmacy     *handler.PharmacyHandler
	Drug         *handler.DrugHandler
	Contract     *handler.ContractHandler
	Prescription *handler.PrescriptionHandler
	Report       *handler.ReportHandler
	AuditLog     *handler.AuditLogHandler
}

func NewRouter(
	handlers Handlers,
	requestContextMiddleware *middleware.RequestContextMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:                   mux.NewRouter(),
		doctorHandler:            handlers.Doctor,
		patientHandler:           handlers.Patient,
		companyHandler:           handlers.Company,
		pharmacyHandler:          handlers.Pharmacy,
		drugHandler:              handlers.Drug,
		contractHandler:          handlers.Contract,
		prescriptionHandler:      handlers.Prescription,
		reportHandler:            handlers.Report,
		auditLogHandler:          handlers.AuditLog,
		requestContextMiddleware: requestContextMiddleware,
		metricsMiddleware:        metricsMiddleware,
		corsMiddleware:           corsMiddleware,
		metricsHandler:           metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id}/patients", r.reportHandler.DoctorPatients).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/prescriptions", r.reportHandler.PatientPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/prescription-lines", r.reportHandler.PrescriptionLines).Methods(http.MethodGet)

	// Pharmaceutical companies
	api.HandleFunc("/companies", r.companyHandler.CreateCompany).Methods(http.MethodPost)
	api.HandleFunc("/companies/{name}", r.companyHandler.GetCompany).Methods(http.MethodGet)
	api.HandleFunc("/companies/{name}", r.companyHandler.UpdateCompany).Methods(http.MethodPut)
	api.HandleFunc("/companies/{name}", r.companyHandler.DeleteCompany).Methods(http.MethodDelete)
	api.HandleFunc("/companies/{name}/drugs", r.reportHandler.CompanyCatalog).Methods(http.MethodGet)

	// Pharmacies and their inventory
	api.HandleFunc("/pharmacies", r.pharmacyHandler.CreatePharmacy).Methods(http.MethodPost)
	api.HandleFunc("/pharmacies/{id}", r.pharmacyHandler.GetPharmacy).Methods(http.MethodGet)
	api.HandleFunc("/pharmacies/{id}", r.pharmacyHandler.UpdatePharmacy).Methods(http.MethodPut)
	api.HandleFunc("/pharmacies/{id}", r.pharmacyHandler.DeletePharmacy).Methods(http.MethodDelete)
	api.HandleFunc("/pharmacies/{id}/drugs", r.pharmacyHandler.StockDrug).Methods(http.MethodPost)
	api.HandleFunc("/pharmacies/{id}/drugs", r.reportHandler.PharmacyStock).Methods(http.MethodGet)
	api.HandleFunc("/pharmacies/{id}/drugs/{drugId}", r.pharmacyHandler.GetStockedDrug).Methods(http.MethodGet)
	api.HandleFunc("/pharmacies/{id}/drugs/{drugId}", r.pharmacyHandler.UpdateStockedDrug).Methods(http.MethodPut)
	api.HandleFunc("/pharmacies/{id}/drugs/{drugId}", r.pharmacyHandler.RemoveStockedDrug).Methods(http.MethodDelete)
	api.HandleFunc("/pharmacies/{id}/contracts", r.reportHandler.PharmacyCompanyContracts).Methods(http.MethodGet)

	// Drugs
	api.HandleFunc("/drugs", r.drugHandler.CreateDrug).Methods(http.MethodPost)
	api.HandleFunc("/drugs/{id}", r.drugHandler.GetDrug).Methods(http.MethodGet)
	api.HandleFunc("/drugs/{id}", r.drugHandler.UpdateDrug).Methods(http.MethodPut)
	api.HandleFunc("/drugs/{id}", r.drugHandler.DeleteDrug).Methods(http.MethodDelete)

	// Contracts
	api.HandleFunc("/contracts", r.contractHandler.CreateContract).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id}", r.contractHandler.GetContract).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id}", r.contractHandler.UpdateContract).Methods(http.MethodPut)
	api.HandleFunc("/contracts/{id}/supervisor", r.contractHandler.UpdateSupervisor).Methods(http.MethodPut)
	api.HandleFunc("/contracts/{id}", r.contractHandler.DeleteContract).Methods(http.MethodDelete)

	// Prescriptions and their lines
	api.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)
	api.HandleFunc("/prescriptions/{id}/drugs", r.prescriptionHandler.AddDrug).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions/{id}/drugs/{drugId}", r.prescriptionHandler.GetDrug).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}/drugs/{drugId}", r.prescriptionHandler.UpdateDrug).Methods(http.MethodPut)
	api.HandleFunc("/prescriptions/{id}/drugs/{drugId}", r.prescriptionHandler.RemoveDrug).Methods(http.MethodDelete)

	// Audit trail (read only)
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Middleware runs outermost first
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestContextMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
