package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pharmacy-records/internal/delivery/dto"
	"pharmacy-records/internal/infrastructure/database"
	"pharmacy-records/internal/infrastructure/metrics"
	"pharmacy-records/internal/repository"
	"pharmacy-records/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	metrics  *metrics.Metrics
	registry *prometheus.Registry

	guard *PatientGuard

	doctors       DoctorUsecase
	patients      PatientUsecase
	companies     CompanyUsecase
	pharmacies    PharmacyUsecase
	drugs         DrugUsecase
	contracts     ContractUsecase
	inventory     InventoryUsecase
	prescriptions PrescriptionUsecase
	reports       ReportUsecase
	auditLogs     AuditLogUsecase
}

// newTestEnv wires every usecase against a fresh sqlite file with foreign
// keys enforced. A non-nil redisClient enables the report cache.
func newTestEnv(t *testing.T, redisClient *redis.Client) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "records.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry, metrics.Namespace)

	cache := service.NewReportCache(redisClient, log, time.Minute, m)

	auditLogRepo := repository.NewAuditLogRepository()
	referenceRepo := repository.NewReferenceRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	companyRepo := repository.NewCompanyRepository()
	pharmacyRepo := repository.NewPharmacyRepository()
	drugRepo := repository.NewDrugRepository()
	contractRepo := repository.NewContractRepository()
	inventoryRepo := repository.NewPharmacyDrugRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	detailRepo := repository.NewPrescriptionDetailRepository()
	reportRepo := repository.NewReportRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	txRunner := NewTxRunner(db, log, m, cache)
	validator := NewReferenceValidator(referenceRepo)
	guard := NewPatientGuard(patientRepo, doctorRepo)
	reconciler := NewReconciler(inventoryRepo, prescriptionRepo, detailRepo)
	cascade := NewCascadeOrchestrator(patientRepo, pharmacyRepo, companyRepo, drugRepo, contractRepo, inventoryRepo, prescriptionRepo, detailRepo, guard)

	return &testEnv{
		db:            db,
		metrics:       m,
		registry:      registry,
		guard:         guard,
		doctors:       NewDoctorUsecase(db, log, txRunner, cascade, doctorRepo, auditService),
		patients:      NewPatientUsecase(db, log, txRunner, validator, cascade, patientRepo, auditService),
		companies:     NewCompanyUsecase(db, log, txRunner, cascade, companyRepo, auditService),
		pharmacies:    NewPharmacyUsecase(db, log, txRunner, cascade, pharmacyRepo, auditService),
		drugs:         NewDrugUsecase(db, log, txRunner, validator, cascade, drugRepo, auditService),
		contracts:     NewContractUsecase(db, log, txRunner, validator, cascade, contractRepo, auditService),
		inventory:     NewInventoryUsecase(db, log, txRunner, validator, reconciler, cascade, inventoryRepo, auditService),
		prescriptions: NewPrescriptionUsecase(db, log, txRunner, validator, reconciler, cascade, prescriptionRepo, detailRepo, auditService),
		reports:       NewReportUsecase(db, log, cache, reportRepo),
		auditLogs:     NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func (e *testEnv) addDoctor(t *testing.T, id string) *dto.DoctorResponse {
	t.Helper()
	doctor, err := e.doctors.AddDoctor(context.Background(), &dto.CreateDoctorRequest{
		NationalID:        id,
		Name:              "Dr " + id,
		Specialty:         "General practice",
		YearsOfExperience: 10,
	})
	require.NoError(t, err)
	return doctor
}

func (e *testEnv) addPatient(t *testing.T, id, doctorID string) *dto.PatientResponse {
	t.Helper()
	patient, err := e.patients.AddPatient(context.Background(), &dto.CreatePatientRequest{
		NationalID: id,
		Name:       "Patient " + id,
		Address:    "1 Main Street",
		Age:        40,
		DoctorID:   doctorID,
	})
	require.NoError(t, err)
	return patient
}

func (e *testEnv) addCompany(t *testing.T, name string) *dto.CompanyResponse {
	t.Helper()
	company, err := e.companies.AddPharmaceuticalCompany(context.Background(), &dto.CreateCompanyRequest{
		Name:  name,
		Phone: "555-0100",
	})
	require.NoError(t, err)
	return company
}

func (e *testEnv) addPharmacy(t *testing.T, name string) *dto.PharmacyResponse {
	t.Helper()
	pharmacy, err := e.pharmacies.AddPharmacy(context.Background(), &dto.CreatePharmacyRequest{
		Name:    name,
		Address: "2 Market Square",
		Phone:   "555-0200",
	})
	require.NoError(t, err)
	return pharmacy
}

func (e *testEnv) addDrug(t *testing.T, tradeName, company string) *dto.DrugResponse {
	t.Helper()
	drug, err := e.drugs.AddDrug(context.Background(), &dto.CreateDrugRequest{
		TradeName:   tradeName,
		Formula:     "C8H9NO2",
		CompanyName: company,
	})
	require.NoError(t, err)
	return drug
}

func (e *testEnv) addContract(t *testing.T, pharmacyID int64, company string) *dto.ContractResponse {
	t.Helper()
	contract, err := e.contracts.AddContract(context.Background(), &dto.CreateContractRequest{
		PharmacyID:  pharmacyID,
		CompanyName: company,
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Content:     "Annual supply",
		Supervisor:  "Grace",
	})
	require.NoError(t, err)
	return contract
}

func (e *testEnv) stock(t *testing.T, pharmacyID, drugID int64, price string, stock int) *dto.PharmacyDrugResponse {
	t.Helper()
	item, err := e.inventory.AddDrugToPharmacy(context.Background(), &dto.UpsertPharmacyDrugRequest{
		PharmacyID: pharmacyID,
		DrugID:     drugID,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
	})
	require.NoError(t, err)
	return item
}

func (e *testEnv) prescribe(t *testing.T, patientID, doctorID, date string) *dto.PrescriptionResponse {
	t.Helper()
	prescription, err := e.prescriptions.AddPrescription(context.Background(), &dto.AddPrescriptionRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
	})
	require.NoError(t, err)
	return prescription
}

func (e *testEnv) addLine(t *testing.T, prescriptionID, drugID int64, quantity int) *dto.PrescriptionDetailResponse {
	t.Helper()
	detail, err := e.prescriptions.AddDrugToPrescription(context.Background(), &dto.AddPrescriptionDetailRequest{
		PrescriptionID: prescriptionID,
		DrugID:         drugID,
		Quantity:       quantity,
	})
	require.NoError(t, err)
	return detail
}

func removed(resp *dto.DeleteResponse) map[string]int64 {
	out := make(map[string]int64, len(resp.Removed))
	for _, r := range resp.Removed {
		out[r.Entity] = r.Rows
	}
	return out
}

func removedOrder(resp *dto.DeleteResponse) []string {
	out := make([]string, len(resp.Removed))
	for i, r := range resp.Removed {
		out[i] = r.Entity
	}
	return out
}
