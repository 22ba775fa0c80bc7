package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmacy-records/config"
	deliveryHttp "pharmacy-records/internal/delivery/http"
	"pharmacy-records/internal/delivery/http/handler"
	"pharmacy-records/internal/delivery/http/middleware"
	"pharmacy-records/internal/infrastructure/cache"
	"pharmacy-records/internal/infrastructure/database"
	"pharmacy-records/internal/infrastructure/metrics"
	"pharmacy-records/internal/repository"
	"pharmacy-records/internal/service"
	"pharmacy-records/internal/usecase"
	"pharmacy-records/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, database.LogLevelFor(cfg.App.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db, cfg.DB); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis, nil when no host is configured
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	// Initialize metrics
	m := metrics.NewMetrics(prometheus.DefaultRegisterer, metrics.Namespace)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	auditLogRepo := repository.NewAuditLogRepository()
	referenceRepo := repository.NewReferenceRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	companyRepo := repository.NewCompanyRepository()
	pharmacyRepo := repository.NewPharmacyRepository()
	drugRepo := repository.NewDrugRepository()
	contractRepo := repository.NewContractRepository()
	inventoryRepo := repository.NewPharmacyDrugRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	detailRepo := repository.NewPrescriptionDetailRepository()
	reportRepo := repository.NewReportRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	reportCache := service.NewReportCache(redisClient, log, cfg.Cache.ReportTTL, m)

	// Initialize integrity components
	txRunner := usecase.NewTxRunner(db, log, m, reportCache)
	referenceValidator := usecase.NewReferenceValidator(referenceRepo)
	guard := usecase.NewPatientGuard(patientRepo, doctorRepo)
	reconciler := usecase.NewReconciler(inventoryRepo, prescriptionRepo, detailRepo)
	cascade := usecase.NewCascadeOrchestrator(patientRepo, pharmacyRepo, companyRepo, drugRepo, contractRepo, inventoryRepo, prescriptionRepo, detailRepo, guard)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, txRunner, cascade, doctorRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, txRunner, referenceValidator, cascade, patientRepo, auditService)
	companyUsecase := usecase.NewCompanyUsecase(db, log, txRunner, cascade, companyRepo, auditService)
	pharmacyUsecase := usecase.NewPharmacyUsecase(db, log, txRunner, cascade, pharmacyRepo, auditService)
	drugUsecase := usecase.NewDrugUsecase(db, log, txRunner, referenceValidator, cascade, drugRepo, auditService)
	contractUsecase := usecase.NewContractUsecase(db, log, txRunner, referenceValidator, cascade, contractRepo, auditService)
	inventoryUsecase := usecase.NewInventoryUsecase(db, log, txRunner, referenceValidator, reconciler, cascade, inventoryRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, txRunner, referenceValidator, reconciler, cascade, prescriptionRepo, detailRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(db, log, reportCache, reportRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Doctor:       handler.NewDoctorHandler(doctorUsecase, customValidator),
		Patient:      handler.NewPatientHandler(patientUsecase, customValidator),
		Company:      handler.NewCompanyHandler(companyUsecase, customValidator),
		Pharmacy:     handler.NewPharmacyHandler(pharmacyUsecase, inventoryUsecase, customValidator),
		Drug:         handler.NewDrugHandler(drugUsecase, customValidator),
		Contract:     handler.NewContractHandler(contractUsecase, customValidator),
		Prescription: handler.NewPrescriptionHandler(prescriptionUsecase, customValidator),
		Report:       handler.NewReportHandler(reportUsecase),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	requestContextMiddleware := middleware.NewRequestContextMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware(m)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, requestContextMiddleware, metricsMiddleware, corsMiddleware, promhttp.Handler())
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// In-flight requests finish their transactions before the pool closes.
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database and Redis connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
