package database

import (
	"errors"
	"fmt"

	"pharmacy-records/config"
	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Models lists every table in dependency order, parents first.
func Models() []interface{} {
	return []interface{}{
		&entity.Doctor{},
		&entity.Patient{},
		&entity.PharmaceuticalCompany{},
		&entity.Pharmacy{},
		&entity.Drug{},
		&entity.Contract{},
		&entity.PharmacyDrug{},
		&entity.Prescription{},
		&entity.PrescriptionDetail{},
		&entity.AuditLog{},
	}
}

// AutoMigrate creates the schema from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	return nil
}

// RunMigrations applies the embedded SQL migrations over a dedicated connection.
func RunMigrations(cfg config.DBConfig) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL())
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logrus.Warnf("Failed to close migrator: source=%v database=%v", srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logrus.Infof("Database schema at version %d (dirty=%t)", version, dirty)

	return nil
}

// Migrate brings the schema up according to the configured mode.
func Migrate(db *gorm.DB, cfg config.DBConfig) error {
	switch cfg.Migration {
	case config.MigrationSQL:
		return RunMigrations(cfg)
	case config.MigrationAuto:
		return AutoMigrate(db)
	case config.MigrationNone:
		logrus.Info("Schema migration disabled")
		return nil
	default:
		return fmt.Errorf("unknown migration mode %q", cfg.Migration)
	}
}
