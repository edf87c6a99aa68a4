package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations menjalankan migrasi database.
// Versi saat ini dideteksi otomatis dan semua migrasi yang belum
// diterapkan akan dieksekusi berurutan.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("gagal memuat file migrasi: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("gagal membuat driver migrasi: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("gagal menginisialisasi migrasi: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("gagal menjalankan migrasi: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("migrasi database dalam status dirty", zap.Uint("version", version))
	} else {
		logger.Info("migrasi database selesai", zap.Uint("version", version))
	}

	return nil
}
