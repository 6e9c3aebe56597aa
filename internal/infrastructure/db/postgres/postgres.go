package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	DSN string
}

// Connect opens a gorm connection and validates it with a ping.
// TranslateError is enabled so unique violations surface as
// gorm.ErrDuplicatedKey and repositories can map them to domain errors.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Identity{},
		&domain.Client{},
		&domain.Case{},
		&domain.Appointment{},
		&domain.Payment{},
		&domain.Template{},
		&domain.Document{},
		&domain.Passcode{},
	)
}
