package infra

import (
	"fmt"

	"distrohub/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the full model set.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates / updates all tables. Order matters: referenced tables
// first so FK constraints resolve.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Distributor{},
		&model.DistributorCustomer{},
		&model.Branch{},
		&model.StockEntry{},
		&model.StockAuditEntry{},
		&model.Order{},
		&model.LowStockNotification{},
		&model.Invoice{},
		&model.Payment{},
		&model.Transaction{},
	)
}
