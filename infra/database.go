// Package infra wires the ledger to its backing store.
package infra

import (
	"errors"
	"time"

	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	infracustomer "github.com/amirasaad/ledger/infra/repository/customeraccount"
	infratransaction "github.com/amirasaad/ledger/infra/repository/transaction"
	infravault "github.com/amirasaad/ledger/infra/repository/vault"
	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a postgres connection with the pool settings the
// ledger runs with. SkipDefaultTransaction is set because every mutation runs
// inside an explicit unit-of-work transaction already.
func NewDBConnection(cfg config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// AutoMigrate creates or updates the four ledger tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&infraaccount.Account{},
		&infravault.Vault{},
		&infracustomer.CustomerAccount{},
		&infratransaction.Transaction{},
	)
}
