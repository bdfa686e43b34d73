package cmd

import (
	"fmt"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/ports"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to PostgreSQL and migrates the schema. Unique violations are
// translated to gorm.ErrDuplicatedKey, which the repositories rely on.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// NewUnitOfWorkFactory returns the storage selected by STORAGE_DRIVER and a function
// releasing it.
func NewUnitOfWorkFactory(cfg Config) (ports.UnitOfWorkFactory, func() error, error) {
	if cfg.StorageDriver == StorageMemory {
		return memory.NewStore(), func() error { return nil }, nil
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil
}
