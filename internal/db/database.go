package db

import (
	"fmt"
	"time"

	"github.com/tim-rayner/restaurant-review-api/config"
	appLogger "github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the Postgres connection and sizes the pool from the
// database config. GORM's own SQL logging stays silent; the request
// middleware and services log through pkg/logger instead.
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Opening database connection", map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
	})

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMins) * time.Minute)

	appLogger.Info("Database ready", map[string]interface{}{
		"max_idle_conns":         cfg.MaxIdleConns,
		"max_open_conns":         cfg.MaxOpenConns,
		"conn_max_lifetime_mins": cfg.ConnMaxLifetimeMins,
	})
	return nil
}

// Close releases the underlying connection pool
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the shared database handle
func GetDB() *gorm.DB {
	return DB
}
