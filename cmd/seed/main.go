package main

import (
	"github.com/tim-rayner/restaurant-review-api/config"
	"github.com/tim-rayner/restaurant-review-api/internal/db"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
)

// Seeds the database with the sample users and restaurants.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := db.Seed(); err != nil {
		logger.Fatal("Failed to seed database", err)
	}

	logger.Info("Seeding complete")
}
