package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tim-rayner/restaurant-review-api/config"
	"github.com/tim-rayner/restaurant-review-api/internal/app/controller"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/internal/app/service"
	"github.com/tim-rayner/restaurant-review-api/internal/db"
	"github.com/tim-rayner/restaurant-review-api/internal/router"
	"github.com/tim-rayner/restaurant-review-api/internal/scheduler"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"github.com/tim-rayner/restaurant-review-api/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Restaurant Review API", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize Redis cache (optional)
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, continuing without cache", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			}()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())

	// Initialize services
	userService := service.NewUserService(userRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	reviewService := service.NewReviewService(reviewRepo, restaurantRepo, userRepo)
	ratingService := service.NewRatingService(reviewRepo, restaurantRepo)
	adminService := service.NewAdminService(reviewRepo, ratingService)

	// Initialize controllers
	userController := controller.NewUserController(userService)
	restaurantController := controller.NewRestaurantController(restaurantService)
	reviewController := controller.NewReviewController(reviewService)
	adminController := controller.NewAdminController(adminService)

	// Start the rating reconciliation scheduler
	if cfg.Scheduler.Enabled {
		ratingScheduler := scheduler.NewRatingScheduler(ratingService, cfg.Scheduler.RatingReconcileSpec)
		if err := ratingScheduler.Start(); err != nil {
			logger.Error("Failed to start rating scheduler", err)
		} else {
			defer ratingScheduler.Stop()
		}
	}

	// Setup router
	r := router.NewRouter(
		userController,
		restaurantController,
		reviewController,
		adminController,
		cfg,
	)
	engine := r.Setup()

	// Handle shutdown signals
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("Shutting down server...")

		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
		os.Exit(0)
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("Server listening", map[string]interface{}{
		"address": addr,
	})
	if err := engine.Run(addr); err != nil {
		logger.Fatal("Failed to start server", err)
	}
}
