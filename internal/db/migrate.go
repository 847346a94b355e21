package db

import (
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Restaurant{},
		&model.DiningReview{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial sample data to an empty database
func Seed() error {
	logger.Info("Seeding initial data...")

	if err := seedUsers(); err != nil {
		logger.Error("Failed to seed users", err)
		return err
	}
	if err := seedRestaurants(); err != nil {
		logger.Error("Failed to seed restaurants", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

func seedUsers() error {
	var count int64
	if err := DB.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Users already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	users := []model.User{
		{
			Username:            "peanut_free_pete",
			City:                "Manchester",
			County:              "Greater Manchester",
			PostCode:            "M1 1AE",
			ActivePeanutAllergy: true,
		},
		{
			Username:         "egg_aware_emma",
			City:             "Leeds",
			County:           "West Yorkshire",
			PostCode:         "LS1 1UR",
			ActiveEggAllergy: true,
		},
		{
			Username:           "dairy_dodger_dan",
			City:               "Manchester",
			County:             "Greater Manchester",
			PostCode:           "M1 1AE",
			ActiveDairyAllergy: true,
		},
	}

	for i := range users {
		if err := DB.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Users seeded successfully", map[string]interface{}{
		"total_users": len(users),
	})
	return nil
}

func seedRestaurants() error {
	var count int64
	if err := DB.Model(&model.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Restaurants already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	restaurants := []model.Restaurant{
		{
			Name:     "The Careful Kitchen",
			PostCode: "M1 1AE",
			Bio:      "Allergy-conscious British classics with a dedicated nut-free prep line",
		},
		{
			Name:     "Saffron & Co",
			PostCode: "M1 1AE",
			Bio:      "Modern Indian dining with clearly labelled allergen menus",
		},
		{
			Name:     "Harbour Fish House",
			PostCode: "LS1 1UR",
			Bio:      "Seafood restaurant happy to adapt dishes for dairy and egg allergies",
		},
	}

	for i := range restaurants {
		if err := DB.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Restaurants seeded successfully", map[string]interface{}{
		"total_restaurants": len(restaurants),
	})
	return nil
}
