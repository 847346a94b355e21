package service

import (
	"context"
	"errors"

	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"github.com/tim-rayner/restaurant-review-api/pkg/redis"
	"gorm.io/gorm"
)

// ErrInvalidAllergyCategory is returned for a search on an unknown category.
var ErrInvalidAllergyCategory = errors.New("unknown allergy category")

type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// CreateRestaurant registers a restaurant. Rating fields are derived from
// approved reviews only, so anything the caller supplied is cleared.
func (s *RestaurantService) CreateRestaurant(restaurant *model.Restaurant) error {
	restaurant.ID = 0
	restaurant.PeanutRating = nil
	restaurant.EggRating = nil
	restaurant.DairyRating = nil
	restaurant.OverallRating = nil

	return s.restaurantRepo.Create(restaurant)
}

// GetRestaurantByID fetches a restaurant, reading through the cache
func (s *RestaurantService) GetRestaurantByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	cached, err := redis.GetCachedRestaurant(ctx, id)
	if err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		logger.Warn("Restaurant cache read failed, falling back to database", map[string]interface{}{
			"restaurant_id": id,
			"error":         err.Error(),
		})
	}

	restaurant, err := s.restaurantRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	} else if err != nil {
		return nil, err
	}

	if err := redis.CacheRestaurant(ctx, restaurant); err != nil {
		logger.Warn("Failed to cache restaurant", map[string]interface{}{
			"restaurant_id": id,
			"error":         err.Error(),
		})
	}
	return restaurant, nil
}

// ListRestaurants returns all restaurants ordered by name
func (s *RestaurantService) ListRestaurants() ([]model.Restaurant, error) {
	return s.restaurantRepo.FindAll()
}

// SearchByPostCodeAndAllergy lists restaurants in a post code that have a
// rating for the given allergy, best-rated first.
func (s *RestaurantService) SearchByPostCodeAndAllergy(postCode, allergy string) ([]model.Restaurant, error) {
	category, ok := model.ParseAllergyCategory(allergy)
	if !ok {
		return nil, ErrInvalidAllergyCategory
	}

	return s.restaurantRepo.FindByPostCodeWithAllergyRating(postCode, category)
}
