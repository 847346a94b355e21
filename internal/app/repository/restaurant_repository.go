package repository

import (
	"fmt"

	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(restaurant *model.Restaurant) error
	Update(restaurant *model.Restaurant) error
	FindAll() ([]model.Restaurant, error)
	FindByID(id uint) (*model.Restaurant, error)
	ExistsByID(id uint) (bool, error)
	FindByPostCodeWithAllergyRating(postCode string, category model.AllergyCategory) ([]model.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *model.Restaurant) error {
	logger.Debug("Creating restaurant in database", map[string]interface{}{
		"name":      restaurant.Name,
		"post_code": restaurant.PostCode,
	})

	if err := r.db.Create(restaurant).Error; err != nil {
		logger.Error("Failed to create restaurant in database", err, map[string]interface{}{
			"name": restaurant.Name,
		})
		return err
	}
	return nil
}

func (r *restaurantRepository) Update(restaurant *model.Restaurant) error {
	if err := r.db.Save(restaurant).Error; err != nil {
		logger.Error("Failed to update restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return err
	}
	return nil
}

func (r *restaurantRepository) FindAll() ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	err := r.db.Order("name ASC").Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	err := r.db.First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Restaurant{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		logger.Error("Failed to check restaurant existence in database", err, map[string]interface{}{
			"restaurant_id": id,
		})
		return false, err
	}
	return count > 0, nil
}

// ratingColumn maps an allergy category to its rating column.
func ratingColumn(category model.AllergyCategory) (string, error) {
	switch category {
	case model.AllergyPeanut:
		return "peanut_rating", nil
	case model.AllergyEgg:
		return "egg_rating", nil
	case model.AllergyDairy:
		return "dairy_rating", nil
	}
	return "", fmt.Errorf("unknown allergy category: %s", category)
}

// FindByPostCodeWithAllergyRating lists restaurants in a post code that have a
// rating for the given category, best-rated first.
func (r *restaurantRepository) FindByPostCodeWithAllergyRating(postCode string, category model.AllergyCategory) ([]model.Restaurant, error) {
	column, err := ratingColumn(category)
	if err != nil {
		return nil, err
	}

	var restaurants []model.Restaurant
	err = r.db.
		Where("post_code = ?", postCode).
		Where(column + " IS NOT NULL").
		Order(column + " DESC").
		Find(&restaurants).Error
	if err != nil {
		logger.Error("Failed to search restaurants by allergy rating", err, map[string]interface{}{
			"post_code": postCode,
			"category":  category,
		})
		return nil, err
	}
	return restaurants, nil
}
