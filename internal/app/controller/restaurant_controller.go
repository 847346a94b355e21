package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/service"
	apperrors "github.com/tim-rayner/restaurant-review-api/internal/errors"
)

type RestaurantController struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantController(restaurantService *service.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// CreateRestaurant registers a new restaurant
// @Summary Create restaurant
// @Tags Restaurants
// @Accept json
// @Produce json
// @Success 201 {object} model.Restaurant
// @Router /restaurants [post]
func (ctrl *RestaurantController) CreateRestaurant(c *gin.Context) {
	var restaurant model.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	if restaurant.Name == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Restaurant name is required")
		return
	}

	if err := ctrl.restaurantService.CreateRestaurant(&restaurant); err != nil {
		apperrors.ParseAndRespond(c, err, "restaurant")
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// ListRestaurants lists all restaurants
// @Summary List restaurants
// @Tags Restaurants
// @Produce json
// @Success 200 {array} model.Restaurant
// @Router /restaurants [get]
func (ctrl *RestaurantController) ListRestaurants(c *gin.Context) {
	restaurants, err := ctrl.restaurantService.ListRestaurants()
	if err != nil {
		apperrors.InternalError(c, "Failed to list restaurants")
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurantByID fetches a restaurant with its current ratings
// @Summary Get restaurant
// @Tags Restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} model.Restaurant
// @Router /restaurants/{id} [get]
func (ctrl *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid restaurant ID")
		return
	}

	restaurant, err := ctrl.restaurantService.GetRestaurantByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		apperrors.InternalError(c, "Failed to fetch restaurant")
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// SearchRestaurants lists restaurants in a post code rated for an allergy,
// best-rated first
// @Summary Search restaurants by allergy rating
// @Tags Restaurants
// @Produce json
// @Param postcode query string true "Post code"
// @Param allergy query string true "Allergy category (peanut, egg, dairy)"
// @Success 200 {array} model.Restaurant
// @Router /restaurants/search [get]
func (ctrl *RestaurantController) SearchRestaurants(c *gin.Context) {
	postCode := c.Query("postcode")
	allergy := c.Query("allergy")

	restaurants, err := ctrl.restaurantService.SearchByPostCodeAndAllergy(postCode, allergy)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAllergyCategory) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidAllergy, "Allergy must be one of peanut, egg, dairy")
			return
		}
		apperrors.InternalError(c, "Failed to search restaurants")
		return
	}

	c.JSON(http.StatusOK, restaurants)
}
