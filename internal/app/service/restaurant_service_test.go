package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/internal/db"
)

func setupRestaurantServiceTest(t *testing.T) (*RestaurantService, repository.RestaurantRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	repo := repository.NewRestaurantRepository(testDB)
	return NewRestaurantService(repo), repo
}

func TestRestaurantService_CreateRestaurant_ClearsCallerRatings(t *testing.T) {
	restaurantService, repo := setupRestaurantServiceTest(t)

	// Ratings are derived; anything supplied on create must be dropped
	restaurant := &model.Restaurant{
		Name:          "The Careful Kitchen",
		PostCode:      "M1 1AE",
		PeanutRating:  floatPtr(5.0),
		OverallRating: floatPtr(5.0),
	}
	require.NoError(t, restaurantService.CreateRestaurant(restaurant))

	found, err := repo.FindByID(restaurant.ID)
	require.NoError(t, err)
	assert.Nil(t, found.PeanutRating)
	assert.Nil(t, found.OverallRating)
}

func TestRestaurantService_GetRestaurantByID(t *testing.T) {
	restaurantService, _ := setupRestaurantServiceTest(t)

	restaurant := &model.Restaurant{Name: "Saffron & Co", PostCode: "M1 1AE"}
	require.NoError(t, restaurantService.CreateRestaurant(restaurant))

	found, err := restaurantService.GetRestaurantByID(context.Background(), restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saffron & Co", found.Name)

	_, err = restaurantService.GetRestaurantByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestRestaurantService_SearchByPostCodeAndAllergy(t *testing.T) {
	restaurantService, repo := setupRestaurantServiceTest(t)

	rated := &model.Restaurant{Name: "Rated", PostCode: "M1 1AE"}
	require.NoError(t, restaurantService.CreateRestaurant(rated))
	rated.PeanutRating = floatPtr(4.5)
	require.NoError(t, repo.Update(rated))

	unrated := &model.Restaurant{Name: "Unrated", PostCode: "M1 1AE"}
	require.NoError(t, restaurantService.CreateRestaurant(unrated))

	found, err := restaurantService.SearchByPostCodeAndAllergy("M1 1AE", "peanut")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Rated", found[0].Name)

	_, err = restaurantService.SearchByPostCodeAndAllergy("M1 1AE", "gluten")
	assert.ErrorIs(t, err, ErrInvalidAllergyCategory)
}
