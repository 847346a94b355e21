package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/internal/db"
	"gorm.io/gorm"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

type ratingTestEnv struct {
	db             *gorm.DB
	reviewRepo     *repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	ratingService  *RatingService
}

func setupRatingTest(t *testing.T) *ratingTestEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	reviewRepo := repository.NewReviewRepository(testDB)
	restaurantRepo := repository.NewRestaurantRepository(testDB)

	return &ratingTestEnv{
		db:             testDB,
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		ratingService:  NewRatingService(reviewRepo, restaurantRepo),
	}
}

func (env *ratingTestEnv) createRestaurant(t *testing.T) *model.Restaurant {
	restaurant := &model.Restaurant{Name: "The Careful Kitchen", PostCode: "M1 1AE"}
	require.NoError(t, env.restaurantRepo.Create(restaurant))
	return restaurant
}

func (env *ratingTestEnv) createReview(t *testing.T, restaurantID uint, status model.ReviewStatus, peanut, egg, dairy *int) {
	review := &model.DiningReview{
		Author:       "reviewer",
		RestaurantID: restaurantID,
		PeanutScore:  peanut,
		EggScore:     egg,
		DairyScore:   dairy,
		Status:       status,
	}
	require.NoError(t, env.reviewRepo.CreateReview(review))
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "Midpoint rounds up", value: 4.125, want: 4.13},
		{name: "Whole number unchanged", value: 4.0, want: 4.0},
		{name: "Below midpoint rounds down", value: 4.124, want: 4.12},
		{name: "Above midpoint rounds up", value: 4.126, want: 4.13},
		{name: "Half at second decimal", value: 4.5, want: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roundHalfUp(tt.value), 1e-9)
		})
	}
}

func TestRatingService_Recompute_TwoApprovedReviews(t *testing.T) {
	env := setupRatingTest(t)
	restaurant := env.createRestaurant(t)

	// {peanut=4, egg=5} and {peanut=5, egg=3}
	env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(4), intPtr(5), nil)
	env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(5), intPtr(3), nil)

	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))

	updated, err := env.restaurantRepo.FindByID(restaurant.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.PeanutRating)
	assert.InDelta(t, 4.50, *updated.PeanutRating, 1e-9)
	require.NotNil(t, updated.EggRating)
	assert.InDelta(t, 4.00, *updated.EggRating, 1e-9)
	assert.Nil(t, updated.DairyRating)
	require.NotNil(t, updated.OverallRating)
	assert.InDelta(t, 4.25, *updated.OverallRating, 1e-9)
}

func TestRatingService_Recompute_SingleCategoryReview(t *testing.T) {
	env := setupRatingTest(t)
	restaurant := env.createRestaurant(t)

	env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(4), nil, nil)

	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))

	updated, err := env.restaurantRepo.FindByID(restaurant.ID)
	require.NoError(t, err)

	require.NotNil(t, updated.PeanutRating)
	assert.InDelta(t, 4.00, *updated.PeanutRating, 1e-9)
	assert.Nil(t, updated.EggRating)
	assert.Nil(t, updated.DairyRating)
	require.NotNil(t, updated.OverallRating)
	assert.InDelta(t, 4.00, *updated.OverallRating, 1e-9)
}

func TestRatingService_Recompute_MidpointRounding(t *testing.T) {
	env := setupRatingTest(t)
	restaurant := env.createRestaurant(t)

	// Seven 4s and one 5: mean 33/8 = 4.125, which must round to 4.13
	for i := 0; i < 7; i++ {
		env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(4), nil, nil)
	}
	env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(5), nil, nil)

	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))

	updated, err := env.restaurantRepo.FindByID(restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PeanutRating)
	assert.InDelta(t, 4.13, *updated.PeanutRating, 1e-9)
}

func TestRatingService_Recompute_NoApprovedReviews(t *testing.T) {
	env := setupRatingTest(t)
	restaurant := env.createRestaurant(t)

	// Stale ratings must be cleared, not preserved
	restaurant.PeanutRating = floatPtr(4.2)
	restaurant.OverallRating = floatPtr(4.2)
	require.NoError(t, env.restaurantRepo.Update(restaurant))

	env.createReview(t, restaurant.ID, model.ReviewStatusPending, intPtr(5), nil, nil)
	env.createReview(t, restaurant.ID, model.ReviewStatusRejected, intPtr(1), intPtr(1), intPtr(1))

	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))

	updated, err := env.restaurantRepo.FindByID(restaurant.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.PeanutRating)
	assert.Nil(t, updated.EggRating)
	assert.Nil(t, updated.DairyRating)
	assert.Nil(t, updated.OverallRating)
}

func TestRatingService_Recompute_IgnoresUnapprovedScores(t *testing.T) {
	env := setupRatingTest(t)
	restaurant := env.createRestaurant(t)

	env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(4), nil, nil)
	env.createReview(t, restaurant.ID, model.ReviewStatusPending, intPtr(1), intPtr(1), intPtr(1))
	env.createReview(t, restaurant.ID, model.ReviewStatusRejected, intPtr(1), intPtr(1), intPtr(1))

	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))

	updated, err := env.restaurantRepo.FindByID(restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PeanutRating)
	assert.InDelta(t, 4.00, *updated.PeanutRating, 1e-9)
	assert.Nil(t, updated.EggRating)
	assert.Nil(t, updated.DairyRating)
}

func TestRatingService_Recompute_MissingRestaurantIsNoop(t *testing.T) {
	env := setupRatingTest(t)

	// Nothing exists with this id; recompute must swallow it
	assert.NoError(t, env.ratingService.RecomputeRatings(9999))
}

func TestRatingService_Recompute_IsIdempotent(t *testing.T) {
	env := setupRatingTest(t)
	restaurant := env.createRestaurant(t)

	env.createReview(t, restaurant.ID, model.ReviewStatusApproved, intPtr(4), intPtr(2), nil)

	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))
	require.NoError(t, env.ratingService.RecomputeRatings(restaurant.ID))

	updated, err := env.restaurantRepo.FindByID(restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PeanutRating)
	assert.InDelta(t, 4.00, *updated.PeanutRating, 1e-9)
	require.NotNil(t, updated.EggRating)
	assert.InDelta(t, 2.00, *updated.EggRating, 1e-9)
	require.NotNil(t, updated.OverallRating)
	assert.InDelta(t, 3.00, *updated.OverallRating, 1e-9)
}

func TestRatingService_ReconcileAllRatings(t *testing.T) {
	env := setupRatingTest(t)

	first := env.createRestaurant(t)
	second := &model.Restaurant{Name: "Saffron & Co", PostCode: "M1 1AE"}
	require.NoError(t, env.restaurantRepo.Create(second))

	env.createReview(t, first.ID, model.ReviewStatusApproved, intPtr(5), nil, nil)
	env.createReview(t, second.ID, model.ReviewStatusApproved, nil, intPtr(3), nil)

	require.NoError(t, env.ratingService.ReconcileAllRatings())

	updatedFirst, err := env.restaurantRepo.FindByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, updatedFirst.PeanutRating)
	assert.InDelta(t, 5.00, *updatedFirst.PeanutRating, 1e-9)

	updatedSecond, err := env.restaurantRepo.FindByID(second.ID)
	require.NoError(t, err)
	require.NotNil(t, updatedSecond.EggRating)
	assert.InDelta(t, 3.00, *updatedSecond.EggRating, 1e-9)
	assert.Nil(t, updatedSecond.PeanutRating)
}
