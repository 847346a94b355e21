package service

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"github.com/tim-rayner/restaurant-review-api/pkg/redis"
	"gorm.io/gorm"
)

// RatingService recomputes a restaurant's derived allergy ratings from its
// approved reviews. Recomputation is idempotent and serialized per restaurant
// so two concurrent moderation decisions cannot interleave the
// read-compute-write.
type RatingService struct {
	reviewRepo     *repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewRatingService(
	reviewRepo *repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
) *RatingService {
	return &RatingService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		locks:          make(map[uint]*sync.Mutex),
	}
}

func (s *RatingService) lockFor(restaurantID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[restaurantID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[restaurantID] = lock
	}
	return lock
}

// RecomputeRatings replaces the restaurant's four rating fields with the
// averages over its currently approved reviews, in a single update. A
// restaurant that no longer exists is a no-op: this path is only reached from
// internal orchestration, never from unchecked caller input.
func (s *RatingService) RecomputeRatings(restaurantID uint) error {
	lock := s.lockFor(restaurantID)
	lock.Lock()
	defer lock.Unlock()

	restaurant, err := s.restaurantRepo.FindByID(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("Skipping rating recompute for missing restaurant", map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return nil
	} else if err != nil {
		return err
	}

	reviews, err := s.reviewRepo.GetReviewsByRestaurantAndStatus(restaurantID, model.ReviewStatusApproved)
	if err != nil {
		return err
	}

	restaurant.PeanutRating = categoryAverage(reviews, func(r *model.DiningReview) *int { return r.PeanutScore })
	restaurant.EggRating = categoryAverage(reviews, func(r *model.DiningReview) *int { return r.EggScore })
	restaurant.DairyRating = categoryAverage(reviews, func(r *model.DiningReview) *int { return r.DairyScore })
	restaurant.OverallRating = overallAverage(restaurant.PeanutRating, restaurant.EggRating, restaurant.DairyRating)

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return err
	}

	// Drop the cached snapshot so reads pick up the new ratings
	if err := redis.InvalidateRestaurant(context.Background(), restaurantID); err != nil {
		logger.Warn("Failed to invalidate restaurant cache after recompute", map[string]interface{}{
			"restaurant_id": restaurantID,
			"error":         err.Error(),
		})
	}

	logger.Debug("Recomputed restaurant ratings", map[string]interface{}{
		"restaurant_id":  restaurantID,
		"approved_count": len(reviews),
	})
	return nil
}

// ReconcileAllRatings re-runs the recompute for every restaurant. Used by the
// nightly scheduler to heal any drift from the last-writer-wins race window.
func (s *RatingService) ReconcileAllRatings() error {
	restaurants, err := s.restaurantRepo.FindAll()
	if err != nil {
		return err
	}

	failures := 0
	for i := range restaurants {
		if err := s.RecomputeRatings(restaurants[i].ID); err != nil {
			failures++
			logger.Error("Failed to reconcile restaurant ratings", err, map[string]interface{}{
				"restaurant_id": restaurants[i].ID,
			})
		}
	}

	logger.Info("Rating reconciliation completed", map[string]interface{}{
		"restaurants": len(restaurants),
		"failures":    failures,
	})
	return nil
}

// categoryAverage averages the scores present for one category. Reviews
// without a score in that category are skipped; they still count toward the
// categories they did rate. Returns nil when no review rated the category.
func categoryAverage(reviews []model.DiningReview, score func(*model.DiningReview) *int) *float64 {
	sum := 0
	count := 0
	for i := range reviews {
		if s := score(&reviews[i]); s != nil {
			sum += *s
			count++
		}
	}

	if count == 0 {
		return nil
	}

	avg := roundHalfUp(float64(sum) / float64(count))
	return &avg
}

// overallAverage averages whichever category ratings are present. Categories
// with no data are excluded from both the sum and the count.
func overallAverage(ratings ...*float64) *float64 {
	sum := 0.0
	count := 0
	for _, r := range ratings {
		if r != nil {
			sum += *r
			count++
		}
	}

	if count == 0 {
		return nil
	}

	avg := roundHalfUp(sum / float64(count))
	return &avg
}

// roundHalfUp rounds to two decimals with midpoints rounding up, so a mean of
// 4.125 becomes 4.13. Scores are non-negative, so away-from-zero is up.
func roundHalfUp(value float64) float64 {
	return math.Floor(value*100+0.5) / 100
}
