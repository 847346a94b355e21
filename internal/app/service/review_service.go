package service

import (
	"errors"

	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrAuthorNotFound     = errors.New("review author not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidScore       = errors.New("score out of range")
)

// Allergy scores are rated on a 1-5 scale
const (
	minScore = 1
	maxScore = 5
)

// ReviewService owns review submission and lookup. Moderation transitions
// belong to AdminService.
type ReviewService struct {
	reviewRepo     *repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
	}
}

// SubmitReview validates the scores and the referenced restaurant and author,
// then persists the review as Pending. A caller-supplied status or id is
// discarded.
func (s *ReviewService) SubmitReview(review *model.DiningReview) (*model.DiningReview, error) {
	for _, score := range []*int{review.PeanutScore, review.EggScore, review.DairyScore} {
		if score != nil && (*score < minScore || *score > maxScore) {
			return nil, ErrInvalidScore
		}
	}

	exists, err := s.restaurantRepo.ExistsByID(review.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	exists, err = s.userRepo.ExistsByUsername(review.Author)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	review.ID = 0
	review.Status = model.ReviewStatusPending

	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}

	logger.Info("Review submitted", map[string]interface{}{
		"review_id":     review.ID,
		"restaurant_id": review.RestaurantID,
		"author":        review.Author,
	})
	return review, nil
}

// GetReview fetches a review by id
func (s *ReviewService) GetReview(id uint) (*model.DiningReview, error) {
	review, err := s.reviewRepo.GetReviewByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	} else if err != nil {
		return nil, err
	}
	return review, nil
}
