package service

import (
	"errors"

	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
	"gorm.io/gorm"
)

// ErrReviewAlreadyModerated is returned when a decision targets a review that
// has already been approved or rejected.
var ErrReviewAlreadyModerated = errors.New("review has already been moderated")

// AdminService coordinates moderation decisions: it transitions the review and
// triggers a rating recompute when the review is approved.
type AdminService struct {
	reviewRepo    *repository.ReviewRepository
	ratingService *RatingService
}

func NewAdminService(reviewRepo *repository.ReviewRepository, ratingService *RatingService) *AdminService {
	return &AdminService{
		reviewRepo:    reviewRepo,
		ratingService: ratingService,
	}
}

// ListPendingReviews returns the moderation queue in submission order
func (s *AdminService) ListPendingReviews() ([]model.DiningReview, error) {
	return s.reviewRepo.GetReviewsByStatus(model.ReviewStatusPending)
}

// DecideReview applies an admin accept/reject decision to a pending review.
// Pending is the only state a decision may transition out of; Approved and
// Rejected are terminal. Approval triggers a rating recompute for the target
// restaurant; rejection never does, and leaves existing ratings untouched.
func (s *AdminService) DecideReview(reviewID uint, accept bool) (*model.DiningReview, error) {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	} else if err != nil {
		return nil, err
	}

	if review.Status.IsTerminal() {
		return nil, ErrReviewAlreadyModerated
	}

	if accept {
		review.Status = model.ReviewStatusApproved
	} else {
		review.Status = model.ReviewStatusRejected
	}

	if err := s.reviewRepo.UpdateReview(review); err != nil {
		return nil, err
	}

	logger.Info("Review moderated", map[string]interface{}{
		"review_id":     review.ID,
		"restaurant_id": review.RestaurantID,
		"status":        review.Status,
	})

	if accept {
		// The review keeps its Approved status even when the recompute cannot
		// run; the nightly reconciliation will catch the restaurant up.
		if err := s.ratingService.RecomputeRatings(review.RestaurantID); err != nil {
			logger.Error("Failed to recompute ratings after approval", err, map[string]interface{}{
				"review_id":     review.ID,
				"restaurant_id": review.RestaurantID,
			})
		}
	}

	return review, nil
}
