package repository

import (
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview inserts a review and assigns its identity
func (r *ReviewRepository) CreateReview(review *model.DiningReview) error {
	return r.db.Create(review).Error
}

// GetReviewByID fetches a review by id
func (r *ReviewRepository) GetReviewByID(id uint) (*model.DiningReview, error) {
	var review model.DiningReview
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview persists a modified review
func (r *ReviewRepository) UpdateReview(review *model.DiningReview) error {
	return r.db.Save(review).Error
}

// GetReviewsByStatus lists reviews in a moderation status, oldest first so the
// admin queue is processed in submission order
func (r *ReviewRepository) GetReviewsByStatus(status model.ReviewStatus) ([]model.DiningReview, error) {
	var reviews []model.DiningReview
	err := r.db.
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetReviewsByRestaurantAndStatus lists a restaurant's reviews in a status
func (r *ReviewRepository) GetReviewsByRestaurantAndStatus(restaurantID uint, status model.ReviewStatus) ([]model.DiningReview, error) {
	var reviews []model.DiningReview
	err := r.db.
		Where("restaurant_id = ? AND status = ?", restaurantID, status).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
