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

type ReviewController struct {
	reviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// SubmitReview submits a dining review for moderation. The review is always
// created Pending; any status in the request body is ignored.
// @Summary Submit review
// @Tags Reviews
// @Accept json
// @Produce json
// @Success 201 {object} model.DiningReview
// @Router /reviews [post]
func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	var review model.DiningReview
	if err := c.ShouldBindJSON(&review); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	created, err := ctrl.reviewService.SubmitReview(&review)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScore):
			apperrors.BadRequest(c, apperrors.ValidationInvalidScore, "Scores must be between 1 and 5")
		case errors.Is(err, service.ErrRestaurantNotFound):
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
		case errors.Is(err, service.ErrAuthorNotFound):
			apperrors.NotFound(c, apperrors.ReviewAuthorNotFound, "No user with that display name")
		default:
			apperrors.ParseAndRespond(c, err, "review")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetReview fetches a review by id
// @Summary Get review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} model.DiningReview
// @Router /reviews/{id} [get]
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	review, err := ctrl.reviewService.GetReview(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
			return
		}
		apperrors.InternalError(c, "Failed to fetch review")
		return
	}

	c.JSON(http.StatusOK, review)
}
