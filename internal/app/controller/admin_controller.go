package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tim-rayner/restaurant-review-api/internal/app/service"
	apperrors "github.com/tim-rayner/restaurant-review-api/internal/errors"
)

// ReviewDecision is the admin's accept/reject action on a pending review
type ReviewDecision struct {
	AcceptReview *bool `json:"accept_review" binding:"required"`
}

type AdminController struct {
	adminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetPendingReviews lists the moderation queue
// @Summary List pending reviews
// @Tags Admin
// @Produce json
// @Success 200 {array} model.DiningReview
// @Router /admin/reviews/pending [get]
func (ctrl *AdminController) GetPendingReviews(c *gin.Context) {
	reviews, err := ctrl.adminService.ListPendingReviews()
	if err != nil {
		apperrors.InternalError(c, "Failed to list pending reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ProcessReview applies an accept/reject decision to a pending review
// @Summary Moderate review
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} model.DiningReview
// @Router /admin/reviews/{id} [put]
func (ctrl *AdminController) ProcessReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	var decision ReviewDecision
	if err := c.ShouldBindJSON(&decision); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "accept_review is required")
		return
	}

	review, err := ctrl.adminService.DecideReview(uint(id), *decision.AcceptReview)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
		case errors.Is(err, service.ErrReviewAlreadyModerated):
			apperrors.Conflict(c, apperrors.ReviewAlreadyModerated, "Review has already been moderated")
		default:
			apperrors.ParseAndRespond(c, err, "review")
		}
		return
	}

	c.JSON(http.StatusOK, review)
}
