package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/service"
	apperrors "github.com/tim-rayner/restaurant-review-api/internal/errors"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser registers a new user profile
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Success 201 {object} model.User
// @Router /users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	if user.Username == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Username is required")
		return
	}

	if err := ctrl.userService.CreateUser(&user); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			apperrors.Conflict(c, apperrors.UserAlreadyExists, "That username is already taken")
			return
		}
		// A create racing past the existence check lands here as a
		// duplicate-key error; the parser maps it back to a conflict
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser fetches a user profile by username
// @Summary Get user
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.User
// @Router /users/{username} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := ctrl.userService.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "User not found")
			return
		}
		apperrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial profile update; the username is immutable
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.User
// @Router /users/{username} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	username := c.Param("username")

	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	user, err := ctrl.userService.UpdateUser(username, input)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.UserNotFound, "User not found")
			return
		}
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, user)
}
