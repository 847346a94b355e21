package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a presentable message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps storage-layer errors to an error code and message.
// context hints which entity the failing operation was about.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An internal error occurred",
		}
	}

	errStrLower := strings.ToLower(err.Error())

	// 1. GORM record-not-found
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: notFoundMessage(context),
		}
	}

	// 2. Unique constraint violation (Postgres 23505, SQLite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		if strings.Contains(errStrLower, "username") || strings.Contains(errStrLower, "idx_users_username") {
			return ErrorInfo{
				Code:    UserAlreadyExists,
				Message: "That username is already taken",
			}
		}
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "The record already exists",
		}
	}

	// 3. Foreign key violation (review pointing at a missing restaurant)
	if strings.Contains(errStrLower, "foreign key constraint") {
		if strings.Contains(errStrLower, "restaurant") {
			return ErrorInfo{
				Code:    RestaurantNotFound,
				Message: "The referenced restaurant does not exist",
			}
		}
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: "A referenced record does not exist",
		}
	}

	// 4. Not-null violation
	if strings.Contains(errStrLower, "null value") || strings.Contains(errStrLower, "not null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: "A storage error occurred. Please try again later",
	}
}

// ParseAndRespond maps a storage-layer error and writes the response, with
// the HTTP status chosen from the mapped code. Controllers use this as the
// fallback for write-path errors their sentinel checks did not cover, such as
// a duplicate key surfacing from a create that raced past an existence check.
func ParseAndRespond(c *gin.Context, err error, context string) {
	info := ParseError(err, context)
	RespondWithError(c, statusForCode(info.Code), info.Code, info.Message)
}

func statusForCode(code string) int {
	switch code {
	case UserNotFound, RestaurantNotFound, ReviewNotFound, ResourceNotFound:
		return http.StatusNotFound
	case UserAlreadyExists, ResourceAlreadyExists:
		return http.StatusConflict
	case ValidationRequired:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func notFoundCode(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "restaurant"):
		return RestaurantNotFound
	case strings.Contains(contextLower, "user"):
		return UserNotFound
	case strings.Contains(contextLower, "review"):
		return ReviewNotFound
	}
	return ResourceNotFound
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "restaurant"):
		return "Restaurant not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	case strings.Contains(contextLower, "review"):
		return "Review not found"
	}
	return "The requested record was not found"
}
