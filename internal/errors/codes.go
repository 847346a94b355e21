package errors

// Error code constants
// Format: CATEGORY_SPECIFIC_DETAIL
// Clients map these codes to their own display messages

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput   = "VALIDATION_INVALID_INPUT"   // malformed request body
	ValidationInvalidID      = "VALIDATION_INVALID_ID"      // non-numeric or missing id
	ValidationInvalidAllergy = "VALIDATION_INVALID_ALLERGY" // unknown allergy category
	ValidationInvalidScore   = "VALIDATION_INVALID_SCORE"   // score outside 1-5
	ValidationRequired       = "VALIDATION_REQUIRED"        // missing required field

	// ==================== User (USER_) ====================
	UserNotFound      = "USER_NOT_FOUND"      // no user with that username
	UserAlreadyExists = "USER_ALREADY_EXISTS" // username taken

	// ==================== Restaurant (RESTAURANT_) ====================
	RestaurantNotFound = "RESTAURANT_NOT_FOUND" // no restaurant with that id

	// ==================== Review (REVIEW_) ====================
	ReviewNotFound         = "REVIEW_NOT_FOUND"          // no review with that id
	ReviewAuthorNotFound   = "REVIEW_AUTHOR_NOT_FOUND"   // author username unknown
	ReviewAlreadyModerated = "REVIEW_ALREADY_MODERATED"  // decision on a terminal review

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // generic missing resource
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // duplicate unique key

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // unexpected failure
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // storage failure
)
