package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Catalog errors
	ErrSandwichNotFound   = errors.New("sandwich not found")
	ErrIngredientNotFound = errors.New("ingredient not found")

	// Promo code errors
	ErrPromoCodeNotFound  = errors.New("promo code not found")
	ErrPromoCodeDuplicate = errors.New("promo code already exists")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is inactive")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrStoreUnavailable        = errors.New("store unavailable")
)
