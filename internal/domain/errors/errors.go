package errors

import (
	"net/http"

	"harvest/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Sign in to continue",
		"",
	)

	// ErrProfileRequired asks the client to run the registration step
	// before retrying the original action.
	ErrProfileRequired = NewBaseError(
		http.StatusPreconditionFailed,
		"PROFILE_REQUIRED",
		"Complete your profile to continue",
		"",
	)

	ErrAlreadyInCart = NewBaseError(
		http.StatusConflict,
		"ALREADY_IN_CART",
		"Product is already in your cart",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusConflict,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrVendorOnly = NewBaseError(
		http.StatusForbidden,
		"VENDOR_ONLY",
		"This action requires a vendor account",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_FAILED",
		"Payment was not completed",
		"",
	)

	// ErrOrderCommitFailed is the generic retry prompt shown when the
	// order write fails after the payment was already captured.
	ErrOrderCommitFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_COMMIT_FAILED",
		"Could not record your order, please try again",
		"",
	)

	ErrCheckoutNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKOUT_NOT_FOUND",
		"No pending checkout for this reference",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
