// Package errors provides custom error types for the budget planner.
// All service-layer errors should use AppError so that handlers can render
// consistent responses without leaking storage details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so wrapped copies of a
// sentinel still satisfy errors.Is(err, ErrXxx).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Storage errors. Any failure to reach or query the database is reported as
// ErrStorageUnavailable and aborts the request; there is no retry.
var (
	ErrStorageUnavailable = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "Storage is unavailable", StatusCode: http.StatusServiceUnavailable}
)

// Budget errors.
var (
	ErrInvalidMonth = &AppError{Code: "INVALID_MONTH", Message: "Month must be formatted as YYYY-MM", StatusCode: http.StatusBadRequest}
)

// Amount errors.
var (
	ErrInvalidAmount = &AppError{Code: "INVALID_AMOUNT", Message: "Invalid amount", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrInvalidCategory = &AppError{Code: "INVALID_CATEGORY", Message: "Unknown expense category", StatusCode: http.StatusBadRequest}
	ErrInvalidDate     = &AppError{Code: "INVALID_DATE", Message: "Date must be formatted as YYYY-MM-DD", StatusCode: http.StatusBadRequest}
)
