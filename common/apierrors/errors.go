package apierrors

import (
	"errors"
	"fmt"
)

// AppError defines a standard application error.
type AppError struct {
	Code       string // Application-specific error code
	Message    string // User-friendly error message
	StatusCode int    // HTTP status returned by the product API, zero when none was received
	Err        error  // Original underlying error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		// Include cause for better internal logging
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Category reports whether the error is a business or an application error.
func (e *AppError) Category() ErrorCategory {
	return CategoryOf(e.Code)
}

// NewAppError creates a new AppError. Use this for generating errors.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// NewStatusError creates an AppError for a non-success HTTP status from the product API.
func NewStatusError(statusCode int, message string) *AppError {
	code := ErrCodeUpstreamStatus
	if statusCode == 404 {
		code = ErrCodeProductNotFound
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        fmt.Errorf("product api returned status: %d", statusCode),
	}
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsTransport reports whether err means no HTTP response was received.
func IsTransport(err error) bool {
	return HasCode(err, ErrCodeNetworkError) ||
		HasCode(err, ErrCodeRequestTimeout) ||
		HasCode(err, ErrCodeServiceUnavailable)
}
