// Package apperrors provides the typed request-level failures the API
// surfaces: bad input, unknown user, missing configuration. Per-row data
// anomalies never reach this package; they are absorbed during ledger
// normalization.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a request-level failure.
type ErrorCode string

const (
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeUserNotFound  ErrorCode = "USER_NOT_FOUND"
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// AppError is a structured application error with an HTTP mapping.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"error"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Status returns the HTTP status the error maps to.
func (e *AppError) Status() int {
	switch e.Code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewInputError reports a malformed or incomplete request payload.
func NewInputError(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message}
}

// NewNotFoundError reports an identity that resolves to no known user.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeUserNotFound, Message: message}
}

// NewConfigurationError reports a required external resource location that
// is unset.
func NewConfigurationError(message string) *AppError {
	return &AppError{Code: CodeConfiguration, Message: message}
}

// NewInternalError wraps an unexpected failure with a stable message.
func NewInternalError(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message}
}

// FromError returns err as *AppError, wrapping unknown errors as internal.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError("Internal server error")
}
