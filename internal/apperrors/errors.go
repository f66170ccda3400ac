package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidAmount indicates that a monetary value could not be parsed as a finite decimal.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidExchangeRate indicates a zero or negative exchange rate.
var ErrInvalidExchangeRate = errors.New("invalid exchange rate")

// ErrInvalidDecimalPlaces indicates a currency configured with decimal places outside [0,4].
var ErrInvalidDecimalPlaces = errors.New("invalid decimal places")

// AppError carries a status code alongside the wrapped cause. Used by the
// repository layer for infrastructure failures not covered by the sentinel
// errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
