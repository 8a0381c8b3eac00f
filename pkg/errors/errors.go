package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// ErrorTypeNotFound indicates a lookup by id or unique field failed.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeAlreadyExists indicates a unique-title collision.
	ErrorTypeAlreadyExists ErrorType = "ALREADY_EXISTS"
	// ErrorTypeAlreadyInUse indicates a unique email or username collision.
	ErrorTypeAlreadyInUse ErrorType = "ALREADY_IN_USE"
	// ErrorTypeInvalidArgument indicates field-level validation failed.
	ErrorTypeInvalidArgument ErrorType = "INVALID_ARGUMENT"
	// ErrorTypeInternal indicates an unclassified internal failure.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error.
func New(errorType ErrorType, message string) error {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap wraps an error with an application error.
func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a not found error.
func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

// AlreadyExists creates an already-exists error.
func AlreadyExists(message string) error {
	return New(ErrorTypeAlreadyExists, message)
}

// AlreadyInUse creates an already-in-use error.
func AlreadyInUse(message string) error {
	return New(ErrorTypeAlreadyInUse, message)
}

// InvalidArgument creates an invalid-argument error.
func InvalidArgument(message string) error {
	return New(ErrorTypeInvalidArgument, message)
}

// Internal creates an internal error.
func Internal(message string) error {
	return New(ErrorTypeInternal, message)
}

func is(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return is(err, ErrorTypeNotFound)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return is(err, ErrorTypeAlreadyExists)
}

// IsAlreadyInUse checks if an error is an already-in-use error.
func IsAlreadyInUse(err error) bool {
	return is(err, ErrorTypeAlreadyInUse)
}

// IsInvalidArgument checks if an error is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return is(err, ErrorTypeInvalidArgument)
}

// IsInternal checks if an error is an internal error.
func IsInternal(err error) bool {
	return is(err, ErrorTypeInternal)
}

// IsDuplicateError checks if an error is a storage-level duplicate key
// error. The store's unique constraints are the backstop for races the
// service-layer existence checks cannot see.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "duplicate entry")
}
