// ABOUTME: Error types and handling for the highlights library
// ABOUTME: Converts core errors into structured library errors with context

package highlightslib

import (
	"errors"
	"fmt"

	coreerrors "highlights-app-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeUnavailable indicates an upstream source could not be used
	ErrorTypeUnavailable ErrorType = "unavailable"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// wrapError maps core errors onto library error types
func wrapError(err error, op string) error {
	if err == nil {
		return nil
	}

	var libErr *Error
	if errors.As(err, &libErr) {
		return err
	}

	var e *Error
	switch {
	case coreerrors.IsNotFound(err):
		e = NewError(ErrorTypeNotFound, "resource not found")
	case coreerrors.IsValidation(err):
		e = NewError(ErrorTypeValidation, "invalid input")
	case coreerrors.IsNoFixtures(err), coreerrors.IsExternalAPI(err):
		e = NewError(ErrorTypeUnavailable, "upstream source unavailable")
	default:
		e = NewError(ErrorTypeInternal, "operation failed")
	}
	return e.WithCause(err).WithContext("operation", op)
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errType
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsUnavailableError checks if an error comes from an unusable upstream source
func IsUnavailableError(err error) bool {
	return isType(err, ErrorTypeUnavailable)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
