// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeCatalogUnavailable indicates the pricing catalog could not be loaded
	TypeCatalogUnavailable Type = "CATALOG_UNAVAILABLE"

	// TypeInvalidSelection indicates an invalid service selection
	TypeInvalidSelection Type = "INVALID_SELECTION"

	// TypeMissingRetainerScheme indicates a retainer scheme was required but absent
	TypeMissingRetainerScheme Type = "MISSING_RETAINER_SCHEME"

	// TypeNotFound indicates a catalog entry was not found
	TypeNotFound Type = "NOT_FOUND"

	// TypeNotSupported indicates an unsupported operation
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// Retryable reports whether retrying the operation can succeed.
// Only catalog fetch failures are retryable; selection errors must
// be corrected by the caller first.
func (e *Error) Retryable() bool {
	return e.Type == TypeCatalogUnavailable
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// CatalogUnavailable creates a catalog fetch error
func CatalogUnavailable(message string, cause error) *Error {
	return Wrap(TypeCatalogUnavailable, message, cause)
}

// InvalidSelection creates a selection validation error
func InvalidSelection(message string) *Error {
	return New(TypeInvalidSelection, message)
}

// InvalidSelectionf creates a formatted selection validation error
func InvalidSelectionf(format string, args ...interface{}) *Error {
	return Newf(TypeInvalidSelection, format, args...)
}

// MissingRetainerScheme creates a missing retainer scheme error
func MissingRetainerScheme(modality string) *Error {
	return Newf(TypeMissingRetainerScheme, "retainer scheme required for %s positions", modality)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// NotSupported creates a not supported error
func NotSupported(operation string) *Error {
	return Newf(TypeNotSupported, "operation not supported: %s", operation)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
