package types

import (
	"errors"
	"fmt"
)

// Standard error types
type ErrorType string

const (
	ErrTypeConfig          ErrorType = "CONFIG_ERROR"
	ErrTypeValidation      ErrorType = "VALIDATION_ERROR"
	ErrTypeInvalidValue    ErrorType = "INVALID_VALUE"
	ErrTypeBadRequest      ErrorType = "BAD_REQUEST"
	ErrTypeLookupFailure   ErrorType = "LOOKUP_FAILURE"
	ErrTypeEmptyResult     ErrorType = "EMPTY_RESULT"
	ErrTypeMalformedResult ErrorType = "MALFORMED_RESULT"
	ErrTypeInternal        ErrorType = "INTERNAL_ERROR"
)

// StandardError provides consistent error formatting
type StandardError struct {
	Type    ErrorType
	Message string
	Details map[string]any
	Cause   error
}

func (e *StandardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// ErrorTypeOf returns the type of the first StandardError in err's chain,
// or ErrTypeInternal when there is none.
func ErrorTypeOf(err error) ErrorType {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Type
	}
	return ErrTypeInternal
}

func IsErrorType(err error, t ErrorType) bool {
	var se *StandardError
	return errors.As(err, &se) && se.Type == t
}

// Error constructors for common cases

func NewConfigError(msg string, cause error) error {
	return &StandardError{
		Type:    ErrTypeConfig,
		Message: msg,
		Cause:   cause,
	}
}

func NewValidationError(field, msg string) error {
	return &StandardError{
		Type:    ErrTypeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, msg),
		Details: map[string]any{"field": field},
	}
}

func NewInvalidValueError(field, value, msg string) error {
	return &StandardError{
		Type:    ErrTypeInvalidValue,
		Message: fmt.Sprintf("invalid value for %s: %s (%s)", field, value, msg),
		Details: map[string]any{"field": field, "value": value},
	}
}

func NewBadRequestError(msg string) error {
	return &StandardError{
		Type:    ErrTypeBadRequest,
		Message: msg,
	}
}

// NewLookupFailureError reports that the explorer could not be reached or
// answered a listing request with an error.
func NewLookupFailureError(operation string, cause error) error {
	return &StandardError{
		Type:    ErrTypeLookupFailure,
		Message: fmt.Sprintf("explorer %s failed", operation),
		Details: map[string]any{"operation": operation},
		Cause:   cause,
	}
}

func NewEmptyResultError(resource, collection string) error {
	return &StandardError{
		Type:    ErrTypeEmptyResult,
		Message: fmt.Sprintf("%s not found for collection %s", resource, collection),
		Details: map[string]any{"resource": resource, "collection": collection},
	}
}

func NewMalformedResultError(msg string) error {
	return &StandardError{
		Type:    ErrTypeMalformedResult,
		Message: msg,
	}
}

func NewInternalError(msg string, cause error) error {
	return &StandardError{
		Type:    ErrTypeInternal,
		Message: msg,
		Cause:   cause,
	}
}
