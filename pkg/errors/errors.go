package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Trigger action errors
	ErrActionInvalid  ErrorCode = "ACTION_INVALID"
	ErrArgSpecInvalid ErrorCode = "ARGSPEC_INVALID"

	// Lifecycle errors
	ErrSealed ErrorCode = "SEALED"

	// Metadata errors
	ErrEncode ErrorCode = "ENCODE"
	ErrDecode ErrorCode = "DECODE"
)

// ArgspecError represents a structured error with code and details
type ArgspecError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ArgspecError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ArgspecError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ArgspecError) Is(target error) bool {
	var targetErr *ArgspecError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ArgspecError with the given code and message
func New(code ErrorCode, message string) *ArgspecError {
	return &ArgspecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ArgspecError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ArgspecError {
	return &ArgspecError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ArgspecError
func Wrap(err error, code ErrorCode, message string) *ArgspecError {
	if err == nil {
		return nil
	}
	return &ArgspecError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ArgspecError {
	if err == nil {
		return nil
	}
	return &ArgspecError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ArgspecError) WithDetail(key string, value interface{}) *ArgspecError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var argErr *ArgspecError
	if errors.As(err, &argErr) {
		return argErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ArgspecError
func GetErrorCode(err error) ErrorCode {
	var argErr *ArgspecError
	if errors.As(err, &argErr) {
		return argErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ArgspecError
func GetErrorDetails(err error) map[string]interface{} {
	var argErr *ArgspecError
	if errors.As(err, &argErr) {
		return argErr.Details
	}
	return nil
}
