package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable value for testing.
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Formatting errors
	ErrNoFormatRule ErrorCode = "NO_FORMAT_RULE"

	// Extension provider errors
	ErrProviderNotFound ErrorCode = "PROVIDER_NOT_FOUND"
	ErrProviderConfig   ErrorCode = "PROVIDER_CONFIG"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Documentation bundle errors
	ErrDocParse ErrorCode = "DOC_PARSE"

	// File export errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// DocketError is a structured error carrying a code, a message and
// optional details for context.
type DocketError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *DocketError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *DocketError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DocketError with the same code.
func (e *DocketError) Is(target error) bool {
	var targetErr *DocketError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocketError with the given code and message.
func New(code ErrorCode, message string) *DocketError {
	return &DocketError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocketError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *DocketError {
	return &DocketError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocketError.
func Wrap(err error, code ErrorCode, message string) *DocketError {
	if err == nil {
		return nil
	}
	return &DocketError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocketError {
	if err == nil {
		return nil
	}
	return &DocketError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error and returns it for chaining.
func (e *DocketError) WithDetail(key string, value interface{}) *DocketError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var docketErr *DocketError
	if errors.As(err, &docketErr) {
		return docketErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// err is not a DocketError.
func GetErrorCode(err error) ErrorCode {
	var docketErr *DocketError
	if errors.As(err, &docketErr) {
		return docketErr.Code
	}
	return ErrUnknown
}
