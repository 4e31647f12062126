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

	// Theme errors (construction time)
	ErrThemeInvalid ErrorCode = "THEME_INVALID"
	ErrThemeLoad    ErrorCode = "THEME_LOAD"

	// Transient errors (usage)
	ErrTransientActive ErrorCode = "TRANSIENT_ACTIVE"
	ErrTransientDone   ErrorCode = "TRANSIENT_DONE"

	// Output errors (IO)
	ErrWriteFailed ErrorCode = "WRITE_FAILED"

	// Prompt errors
	ErrPromptCancelled ErrorCode = "PROMPT_CANCELLED"
	ErrPromptAttempts  ErrorCode = "PROMPT_ATTEMPTS"
)

// ClicycleError represents a structured error with code and details
type ClicycleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ClicycleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ClicycleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ClicycleError) Is(target error) bool {
	var targetErr *ClicycleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ClicycleError with the given code and message
func New(code ErrorCode, message string) *ClicycleError {
	return &ClicycleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ClicycleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ClicycleError {
	return &ClicycleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ClicycleError
func Wrap(err error, code ErrorCode, message string) *ClicycleError {
	if err == nil {
		return nil
	}
	return &ClicycleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ClicycleError {
	if err == nil {
		return nil
	}
	return &ClicycleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ClicycleError) WithDetail(key string, value interface{}) *ClicycleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cErr *ClicycleError
	if errors.As(err, &cErr) {
		return cErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ClicycleError
func GetErrorCode(err error) ErrorCode {
	var cErr *ClicycleError
	if errors.As(err, &cErr) {
		return cErr.Code
	}
	return ErrUnknown
}

// IsCancelled reports whether err represents a cancelled prompt, either from
// an interrupt/EOF or from running out of attempts.
func IsCancelled(err error) bool {
	code := GetErrorCode(err)
	return code == ErrPromptCancelled || code == ErrPromptAttempts
}
