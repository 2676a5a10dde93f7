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

	// Invocation errors
	ErrFolderNotFound   ErrorCode = "FOLDER_NOT_FOUND"
	ErrNotADirectory    ErrorCode = "NOT_A_DIRECTORY"
	ErrThresholdRange   ErrorCode = "THRESHOLD_RANGE"
	ErrConfirmDeclined  ErrorCode = "CONFIRM_DECLINED"
	ErrConfirmReadInput ErrorCode = "CONFIRM_READ_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFolderAccess ErrorCode = "FOLDER_ACCESS"
	ErrDeleteFailed ErrorCode = "DELETE_FAILED"
	ErrReportWrite  ErrorCode = "REPORT_WRITE"
)

// DupError represents a structured error with code and details
type DupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DupError) Is(target error) bool {
	var targetErr *DupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DupError with the given code and message
func New(code ErrorCode, message string) *DupError {
	return &DupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DupError {
	return &DupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DupError
func Wrap(err error, code ErrorCode, message string) *DupError {
	if err == nil {
		return nil
	}
	return &DupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DupError {
	if err == nil {
		return nil
	}
	return &DupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DupError) WithDetail(key string, value interface{}) *DupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dupErr *DupError
	if errors.As(err, &dupErr) {
		return dupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DupError
func GetErrorCode(err error) ErrorCode {
	var dupErr *DupError
	if errors.As(err, &dupErr) {
		return dupErr.Code
	}
	return ErrUnknown
}
