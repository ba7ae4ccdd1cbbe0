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

	// Fragment errors
	ErrFragmentRead ErrorCode = "FRAGMENT_READ"

	// Manifest errors
	ErrManifestRead   ErrorCode = "MANIFEST_READ"
	ErrManifestWrite  ErrorCode = "MANIFEST_WRITE"
	ErrManifestDelete ErrorCode = "MANIFEST_DELETE"

	// Plugin spec errors
	ErrPluginSpecParse ErrorCode = "PLUGIN_SPEC_PARSE"

	// CocoaPods errors
	ErrPodNotFound ErrorCode = "POD_NOT_FOUND"
	ErrPodInstall  ErrorCode = "POD_INSTALL"

	// Linker config errors
	ErrXCConfigParse ErrorCode = "XCCONFIG_PARSE"
)

// PodmergeError represents a structured error with code and details
type PodmergeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PodmergeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PodmergeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PodmergeError) Is(target error) bool {
	var targetErr *PodmergeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PodmergeError with the given code and message
func New(code ErrorCode, message string) *PodmergeError {
	return &PodmergeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PodmergeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PodmergeError {
	return &PodmergeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PodmergeError
func Wrap(err error, code ErrorCode, message string) *PodmergeError {
	if err == nil {
		return nil
	}
	return &PodmergeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PodmergeError {
	if err == nil {
		return nil
	}
	return &PodmergeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PodmergeError) WithDetail(key string, value interface{}) *PodmergeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not PodmergeErrors
func GetCode(err error) ErrorCode {
	var perr *PodmergeError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// IsCode checks whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
