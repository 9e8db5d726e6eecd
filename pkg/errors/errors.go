package errors

import (
	"errors"
	"fmt"
)

// Domain error types for business logic

var (
	// ErrCityNotFound indicates the requested city is not in a lookup table
	ErrCityNotFound = errors.New("city not found")

	// ErrTimezoneUnavailable indicates no timezone mapping exists for a city
	ErrTimezoneUnavailable = errors.New("timezone information unavailable")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")

	// ErrTimeout indicates an operation timeout
	ErrTimeout = errors.New("operation timeout")

	// ErrUnavailable indicates a service is unavailable
	ErrUnavailable = errors.New("service unavailable")
)

// Model provider errors

var (
	// ErrProviderNotConfigured indicates the selected model provider has no credentials
	ErrProviderNotConfigured = errors.New("model provider not configured")

	// ErrProviderUnknown indicates an unsupported model provider name
	ErrProviderUnknown = errors.New("unknown model provider")

	// ErrRateLimitExceeded indicates a tool or provider rate limit was hit
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// Agent errors

var (
	// ErrAgentNotFound indicates no agent is registered under the requested name
	ErrAgentNotFound = errors.New("agent not found")

	// ErrToolNotFound indicates no tool is registered under the requested name
	ErrToolNotFound = errors.New("tool not found")
)

// DomainError wraps an error with additional context
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
