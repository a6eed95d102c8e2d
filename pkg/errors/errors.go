package errors

import (
	"errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - template rendering and lead validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeMissingPlaceholder
	ErrorTypeRateLimit

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeExternalAPI
	ErrorTypeEmail

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeMissingPlaceholder:
		return "MISSING_PLACEHOLDER_ERROR"
	case ErrorTypeRateLimit:
		return "RATE_LIMIT_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeEmail:
		return "EMAIL_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError         = ErrorTypeValidation
	NotFoundError           = ErrorTypeNotFound
	MissingPlaceholderError = ErrorTypeMissingPlaceholder
	RateLimitError          = ErrorTypeRateLimit
	ExternalAPIError        = ErrorTypeExternalAPI
	EmailError              = ErrorTypeEmail
	ConfigurationError      = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewMissingPlaceholderError reports a template token that has no value in the field bag.
func NewMissingPlaceholderError(template, placeholder string) *AppError {
	return New(MissingPlaceholderError, fmt.Sprintf("template %q references unknown placeholder {%s}", template, placeholder))
}

func NewRateLimitError(message string) *AppError {
	return New(RateLimitError, message)
}

// Infrastructure Error Constructors
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewEmailError(message string, cause error) *AppError {
	return Wrap(EmailError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsMissingPlaceholderError(err error) bool {
	return TypeOf(err) == MissingPlaceholderError
}

func IsRateLimitError(err error) bool {
	return TypeOf(err) == RateLimitError
}

func IsEmailError(err error) bool {
	return TypeOf(err) == EmailError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
