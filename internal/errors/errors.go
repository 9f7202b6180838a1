package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrUnknownSample      = errors.New("unknown sample document")
	ErrInvalidLabelCase   = errors.New("invalid label case")
	ErrInvalidPrecision   = errors.New("float precision must be between 0 and 17")
	ErrContainerOwned     = errors.New("container is owned by another container")
	ErrContainerDestroyed = errors.New("container has been destroyed")
	ErrSelfReference      = errors.New("container cannot contain itself")
	ErrNilContainer       = errors.New("container is nil")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeOwnership ErrorType = "ownership"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to user input, such as sample names
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading or validation
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOwnershipError creates a new error describing misuse of a container
// after its ownership moved or it was destroyed.
func NewOwnershipError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOwnership,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOwnership:
			return fmt.Sprintf("Container misuse: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrUnknownSample) {
		return "Error: Unknown sample document. Run with --list to see the available samples."
	}
	if errors.Is(err, ErrInvalidLabelCase) {
		return "Error: Invalid label case. Use one of as_is, camel, lower_camel, snake or kebab."
	}
	if errors.Is(err, ErrInvalidPrecision) {
		return "Error: Invalid float precision. Use a value between 0 and 17."
	}

	return fmt.Sprintf("Error: %v", err)
}
