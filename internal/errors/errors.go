package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// AppError represents an application-specific error with additional context
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]interface{}
}

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorUnknown ErrorType = iota
	// ErrorConfiguration covers a missing API key or unusable settings
	ErrorConfiguration
	// ErrorTransport covers network, DNS and TLS failures
	ErrorTransport
	// ErrorProtocol covers non-success HTTP statuses
	ErrorProtocol
	// ErrorSchema covers payloads that do not match the player schema
	ErrorSchema
	// ErrorTerminal covers raw mode and alternate screen failures
	ErrorTerminal
	ErrorInternal
)

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:      errorType,
		Message:   message,
		Timestamp: time.Now(),
		Context:   make(map[string]interface{}),
	}
}

// Wrap creates a new AppError wrapping an existing error
func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errorType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
		Context:   make(map[string]interface{}),
	}
}

// WithContext adds context to an AppError
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	e.Context[key] = value
	return e
}

// GetTypeString returns a human-readable string for the error type
func (e *AppError) GetTypeString() string {
	switch e.Type {
	case ErrorConfiguration:
		return "Configuration Error"
	case ErrorTransport:
		return "Transport Error"
	case ErrorProtocol:
		return "Protocol Error"
	case ErrorSchema:
		return "Schema Error"
	case ErrorTerminal:
		return "Terminal Error"
	case ErrorInternal:
		return "Internal Error"
	default:
		return "Unknown Error"
	}
}

// IsRecoverable returns true if retrying the same operation might succeed.
// Nothing retries automatically; the CLI prints a retry hint instead.
func (e *AppError) IsRecoverable() bool {
	switch e.Type {
	case ErrorTransport, ErrorProtocol:
		return true
	default:
		return false
	}
}

// TypeOf returns the ErrorType of the first AppError in err's chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorUnknown
}

// Common error constructors
func NewConfigError(message string, cause error) *AppError {
	return Wrap(ErrorConfiguration, message, cause)
}

func NewTransportError(message string, cause error) *AppError {
	return Wrap(ErrorTransport, message, cause)
}

func NewProtocolError(message string, cause error) *AppError {
	return Wrap(ErrorProtocol, message, cause)
}

func NewSchemaError(message string, cause error) *AppError {
	return Wrap(ErrorSchema, message, cause)
}

func NewTerminalError(message string, cause error) *AppError {
	return Wrap(ErrorTerminal, message, cause)
}
