// Package errors provides custom error types for the bookshelf system.
// These errors enable programmatic error checking at every call site:
// front-ends match on the sentinels with errors.Is and render the typed
// error's fields to the user.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As forward to the standard library.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the bookshelf system
var (
	// ErrNotFound indicates that a requested book was not found
	ErrNotFound = errors.New("not found")

	// ErrIO indicates that a file could not be read or written
	ErrIO = errors.New("io error")

	// ErrCorruptData indicates that persisted data does not match the expected format
	ErrCorruptData = errors.New("corrupt data")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// CorruptDataError represents persisted content that cannot be decoded
// into catalog records.
type CorruptDataError struct {
	Format  string // "yaml", "json", "csv"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *CorruptDataError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("corrupt %s data in %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("corrupt %s data in %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("corrupt %s data: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CorruptDataError) Is(target error) bool {
	return target == ErrCorruptData
}

// NewCorruptDataError creates a new CorruptDataError
func NewCorruptDataError(format, file, message string, err error) *CorruptDataError {
	return &CorruptDataError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIO checks if an error is an I/O error
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsCorruptData checks if an error is a corrupt data error
func IsCorruptData(err error) bool {
	return errors.Is(err, ErrCorruptData)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapCorrupt wraps a decoding error as a CorruptDataError
func WrapCorrupt(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewCorruptDataError(format, file, err.Error(), err)
}
