// Package errors provides standardized error types and helpers for the XliffCapsule codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a referenced path or resource was not found
	ErrNotFound = errors.New("not found")
	// ErrFormat indicates malformed or unsupported document content
	ErrFormat = errors.New("format error")
	// ErrTypeMismatch indicates a value of the wrong document generation
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrConversion indicates a resource conversion failure
	ErrConversion = errors.New("conversion error")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents a missing path or resource with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "document", "resource file")
	Path     string // Path of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Path)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// FormatError represents malformed input: a root tag mismatch, an
// unsupported version attribute, or a structural deserialization failure.
// The underlying cause, when present, is always carried in Err.
type FormatError struct {
	Format  string // Format being parsed (e.g., "XLIFF 1.2", "resx")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Message)
}

func (e *FormatError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFormat
}

// TypeMismatchError indicates a generic entry point received a document tree
// of the wrong generation for the requested operation.
type TypeMismatchError struct {
	Operation string // Operation that was attempted (e.g., "save", "export")
	Got       string // Description of the value that was received
	Want      string // Description of the accepted types
}

func (e *TypeMismatchError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("%s: got %s, want %s", e.Operation, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: unsupported document type %s", e.Operation, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// ConversionError represents a failure to parse the flat resource envelope
// during import.
type ConversionError struct {
	Stage string // Stage that failed (e.g., "import", "export")
	Path  string // File path, if applicable
	Err   error  // Underlying error
}

func (e *ConversionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("conversion failed during %s of %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("conversion failed during %s: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConversion
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, path string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Path:     path,
	}
}

// NewFormat creates a FormatError
func NewFormat(format, path, message string) *FormatError {
	return &FormatError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewTypeMismatch creates a TypeMismatchError
func NewTypeMismatch(operation, got, want string) *TypeMismatchError {
	return &TypeMismatchError{
		Operation: operation,
		Got:       got,
		Want:      want,
	}
}

// NewConversion creates a ConversionError wrapping the underlying cause
func NewConversion(stage, path string, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
