package fieldlens

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidArgument indicates a nil or blank input. Always a caller
	// bug, never recovered.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFieldNotFound indicates the name did not resolve under the
	// requested search mode.
	ErrFieldNotFound = errors.New("field not found")

	// ErrAmbiguousMatch indicates the name resolved to two or more
	// unrelated interface fields.
	ErrAmbiguousMatch = errors.New("ambiguous match")

	// ErrAccessDenied indicates the field is inaccessible and no override
	// was requested.
	ErrAccessDenied = errors.New("access denied")

	// ErrTypeMismatch indicates the value is not assignable to the field's
	// declared type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrImmutableField indicates an attempted mutation of a final field.
	ErrImmutableField = errors.New("immutable field")
)

// LookupError represents a resolution failure.
// It wraps a sentinel error with the queried type and field name.
type LookupError struct {
	Err   error  // Underlying sentinel error (ErrFieldNotFound, ErrAmbiguousMatch)
	Type  string // Name of the queried type
	Field string // Field name that failed to resolve
}

func (e *LookupError) Error() string {
	if e.Type != "" && e.Field != "" {
		return fmt.Sprintf("%s: field %q on type %s", e.Err.Error(), e.Field, e.Type)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// AccessError represents a failed read or write against a resolved field.
type AccessError struct {
	Err   error  // Underlying sentinel error (ErrAccessDenied, ErrTypeMismatch, ErrImmutableField)
	Op    string // Operation that failed (read, write)
	Field string // Field name that failed
	Cause error  // Original error from the host runtime, if any
}

func (e *AccessError) Error() string {
	s := fmt.Sprintf("%s: %s field %s", e.Err.Error(), e.Op, e.Field)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// newLookupError creates a LookupError for resolution failures.
func newLookupError(sentinel error, typeName, fieldName string) error {
	return &LookupError{
		Err:   sentinel,
		Type:  typeName,
		Field: fieldName,
	}
}

// newAccessError creates an AccessError for read/write failures.
func newAccessError(sentinel error, op, field string, cause error) error {
	return &AccessError{
		Err:   sentinel,
		Op:    op,
		Field: field,
		Cause: cause,
	}
}

// invalidArg creates an ErrInvalidArgument failure with a formatted message.
func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
