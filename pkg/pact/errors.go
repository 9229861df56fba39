package pact

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = constError("validation failed")

	// ErrMalformedPfID indicates a footprint id that is not a UUID at all.
	ErrMalformedPfID = constError("malformed product footprint id")

	// ErrPfIDNotV4 indicates a syntactically valid UUID of the wrong version.
	ErrPfIDNotV4 = constError("product footprint id is not a version 4 UUID")
)

// ValidationError reports a value that violates the invariant of its type
// or of the record that holds it.
type ValidationError struct {
	// Field names the offending value, using wire names joined by dots
	// (for example "pcf.referencePeriodEnd").
	Field string

	// Reason describes the violated rule.
	Reason string

	// Err optionally carries a more specific sentinel such as ErrPfIDNotV4.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the wrapped sentinel, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Within prefixes the field of a ValidationError with parent and wraps
// other errors with it. It lets records report nested paths such as
// "pcf.dqi.coveragePercent".
func Within(parent string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		field := parent
		// type names such as "PositiveDecimal" are replaced by the member name
		if ve.Field != "" && !isTypeName(ve.Field) {
			field = parent + "." + ve.Field
		}
		return &ValidationError{Field: field, Reason: ve.Reason, Err: ve.Err}
	}
	return fmt.Errorf("%s: %w", parent, err)
}

func indexField(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}

func isTypeName(field string) bool {
	r, _ := utf8.DecodeRuneInString(field)
	return unicode.IsUpper(r)
}
