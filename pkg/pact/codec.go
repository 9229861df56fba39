package pact

import (
	"encoding/json"
	"errors"

	"github.com/rshade/ileap/internal/wire"
)

// validator is implemented by every record and scalar in this module.
type validator interface {
	Validate() error
}

// RequireFields reports the first missing member of a JSON object as a
// ValidationError wrapping wire.ErrMissingField.
func RequireFields(data []byte, typeName string, keys ...string) error {
	err := wire.RequireFields(data, typeName, keys...)
	if err == nil {
		return nil
	}
	if errors.Is(err, wire.ErrMissingField) {
		return &ValidationError{Field: typeName, Reason: err.Error(), Err: wire.ErrMissingField}
	}
	return err
}

// DecodeObject checks the required members of data and decodes it into dst,
// which should point to a method-free shadow of the record type so decoding
// does not recurse.
func DecodeObject(data []byte, typeName string, dst any, required ...string) error {
	if err := RequireFields(data, typeName, required...); err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// validateOptional runs Validate on v when it is non-nil.
func validateOptional[T validator](field string, v *T) error {
	if v == nil {
		return nil
	}
	return Within(field, (*v).Validate())
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
