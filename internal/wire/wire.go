// Package wire holds the low-level JSON token helpers shared by the model codecs.
//
// The PACT wire format is strict: decimals travel as strings, enums as exact
// strings, and required members must be present. encoding/json is lenient on
// all three, so the model types route their UnmarshalJSON through here.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNotString is returned when a JSON string token was required.
	ErrNotString = constError("expected a JSON string")

	// ErrMissingField is returned when a required object member is absent.
	ErrMissingField = constError("missing required field")

	// ErrUnknownValue is returned when a string is not part of a closed vocabulary.
	ErrUnknownValue = constError("unknown enum value")
)

// IsNull reports whether data is the JSON literal null.
func IsNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// String decodes data as a JSON string token and rejects every other kind,
// including numbers, which encoding/json would otherwise happily hand to a
// text unmarshaler.
func String(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", fmt.Errorf("%w, got %s", ErrNotString, abbreviate(trimmed))
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", err
	}
	return s, nil
}

// Enum decodes a JSON string and checks it against the allowed values.
func Enum[T ~string](data []byte, allowed []T) (T, error) {
	s, err := String(data)
	if err != nil {
		return "", err
	}
	v := T(s)
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("%w %q", ErrUnknownValue, s)
	}
	return v, nil
}

// RequireFields checks that every key is present as a non-null member of
// the JSON object in data. A null member counts as missing.
func RequireFields(data []byte, typeName string, keys ...string) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return fmt.Errorf("%s: %w", typeName, err)
	}
	var missing []string
	for _, k := range keys {
		if raw, ok := members[k]; !ok || IsNull(raw) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", typeName, ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Members decodes a JSON object into its raw members.
func Members(data []byte) (map[string]json.RawMessage, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	return members, nil
}

const maxAbbrev = 16

func abbreviate(b []byte) string {
	if len(b) > maxAbbrev {
		return string(b[:maxAbbrev]) + "..."
	}
	return string(b)
}
