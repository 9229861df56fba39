package ileap

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
	"github.com/rshade/ileap/pkg/pact"
)

// Length rules of the location codes.
const (
	iataMaxLen = 3
	locodeLen  = 5
	uicLen     = 2

	maxGlecDataQualityIndex = 4
)

// decodeCode reads a JSON string token and validates it with check.
func decodeCode[T ~string](dst *T, data []byte, typeName string, check func(T) error) error {
	s, err := wire.String(data)
	if err != nil {
		return &pact.ValidationError{Field: typeName, Reason: err.Error(), Err: err}
	}
	v := T(s)
	if err := check(v); err != nil {
		return err
	}
	*dst = v
	return nil
}

func checkLength(typeName, s string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(s)
	if n < minLen || n > maxLen {
		if minLen == maxLen {
			return pact.NewValidationError(typeName, "must be exactly %d characters, got %q", minLen, s)
		}
		return pact.NewValidationError(typeName, "must be %d to %d characters, got %q", minLen, maxLen, s)
	}
	return nil
}

// IataCode is an IATA airport or city code of at most three characters.
type IataCode string

// NewIataCode validates s.
func NewIataCode(s string) (IataCode, error) {
	c := IataCode(s)
	return c, c.Validate()
}

// Validate checks the length.
func (c IataCode) Validate() error { return checkLength("IataCode", string(c), 0, iataMaxLen) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *IataCode) UnmarshalJSON(data []byte) error {
	return decodeCode(c, data, "IataCode", IataCode.Validate)
}

// JSONSchema implements jsonschema.Schemer.
func (IataCode) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{Type: jsonschema.TypeList{jsonschema.TypeString}, MaxLength: jsonschema.Ptr(iataMaxLen)}
}

// Locode is a five-character UN/LOCODE.
type Locode string

// NewLocode validates s.
func NewLocode(s string) (Locode, error) {
	c := Locode(s)
	return c, c.Validate()
}

// Validate checks the length.
func (c Locode) Validate() error { return checkLength("Locode", string(c), locodeLen, locodeLen) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *Locode) UnmarshalJSON(data []byte) error {
	return decodeCode(c, data, "Locode", Locode.Validate)
}

// JSONSchema implements jsonschema.Schemer.
func (Locode) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:      jsonschema.TypeList{jsonschema.TypeString},
		MinLength: jsonschema.Ptr(locodeLen),
		MaxLength: jsonschema.Ptr(locodeLen),
	}
}

// UicCode is a two-character UIC country code.
type UicCode string

// NewUicCode validates s.
func NewUicCode(s string) (UicCode, error) {
	c := UicCode(s)
	return c, c.Validate()
}

// Validate checks the length.
func (c UicCode) Validate() error { return checkLength("UicCode", string(c), uicLen, uicLen) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *UicCode) UnmarshalJSON(data []byte) error {
	return decodeCode(c, data, "UicCode", UicCode.Validate)
}

// JSONSchema implements jsonschema.Schemer.
func (UicCode) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:      jsonschema.TypeList{jsonschema.TypeString},
		MinLength: jsonschema.Ptr(uicLen),
		MaxLength: jsonschema.Ptr(uicLen),
	}
}

// GlecDataQualityIndex grades TOC data quality from 0 to 4.
type GlecDataQualityIndex uint8

// NewGlecDataQualityIndex validates v.
func NewGlecDataQualityIndex(v int) (GlecDataQualityIndex, error) {
	if v < 0 || v > maxGlecDataQualityIndex {
		return 0, pact.NewValidationError("GlecDataQualityIndex", "%d is outside [0, %d]", v, maxGlecDataQualityIndex)
	}
	return GlecDataQualityIndex(v), nil
}

// Validate checks the range.
func (g GlecDataQualityIndex) Validate() error {
	_, err := NewGlecDataQualityIndex(int(g))
	return err
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GlecDataQualityIndex) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return &pact.ValidationError{Field: "GlecDataQualityIndex", Reason: err.Error(), Err: err}
	}
	v, err := NewGlecDataQualityIndex(n)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (GlecDataQualityIndex) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    jsonschema.TypeList{jsonschema.TypeInteger},
		Minimum: jsonschema.Ptr(0.0),
		Maximum: jsonschema.Ptr(float64(maxGlecDataQualityIndex)),
	}
}
