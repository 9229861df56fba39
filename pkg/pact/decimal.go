package pact

import (
	"encoding/json"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
)

// decimalRule describes one decimal scalar: its wire pattern and the sign
// constraint enforced on the parsed value.
type decimalRule struct {
	name    string
	pattern string
	re      *regexp.Regexp
	ok      func(decimal.Decimal) bool
	reason  string
}

//nolint:gochecknoglobals // immutable rule table
var (
	anyDecimal = newDecimalRule("Decimal", `^-?\d+(\.\d+)?$`,
		func(decimal.Decimal) bool { return true }, "")
	positiveDecimal = newDecimalRule("PositiveDecimal", `^\d+(\.\d+)?$`,
		func(d decimal.Decimal) bool { return !d.IsNegative() }, "must be zero or greater")
	negativeDecimal = newDecimalRule("NegativeDecimal", `^(-\d+(\.\d+)?|0)$`,
		func(d decimal.Decimal) bool { return !d.IsPositive() }, "must be zero or less")
	strictlyPositiveDecimal = newDecimalRule("StrictlyPositiveDecimal",
		`^(\d*[1-9]\d*([\.]\d+)?|\d+(\.\d*[1-9]\d*)?)$`,
		func(d decimal.Decimal) bool { return d.IsPositive() }, "must be greater than zero")

	// decimalSyntax is what every decimal string must look like before the
	// sign rule is applied.
	decimalSyntax = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

func newDecimalRule(name, pattern string, ok func(decimal.Decimal) bool, reason string) decimalRule {
	return decimalRule{name: name, pattern: pattern, re: regexp.MustCompile(pattern), ok: ok, reason: reason}
}

func (r decimalRule) check(d decimal.Decimal) error {
	if !r.ok(d) {
		return NewValidationError(r.name, "%s %s", d.String(), r.reason)
	}
	return nil
}

func (r decimalRule) parse(s string) (decimal.Decimal, error) {
	if !decimalSyntax.MatchString(s) {
		return decimal.Decimal{}, NewValidationError(r.name, "%q is not a decimal string", s)
	}
	if !r.re.MatchString(s) {
		return decimal.Decimal{}, NewValidationError(r.name, "%q does not match %s", s, r.pattern)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: r.name, Reason: err.Error(), Err: err}
	}
	return d, r.check(d)
}

// decode accepts only JSON strings; a bare number literal is an error.
func (r decimalRule) decode(data []byte) (decimal.Decimal, error) {
	s, err := wire.String(data)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: r.name, Reason: err.Error(), Err: err}
	}
	return r.parse(s)
}

func (r decimalRule) schema() *jsonschema.Schema {
	return jsonschema.String(r.pattern)
}

func marshalDecimal(d decimal.Decimal) ([]byte, error) {
	return json.Marshal(d.String())
}

// Decimal is an arbitrary-precision decimal that travels as a JSON string.
type Decimal struct {
	value decimal.Decimal
}

// NewDecimal wraps d.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{value: d} }

// ParseDecimal parses a decimal string such as "-12.5".
func ParseDecimal(s string) (Decimal, error) {
	d, err := anyDecimal.parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{value: d}, nil
}

// MustDecimal is ParseDecimal for constants; it panics on invalid input.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Decimal returns the underlying value.
func (d Decimal) Decimal() decimal.Decimal { return d.value }

// String renders the value without exponent notation.
func (d Decimal) String() string { return d.value.String() }

// Equal compares numerically, so "1.0" equals "1".
func (d Decimal) Equal(o Decimal) bool { return d.value.Equal(o.value) }

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) { return marshalDecimal(d.value) }

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) { return []byte(d.value.String()), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	v, err := anyDecimal.decode(data)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (Decimal) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema { return anyDecimal.schema() }

// PositiveDecimal is a decimal greater than or equal to zero.
type PositiveDecimal struct {
	value decimal.Decimal
}

// NewPositiveDecimal validates d.
func NewPositiveDecimal(d decimal.Decimal) (PositiveDecimal, error) {
	if err := positiveDecimal.check(d); err != nil {
		return PositiveDecimal{}, err
	}
	return PositiveDecimal{value: d}, nil
}

// ParsePositiveDecimal parses and validates s.
func ParsePositiveDecimal(s string) (PositiveDecimal, error) {
	d, err := positiveDecimal.parse(s)
	if err != nil {
		return PositiveDecimal{}, err
	}
	return PositiveDecimal{value: d}, nil
}

// MustPositiveDecimal is ParsePositiveDecimal for constants; it panics on invalid input.
func MustPositiveDecimal(s string) PositiveDecimal {
	d, err := ParsePositiveDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Decimal returns the underlying value.
func (d PositiveDecimal) Decimal() decimal.Decimal { return d.value }

// String renders the value without exponent notation.
func (d PositiveDecimal) String() string { return d.value.String() }

// Equal compares numerically.
func (d PositiveDecimal) Equal(o PositiveDecimal) bool { return d.value.Equal(o.value) }

// Validate checks the invariant.
func (d PositiveDecimal) Validate() error { return positiveDecimal.check(d.value) }

// MarshalJSON implements json.Marshaler.
func (d PositiveDecimal) MarshalJSON() ([]byte, error) { return marshalDecimal(d.value) }

// MarshalText implements encoding.TextMarshaler.
func (d PositiveDecimal) MarshalText() ([]byte, error) { return []byte(d.value.String()), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (d *PositiveDecimal) UnmarshalJSON(data []byte) error {
	v, err := positiveDecimal.decode(data)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (PositiveDecimal) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return positiveDecimal.schema()
}

// NegativeDecimal is a decimal less than or equal to zero.
type NegativeDecimal struct {
	value decimal.Decimal
}

// NewNegativeDecimal validates d.
func NewNegativeDecimal(d decimal.Decimal) (NegativeDecimal, error) {
	if err := negativeDecimal.check(d); err != nil {
		return NegativeDecimal{}, err
	}
	return NegativeDecimal{value: d}, nil
}

// ParseNegativeDecimal parses and validates s.
func ParseNegativeDecimal(s string) (NegativeDecimal, error) {
	d, err := negativeDecimal.parse(s)
	if err != nil {
		return NegativeDecimal{}, err
	}
	return NegativeDecimal{value: d}, nil
}

// MustNegativeDecimal is ParseNegativeDecimal for constants; it panics on invalid input.
func MustNegativeDecimal(s string) NegativeDecimal {
	d, err := ParseNegativeDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Decimal returns the underlying value.
func (d NegativeDecimal) Decimal() decimal.Decimal { return d.value }

// String renders the value without exponent notation.
func (d NegativeDecimal) String() string { return d.value.String() }

// Validate checks the invariant.
func (d NegativeDecimal) Validate() error { return negativeDecimal.check(d.value) }

// MarshalJSON implements json.Marshaler.
func (d NegativeDecimal) MarshalJSON() ([]byte, error) { return marshalDecimal(d.value) }

// MarshalText implements encoding.TextMarshaler.
func (d NegativeDecimal) MarshalText() ([]byte, error) { return []byte(d.value.String()), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (d *NegativeDecimal) UnmarshalJSON(data []byte) error {
	v, err := negativeDecimal.decode(data)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (NegativeDecimal) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return negativeDecimal.schema()
}

// StrictlyPositiveDecimal is a decimal greater than zero.
type StrictlyPositiveDecimal struct {
	value decimal.Decimal
}

// NewStrictlyPositiveDecimal validates d.
func NewStrictlyPositiveDecimal(d decimal.Decimal) (StrictlyPositiveDecimal, error) {
	if err := strictlyPositiveDecimal.check(d); err != nil {
		return StrictlyPositiveDecimal{}, err
	}
	return StrictlyPositiveDecimal{value: d}, nil
}

// ParseStrictlyPositiveDecimal parses and validates s.
func ParseStrictlyPositiveDecimal(s string) (StrictlyPositiveDecimal, error) {
	d, err := strictlyPositiveDecimal.parse(s)
	if err != nil {
		return StrictlyPositiveDecimal{}, err
	}
	return StrictlyPositiveDecimal{value: d}, nil
}

// MustStrictlyPositiveDecimal is ParseStrictlyPositiveDecimal for constants; it panics on invalid input.
func MustStrictlyPositiveDecimal(s string) StrictlyPositiveDecimal {
	d, err := ParseStrictlyPositiveDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Decimal returns the underlying value.
func (d StrictlyPositiveDecimal) Decimal() decimal.Decimal { return d.value }

// String renders the value without exponent notation.
func (d StrictlyPositiveDecimal) String() string { return d.value.String() }

// Equal compares numerically.
func (d StrictlyPositiveDecimal) Equal(o StrictlyPositiveDecimal) bool { return d.value.Equal(o.value) }

// Validate checks the invariant. The zero value is invalid.
func (d StrictlyPositiveDecimal) Validate() error { return strictlyPositiveDecimal.check(d.value) }

// MarshalJSON implements json.Marshaler.
func (d StrictlyPositiveDecimal) MarshalJSON() ([]byte, error) { return marshalDecimal(d.value) }

// MarshalText implements encoding.TextMarshaler.
func (d StrictlyPositiveDecimal) MarshalText() ([]byte, error) {
	return []byte(d.value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *StrictlyPositiveDecimal) UnmarshalJSON(data []byte) error {
	v, err := strictlyPositiveDecimal.decode(data)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (StrictlyPositiveDecimal) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return strictlyPositiveDecimal.schema()
}
