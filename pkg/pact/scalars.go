package pact

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
)

// Patterns of the string scalars, shared by validation and schema output.
const (
	urnPattern          = `^([uU][rR][nN]):`
	iso3166Pattern      = `^[A-Z]{2}$`
	specVersionPattern  = `^\d+\.\d+\.\d+(-\d{8})?$`
	ipccSourcePattern   = `^AR\d+$`
	minSpecVersionChars = 5
)

//nolint:gochecknoglobals // compiled once, read-only.
var (
	urnRe         = regexp.MustCompile(urnPattern)
	iso3166Re     = regexp.MustCompile(iso3166Pattern)
	specVersionRe = regexp.MustCompile(specVersionPattern)
	ipccSourceRe  = regexp.MustCompile(ipccSourcePattern)
)

// decodeString reads a JSON string token and validates it with parse.
func decodeString[T any](data []byte, field string, parse func(string) (T, error)) (T, error) {
	var zero T
	s, err := wire.String(data)
	if err != nil {
		return zero, &ValidationError{Field: field, Reason: err.Error(), Err: err}
	}
	return parse(s)
}

// NonEmptyString is a string of at least one character.
type NonEmptyString string

// NewNonEmptyString validates s.
func NewNonEmptyString(s string) (NonEmptyString, error) {
	if s == "" {
		return "", NewValidationError("NonEmptyString", "must not be empty")
	}
	return NonEmptyString(s), nil
}

// MustNonEmptyString is NewNonEmptyString for constants; it panics on invalid input.
func MustNonEmptyString(s string) NonEmptyString {
	v, err := NewNonEmptyString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the underlying string.
func (s NonEmptyString) String() string { return string(s) }

// Validate checks the invariant.
func (s NonEmptyString) Validate() error {
	_, err := NewNonEmptyString(string(s))
	return err
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *NonEmptyString) UnmarshalJSON(data []byte) error {
	v, err := decodeString(data, "NonEmptyString", NewNonEmptyString)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (NonEmptyString) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{Type: jsonschema.TypeList{jsonschema.TypeString}, MinLength: jsonschema.Ptr(1)}
}

// Urn is a uniform resource name; only the "urn:" scheme prefix is checked.
type Urn string

// NewUrn validates s.
func NewUrn(s string) (Urn, error) {
	if !urnRe.MatchString(s) {
		return "", NewValidationError("Urn", "%q does not start with urn:", s)
	}
	return Urn(s), nil
}

// MustUrn is NewUrn for constants; it panics on invalid input.
func MustUrn(s string) Urn {
	v, err := NewUrn(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the URN text.
func (u Urn) String() string { return string(u) }

// Validate checks the invariant.
func (u Urn) Validate() error {
	_, err := NewUrn(string(u))
	return err
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Urn) UnmarshalJSON(data []byte) error {
	v, err := decodeString(data, "Urn", NewUrn)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// JSONSchemaName names the definition after the PACT schema.
func (Urn) JSONSchemaName() string { return "GenericURN" }

// JSONSchema implements jsonschema.Schemer.
func (Urn) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.String(urnPattern)
}

// ISO3166CC is an ISO 3166-1 alpha-2 country code.
type ISO3166CC string

// NewISO3166CC validates s. Lowercase codes are rejected, not folded.
func NewISO3166CC(s string) (ISO3166CC, error) {
	if !iso3166Re.MatchString(s) {
		return "", NewValidationError("ISO3166CC", "%q is not two uppercase letters", s)
	}
	return ISO3166CC(s), nil
}

// MustISO3166CC is NewISO3166CC for constants; it panics on invalid input.
func MustISO3166CC(s string) ISO3166CC {
	v, err := NewISO3166CC(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the country code.
func (c ISO3166CC) String() string { return string(c) }

// Validate checks the invariant.
func (c ISO3166CC) Validate() error {
	_, err := NewISO3166CC(string(c))
	return err
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ISO3166CC) UnmarshalJSON(data []byte) error {
	v, err := decodeString(data, "ISO3166CC", NewISO3166CC)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (ISO3166CC) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.String(iso3166Pattern)
}

// SpecVersionString is a MAJOR.MINOR.PATCH version with an optional
// eight digit date suffix, e.g. "2.2.0" or "2.2.0-20240115".
type SpecVersionString string

// NewSpecVersionString validates s.
func NewSpecVersionString(s string) (SpecVersionString, error) {
	if len(s) < minSpecVersionChars || !specVersionRe.MatchString(s) {
		return "", NewValidationError("VersionString", "%q is not a MAJOR.MINOR.PATCH version", s)
	}
	return SpecVersionString(s), nil
}

// MustSpecVersionString is NewSpecVersionString for constants; it panics on invalid input.
func MustSpecVersionString(s string) SpecVersionString {
	v, err := NewSpecVersionString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version text.
func (v SpecVersionString) String() string { return string(v) }

// Validate checks the invariant.
func (v SpecVersionString) Validate() error {
	_, err := NewSpecVersionString(string(v))
	return err
}

// Version parses the string as a semantic version. The date suffix becomes
// the prerelease component verbatim, so suffixes with a leading zero such
// as "-01012024" are accepted even though strict semver would refuse them.
func (v SpecVersionString) Version() (*semver.Version, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	core, suffix, _ := strings.Cut(string(v), "-")
	parts := strings.Split(core, ".")
	nums := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, NewValidationError("VersionString", "%q: %v", string(v), err)
		}
		nums[i] = n
	}
	return semver.New(nums[0], nums[1], nums[2], suffix, ""), nil
}

// Satisfies reports whether the version meets a semver constraint such as
// "^2.0.0". Date suffixes are ignored for the comparison.
func (v SpecVersionString) Satisfies(constraint string) (bool, error) {
	ver, err := v.Version()
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	release, err := ver.SetPrerelease("")
	if err != nil {
		return false, err
	}
	return c.Check(&release), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *SpecVersionString) UnmarshalJSON(data []byte) error {
	s, err := decodeString(data, "VersionString", NewSpecVersionString)
	if err != nil {
		return err
	}
	*v = s
	return nil
}

// JSONSchemaName names the definition after the PACT schema.
func (SpecVersionString) JSONSchemaName() string { return "VersionString" }

// JSONSchema implements jsonschema.Schemer.
func (SpecVersionString) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	s := jsonschema.String(specVersionPattern)
	s.MinLength = jsonschema.Ptr(minSpecVersionChars)
	return s
}

// IpccCharacterizationFactorsSource names an IPCC assessment report, e.g. "AR6".
type IpccCharacterizationFactorsSource string

// NewIpccCharacterizationFactorsSource validates s.
func NewIpccCharacterizationFactorsSource(s string) (IpccCharacterizationFactorsSource, error) {
	if !ipccSourceRe.MatchString(s) {
		return "", NewValidationError("IpccCharacterizationFactorsSource", "%q does not match AR<n>", s)
	}
	return IpccCharacterizationFactorsSource(s), nil
}

// Validate checks the invariant.
func (s IpccCharacterizationFactorsSource) Validate() error {
	_, err := NewIpccCharacterizationFactorsSource(string(s))
	return err
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *IpccCharacterizationFactorsSource) UnmarshalJSON(data []byte) error {
	v, err := decodeString(data, "IpccCharacterizationFactorsSource", NewIpccCharacterizationFactorsSource)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (IpccCharacterizationFactorsSource) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.String(ipccSourcePattern)
}

// VersionInteger is the footprint version counter, starting at 1.
type VersionInteger int32

// NewVersionInteger validates v.
func NewVersionInteger(v int32) (VersionInteger, error) {
	if v < 1 {
		return 0, NewValidationError("version", "must be at least 1, got %d", v)
	}
	return VersionInteger(v), nil
}

// Validate checks the invariant.
func (v VersionInteger) Validate() error {
	_, err := NewVersionInteger(int32(v))
	return err
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *VersionInteger) UnmarshalJSON(data []byte) error {
	var n int32
	if err := json.Unmarshal(data, &n); err != nil {
		return &ValidationError{Field: "version", Reason: err.Error(), Err: err}
	}
	parsed, err := NewVersionInteger(n)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (VersionInteger) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    jsonschema.TypeList{jsonschema.TypeInteger},
		Minimum: jsonschema.Ptr(1.0),
	}
}

// boundedFloat validates a float against an inclusive range. NaN is
// outside every range.
func boundedFloat(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return NewValidationError(field, "%v is outside [%v, %v]", v, lo, hi)
	}
	return nil
}

func decodeBoundedFloat(data []byte, field string, lo, hi float64) (float64, error) {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, &ValidationError{Field: field, Reason: err.Error(), Err: err}
	}
	return f, boundedFloat(field, f, lo, hi)
}

func boundedSchema(lo, hi float64) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    jsonschema.TypeList{jsonschema.TypeNumber},
		Minimum: jsonschema.Ptr(lo),
		Maximum: jsonschema.Ptr(hi),
	}
}

// Range bounds of the float scalars.
const (
	percentMax           = 100.0
	exemptedPercentMax   = 5.0
	dataQualityRatingMin = 1.0
	dataQualityRatingMax = 3.0
)

// Percent is a percentage between 0 and 100.
type Percent float64

// NewPercent validates v.
func NewPercent(v float64) (Percent, error) {
	if err := boundedFloat("Percent", v, 0, percentMax); err != nil {
		return 0, err
	}
	return Percent(v), nil
}

// Validate checks the invariant.
func (p Percent) Validate() error { return boundedFloat("Percent", float64(p), 0, percentMax) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Percent) UnmarshalJSON(data []byte) error {
	f, err := decodeBoundedFloat(data, "Percent", 0, percentMax)
	if err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (Percent) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return boundedSchema(0, percentMax)
}

// ExemptedEmissionsPercent is the share of emissions excluded from a
// footprint, between 0 and 5 percent.
type ExemptedEmissionsPercent float64

// NewExemptedEmissionsPercent validates v.
func NewExemptedEmissionsPercent(v float64) (ExemptedEmissionsPercent, error) {
	if err := boundedFloat("ExemptedEmissionsPercent", v, 0, exemptedPercentMax); err != nil {
		return 0, err
	}
	return ExemptedEmissionsPercent(v), nil
}

// Validate checks the invariant.
func (p ExemptedEmissionsPercent) Validate() error {
	return boundedFloat("ExemptedEmissionsPercent", float64(p), 0, exemptedPercentMax)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *ExemptedEmissionsPercent) UnmarshalJSON(data []byte) error {
	f, err := decodeBoundedFloat(data, "ExemptedEmissionsPercent", 0, exemptedPercentMax)
	if err != nil {
		return err
	}
	*p = ExemptedEmissionsPercent(f)
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (ExemptedEmissionsPercent) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return boundedSchema(0, exemptedPercentMax)
}

// FloatBetween1And3 is a data quality rating.
type FloatBetween1And3 float64

// NewFloatBetween1And3 validates v.
func NewFloatBetween1And3(v float64) (FloatBetween1And3, error) {
	if err := boundedFloat("FloatBetween1And3", v, dataQualityRatingMin, dataQualityRatingMax); err != nil {
		return 0, err
	}
	return FloatBetween1And3(v), nil
}

// Validate checks the invariant.
func (f FloatBetween1And3) Validate() error {
	return boundedFloat("FloatBetween1And3", float64(f), dataQualityRatingMin, dataQualityRatingMax)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FloatBetween1And3) UnmarshalJSON(data []byte) error {
	v, err := decodeBoundedFloat(data, "FloatBetween1And3", dataQualityRatingMin, dataQualityRatingMax)
	if err != nil {
		return err
	}
	*f = FloatBetween1And3(v)
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (FloatBetween1And3) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return boundedSchema(dataQualityRatingMin, dataQualityRatingMax)
}
