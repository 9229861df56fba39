package pact

import (
	"encoding/json"
	"reflect"

	"github.com/rshade/ileap/pkg/jsonschema"
)

// NonEmptyVec is an ordered sequence with at least one element.
type NonEmptyVec[T any] []T

// NewNonEmptyVec validates that items is not empty.
func NewNonEmptyVec[T any](items ...T) (NonEmptyVec[T], error) {
	if len(items) == 0 {
		return nil, NewValidationError("NonEmptyVec", "must contain at least one element")
	}
	return NonEmptyVec[T](items), nil
}

// MustNonEmptyVec is NewNonEmptyVec for literals; it panics on an empty list.
func MustNonEmptyVec[T any](items ...T) NonEmptyVec[T] {
	v, err := NewNonEmptyVec(items...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the length.
func (v NonEmptyVec[T]) Validate() error {
	if len(v) == 0 {
		return NewValidationError("NonEmptyVec", "must contain at least one element")
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *NonEmptyVec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	parsed, err := NewNonEmptyVec(items...)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (NonEmptyVec[T]) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     jsonschema.TypeList{jsonschema.TypeArray},
		Items:    r.ReflectType(reflect.TypeFor[T]()),
		MinItems: jsonschema.Ptr(1),
	}
}

// checkSet enforces the set rules shared by the URN, id and rule sets.
func checkSet[T comparable](field string, items []T, minItems int) error {
	if len(items) < minItems {
		return NewValidationError(field, "must contain at least %d element(s)", minItems)
	}
	seen := make(map[T]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			return NewValidationError(field, "duplicate element %v", it)
		}
		seen[it] = struct{}{}
	}
	return nil
}

// dedupe drops repeated elements, keeping first occurrences in order.
func dedupe[T comparable](items []T) []T {
	out := make([]T, 0, len(items))
	seen := make(map[T]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func decodeSet[T comparable](data []byte, field string, minItems int) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if err := checkSet(field, items, minItems); err != nil {
		return nil, err
	}
	return items, nil
}

func setSchema[T any](r *jsonschema.Reflector, minItems int) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        jsonschema.TypeList{jsonschema.TypeArray},
		Items:       r.ReflectType(reflect.TypeFor[T]()),
		UniqueItems: true,
	}
	if minItems > 0 {
		s.MinItems = jsonschema.Ptr(minItems)
	}
	return s
}

// CompanyIDSet is the non-empty set of URNs identifying a company.
type CompanyIDSet []Urn

// NewCompanyIDSet validates every URN and drops duplicates.
func NewCompanyIDSet(urns ...Urn) (CompanyIDSet, error) {
	for _, u := range urns {
		if err := u.Validate(); err != nil {
			return nil, Within("companyIds", err)
		}
	}
	set := CompanyIDSet(dedupe(urns))
	return set, set.Validate()
}

// Validate checks the set rules.
func (s CompanyIDSet) Validate() error { return checkSet("CompanyIdSet", s, 1) }

// UnmarshalJSON rejects duplicates instead of silently dropping them.
func (s *CompanyIDSet) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[Urn](data, "CompanyIdSet", 1)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// JSONSchemaName implements jsonschema.Namer.
func (CompanyIDSet) JSONSchemaName() string { return "CompanyIdSet" }

// JSONSchema implements jsonschema.Schemer.
func (CompanyIDSet) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[Urn](r, 1)
}

// ProductIDSet is the non-empty set of URNs identifying a product.
type ProductIDSet []Urn

// NewProductIDSet validates every URN and drops duplicates.
func NewProductIDSet(urns ...Urn) (ProductIDSet, error) {
	for _, u := range urns {
		if err := u.Validate(); err != nil {
			return nil, Within("productIds", err)
		}
	}
	set := ProductIDSet(dedupe(urns))
	return set, set.Validate()
}

// Validate checks the set rules.
func (s ProductIDSet) Validate() error { return checkSet("ProductIdSet", s, 1) }

// UnmarshalJSON rejects duplicates instead of silently dropping them.
func (s *ProductIDSet) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[Urn](data, "ProductIdSet", 1)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// JSONSchemaName implements jsonschema.Namer.
func (ProductIDSet) JSONSchemaName() string { return "ProductIdSet" }

// JSONSchema implements jsonschema.Schemer.
func (ProductIDSet) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[Urn](r, 1)
}

// NonEmptyPfIDVec lists the footprints a revision supersedes.
type NonEmptyPfIDVec []PfID

// Validate checks the set rules.
func (v NonEmptyPfIDVec) Validate() error { return checkSet("NonEmptyPfIdVec", v, 1) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *NonEmptyPfIDVec) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[PfID](data, "NonEmptyPfIdVec", 1)
	if err != nil {
		return err
	}
	*v = items
	return nil
}

// JSONSchemaName implements jsonschema.Namer.
func (NonEmptyPfIDVec) JSONSchemaName() string { return "NonEmptyPfIdVec" }

// JSONSchema implements jsonschema.Schemer.
func (NonEmptyPfIDVec) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[PfID](r, 1)
}

// NonEmptyStringVec is a non-empty set of non-empty strings.
type NonEmptyStringVec []NonEmptyString

// Validate checks the set rules and each element.
func (v NonEmptyStringVec) Validate() error {
	for _, s := range v {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return checkSet("NonEmptyStringVec", v, 1)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *NonEmptyStringVec) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[NonEmptyString](data, "NonEmptyStringVec", 1)
	if err != nil {
		return err
	}
	*v = items
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (NonEmptyStringVec) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[NonEmptyString](r, 1)
}

// EmissionFactorDSSet lists secondary emission factor databases.
type EmissionFactorDSSet []EmissionFactorDS

// Validate checks the set rules and each element.
func (s EmissionFactorDSSet) Validate() error {
	for _, ds := range s {
		if err := ds.Validate(); err != nil {
			return err
		}
	}
	return checkSet("EmissionFactorDSSet", s, 1)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *EmissionFactorDSSet) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[EmissionFactorDS](data, "EmissionFactorDSSet", 1)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (EmissionFactorDSSet) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[EmissionFactorDS](r, 1)
}

// IpccCharacterizationFactorsSources lists the assessment reports used.
type IpccCharacterizationFactorsSources []IpccCharacterizationFactorsSource

// Validate checks the set rules and each element.
func (s IpccCharacterizationFactorsSources) Validate() error {
	for _, src := range s {
		if err := src.Validate(); err != nil {
			return err
		}
	}
	return checkSet("IpccCharacterizationFactorsSources", s, 1)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *IpccCharacterizationFactorsSources) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[IpccCharacterizationFactorsSource](data, "IpccCharacterizationFactorsSources", 1)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (IpccCharacterizationFactorsSources) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[IpccCharacterizationFactorsSource](r, 1)
}

// CrossSectoralStandardSet lists the standards a footprint was computed with.
type CrossSectoralStandardSet []CrossSectoralStandard

// Validate checks the set rules.
func (s CrossSectoralStandardSet) Validate() error {
	return checkSet("CrossSectoralStandardSet", s, 0)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CrossSectoralStandardSet) UnmarshalJSON(data []byte) error {
	items, err := decodeSet[CrossSectoralStandard](data, "CrossSectoralStandardSet", 0)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (CrossSectoralStandardSet) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[CrossSectoralStandard](r, 0)
}

// ProductOrSectorSpecificRuleSet lists the rules a footprint follows.
type ProductOrSectorSpecificRuleSet []ProductOrSectorSpecificRule

// Validate checks each rule.
func (s ProductOrSectorSpecificRuleSet) Validate() error {
	for i, rule := range s {
		if err := rule.Validate(); err != nil {
			return Within(indexField("productOrSectorSpecificRules", i), err)
		}
	}
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (ProductOrSectorSpecificRuleSet) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return setSchema[ProductOrSectorSpecificRule](r, 0)
}
