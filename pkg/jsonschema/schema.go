// Package jsonschema models JSON Schema (draft-07) documents and derives them
// from Go types.
//
// Derivation follows encoding/json: property names come from json struct
// tags, members tagged omitempty (or pointer-typed) are optional, and every
// named type becomes an entry under "definitions" referenced with "$ref".
// Types that carry constraints the Go type system cannot express implement
// Schemer to supply their own fragment.
package jsonschema

import (
	"encoding/json"
	"slices"
)

// Draft07 is the meta-schema URI emitted on root documents.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Instance type names.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeNull    = "null"
)

// Schema is a JSON Schema document or fragment.
//
// A Schema with Bool set encodes as the boolean schema true or false and
// ignores every other field.
type Schema struct {
	Version     string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	Type   TypeList `json:"type,omitempty"`
	Format string   `json:"format,omitempty"`
	Enum   []any    `json:"enum,omitempty"`

	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`

	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	Items       *Schema `json:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty"`

	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`

	Definitions map[string]*Schema `json:"definitions,omitempty"`

	Bool *bool `json:"-"`
}

// MarshalJSON encodes boolean schemas as bare booleans.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Bool != nil {
		return json.Marshal(*s.Bool)
	}
	type plain Schema
	return json.Marshal((*plain)(s))
}

// TypeList is the "type" keyword. A single entry encodes as a plain string.
type TypeList []string

// MarshalJSON implements json.Marshaler.
func (t TypeList) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// Schemer is implemented by types that describe their own schema fragment.
type Schemer interface {
	JSONSchema(r *Reflector) *Schema
}

// Namer overrides the definition name of a type. Generic types implement it
// so their instantiations share one definition name.
type Namer interface {
	JSONSchemaName() string
}

// Extender is implemented by struct types that adjust the schema derived
// from their fields, for example to describe members flattened in by a
// custom codec.
type Extender interface {
	ExtendJSONSchema(r *Reflector, s *Schema)
}

// String returns a string schema with an optional pattern.
func String(pattern string) *Schema {
	return &Schema{Type: TypeList{TypeString}, Pattern: pattern}
}

// Enum returns a string schema restricted to values.
func Enum[T ~string](values []T) *Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &Schema{Type: TypeList{TypeString}, Enum: enum}
}

// RefTo returns a "$ref" to a named definition.
func RefTo(name string) *Schema {
	return &Schema{Ref: "#/definitions/" + name}
}

// False returns the schema that rejects every instance.
func False() *Schema {
	f := false
	return &Schema{Bool: &f}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Nullable widens s to also accept null.
func Nullable(s *Schema) *Schema {
	if s.Ref != "" || len(s.Type) == 0 {
		return &Schema{AnyOf: []*Schema{s, {Type: TypeList{TypeNull}}}}
	}
	out := *s
	if !slices.Contains(out.Type, TypeNull) {
		out.Type = append(slices.Clone(out.Type), TypeNull)
	}
	return &out
}

// Require appends names to the required list, skipping duplicates.
func (s *Schema) Require(names ...string) {
	for _, n := range names {
		if !slices.Contains(s.Required, n) {
			s.Required = append(s.Required, n)
		}
	}
}
