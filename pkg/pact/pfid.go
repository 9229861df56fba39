package pact

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
)

const pfIDVersion = 4

// PfID identifies a ProductFootprint. Values parsed from external input are
// always version 4 UUIDs.
type PfID struct {
	id uuid.UUID
}

// NewPfID returns a fresh random identifier.
func NewPfID() (PfID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return PfID{}, fmt.Errorf("generating footprint id: %w", err)
	}
	return PfID{id: id}, nil
}

// PfIDFromUUID wraps id, rejecting any version other than 4.
func PfIDFromUUID(id uuid.UUID) (PfID, error) {
	if id.Version() != pfIDVersion {
		return PfID{}, &ValidationError{
			Field:  "PfId",
			Reason: fmt.Sprintf("%s is a version %d UUID", id, id.Version()),
			Err:    ErrPfIDNotV4,
		}
	}
	return PfID{id: id}, nil
}

// ParsePfID parses a footprint id from a path segment or query parameter.
// Syntax errors wrap ErrMalformedPfID; well-formed UUIDs of another version
// wrap ErrPfIDNotV4.
func ParsePfID(s string) (PfID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PfID{}, &ValidationError{
			Field:  "PfId",
			Reason: fmt.Sprintf("%q: %v", s, err),
			Err:    ErrMalformedPfID,
		}
	}
	return PfIDFromUUID(id)
}

// MustPfID is ParsePfID for constants; it panics on invalid input.
func MustPfID(s string) PfID {
	id, err := ParsePfID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUID returns the underlying UUID.
func (p PfID) UUID() uuid.UUID { return p.id }

// IsZero reports whether p is the nil UUID.
func (p PfID) IsZero() bool { return p.id == uuid.Nil }

// String returns the canonical hyphenated form.
func (p PfID) String() string { return p.id.String() }

// Validate checks the version.
func (p PfID) Validate() error {
	_, err := PfIDFromUUID(p.id)
	return err
}

// MarshalJSON implements json.Marshaler.
func (p PfID) MarshalJSON() ([]byte, error) { return json.Marshal(p.id.String()) }

// MarshalText implements encoding.TextMarshaler.
func (p PfID) MarshalText() ([]byte, error) { return []byte(p.id.String()), nil }

// UnmarshalJSON implements json.Unmarshaler.
func (p *PfID) UnmarshalJSON(data []byte) error {
	s, err := wire.String(data)
	if err != nil {
		return &ValidationError{Field: "PfId", Reason: err.Error(), Err: ErrMalformedPfID}
	}
	parsed, err := ParsePfID(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// JSONSchemaName implements jsonschema.Namer.
func (PfID) JSONSchemaName() string { return "PfId" }

// JSONSchema implements jsonschema.Schemer.
func (PfID) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{Type: jsonschema.TypeList{jsonschema.TypeString}, Format: "uuid"}
}
