package ileap

import (
	"encoding/json"
	"slices"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
	"github.com/rshade/ileap/pkg/pact"
)

// DistanceBasis names how a GLEC distance was determined. It doubles as the
// JSON key the distance is encoded under.
type DistanceBasis string

// Distance bases.
const (
	// DistanceActual is the distance actually travelled.
	DistanceActual DistanceBasis = "actual"
	// DistanceGCD is the great circle distance.
	DistanceGCD DistanceBasis = "gcd"
	// DistanceSFD is the shortest feasible distance.
	DistanceSFD DistanceBasis = "sfd"
)

// Values lists every basis.
func (DistanceBasis) Values() []DistanceBasis {
	return []DistanceBasis{DistanceActual, DistanceGCD, DistanceSFD}
}

// GlecDistance is a leg distance together with the basis it was measured
// on. Exactly one basis is authoritative per record.
type GlecDistance struct {
	Basis DistanceBasis
	Value pact.Decimal
}

// NewActualDistance builds an actual distance.
func NewActualDistance(d pact.Decimal) GlecDistance {
	return GlecDistance{Basis: DistanceActual, Value: d}
}

// NewGCDDistance builds a great circle distance.
func NewGCDDistance(d pact.Decimal) GlecDistance {
	return GlecDistance{Basis: DistanceGCD, Value: d}
}

// NewSFDDistance builds a shortest feasible distance.
func NewSFDDistance(d pact.Decimal) GlecDistance {
	return GlecDistance{Basis: DistanceSFD, Value: d}
}

// Distance returns the value regardless of the basis.
func (g GlecDistance) Distance() pact.Decimal { return g.Value }

// Validate checks the basis.
func (g GlecDistance) Validate() error {
	if !slices.Contains(g.Basis.Values(), g.Basis) {
		return pact.NewValidationError("GlecDistance", "unknown distance basis %q", string(g.Basis))
	}
	return nil
}

// MarshalJSON encodes the distance as a single-member object such as
// {"actual":"423"}.
func (g GlecDistance) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(map[DistanceBasis]pact.Decimal{g.Basis: g.Value})
}

// UnmarshalJSON reads the authoritative basis, the first non-null member in
// the order actual, gcd, sfd. Further bases are checked to be decimals and
// then dropped. Null members count as absent and unknown members are
// ignored.
func (g *GlecDistance) UnmarshalJSON(data []byte) error {
	members, err := wire.Members(data)
	if err != nil {
		return &pact.ValidationError{Field: "GlecDistance", Reason: err.Error(), Err: err}
	}
	var decoded *GlecDistance
	for _, basis := range g.Basis.Values() {
		raw, ok := members[string(basis)]
		if !ok || wire.IsNull(raw) {
			continue
		}
		var value pact.Decimal
		if err := json.Unmarshal(raw, &value); err != nil {
			return pact.Within(string(basis), err)
		}
		if decoded == nil {
			decoded = &GlecDistance{Basis: basis, Value: value}
		}
	}
	if decoded == nil {
		return pact.NewValidationError("GlecDistance", "one of actual, gcd, sfd must be set")
	}
	*g = *decoded
	return nil
}

// JSONSchema implements jsonschema.Schemer. Each basis is a decimal or null
// and at least one of them must be a decimal.
func (GlecDistance) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	value := r.Reflect(pact.Decimal{})
	s := &jsonschema.Schema{
		Type:       jsonschema.TypeList{jsonschema.TypeObject},
		Properties: map[string]*jsonschema.Schema{},
	}
	for _, basis := range DistanceBasis("").Values() {
		s.Properties[string(basis)] = &jsonschema.Schema{
			AnyOf: []*jsonschema.Schema{value, {Type: jsonschema.TypeList{jsonschema.TypeNull}}},
		}
		set := &jsonschema.Schema{Properties: map[string]*jsonschema.Schema{string(basis): value}}
		set.Require(string(basis))
		s.AnyOf = append(s.AnyOf, set)
	}
	return s
}
