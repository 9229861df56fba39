package pact

import (
	"encoding/json"

	"github.com/rshade/ileap/pkg/jsonschema"
)

// Wire keys of the flattened geographic scope.
const (
	keyGeographyRegion      = "geographyRegionOrSubregion"
	keyGeographyCountry     = "geographyCountry"
	keyGeographySubdivision = "geographyCountrySubdivision"
)

// GeographicScope is the area a footprint applies to. It is one of
// GlobalScope, RegionalScope, CountryScope or SubdivisionScope.
//
// On the wire the scope has no object of its own: its single key sits next
// to the other members of the enclosing CarbonFootprint, and a global scope
// has no key at all.
type GeographicScope interface {
	Validate() error
	geographicScope()
}

// GlobalScope applies everywhere.
type GlobalScope struct{}

// RegionalScope applies to a UN region or subregion.
type RegionalScope struct {
	Region UNRegionOrSubregion
}

// CountryScope applies to one country.
type CountryScope struct {
	Country ISO3166CC
}

// SubdivisionScope applies to a country subdivision such as a state.
type SubdivisionScope struct {
	Subdivision NonEmptyString
}

func (GlobalScope) geographicScope()      {}
func (RegionalScope) geographicScope()    {}
func (CountryScope) geographicScope()     {}
func (SubdivisionScope) geographicScope() {}

// Validate always succeeds.
func (GlobalScope) Validate() error { return nil }

// Validate checks the region name.
func (s RegionalScope) Validate() error { return Within(keyGeographyRegion, s.Region.Validate()) }

// Validate checks the country code.
func (s CountryScope) Validate() error { return Within(keyGeographyCountry, s.Country.Validate()) }

// Validate checks the subdivision name.
func (s SubdivisionScope) Validate() error {
	return Within(keyGeographySubdivision, s.Subdivision.Validate())
}

// geographyMembers is the flattened form. Embedding it next to other fields
// puts the keys at the enclosing object's level.
type geographyMembers struct {
	Region      *UNRegionOrSubregion `json:"geographyRegionOrSubregion,omitempty"`
	Country     *ISO3166CC           `json:"geographyCountry,omitempty"`
	Subdivision *NonEmptyString      `json:"geographyCountrySubdivision,omitempty"`
}

func flattenScope(g GeographicScope) geographyMembers {
	switch s := g.(type) {
	case RegionalScope:
		return geographyMembers{Region: &s.Region}
	case CountryScope:
		return geographyMembers{Country: &s.Country}
	case SubdivisionScope:
		return geographyMembers{Subdivision: &s.Subdivision}
	default:
		return geographyMembers{}
	}
}

func (m geographyMembers) scope() (GeographicScope, error) {
	var (
		found []string
		scope GeographicScope = GlobalScope{}
	)
	if m.Region != nil {
		found = append(found, keyGeographyRegion)
		scope = RegionalScope{Region: *m.Region}
	}
	if m.Country != nil {
		found = append(found, keyGeographyCountry)
		scope = CountryScope{Country: *m.Country}
	}
	if m.Subdivision != nil {
		found = append(found, keyGeographySubdivision)
		scope = SubdivisionScope{Subdivision: *m.Subdivision}
	}
	if len(found) > 1 {
		return nil, NewValidationError("geographicScope", "mutually exclusive keys %v are both set", found)
	}
	return scope, nil
}

// MarshalGeographicScope encodes g as a standalone flattened object. A nil
// or global scope encodes as {}.
func MarshalGeographicScope(g GeographicScope) ([]byte, error) {
	return json.Marshal(flattenScope(g))
}

// UnmarshalGeographicScope reads the geographic keys of a JSON object and
// ignores every other member. An object without any of them is global.
func UnmarshalGeographicScope(data []byte) (GeographicScope, error) {
	var m geographyMembers
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	scope, err := m.scope()
	if err != nil {
		return nil, err
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return scope, nil
}

// geographicScopeSchema adds the flattened keys to an object schema and
// allows at most one of them.
func geographicScopeSchema(r *jsonschema.Reflector, s *jsonschema.Schema) {
	keys := map[string]*jsonschema.Schema{
		keyGeographyRegion:      r.Reflect(UNRegionOrSubregion("")),
		keyGeographyCountry:     r.Reflect(ISO3166CC("")),
		keyGeographySubdivision: r.Reflect(NonEmptyString("")),
	}
	for k, v := range keys {
		s.Properties[k] = v
	}

	only := func(allowed string) *jsonschema.Schema {
		alt := &jsonschema.Schema{
			Type:       jsonschema.TypeList{jsonschema.TypeObject},
			Properties: make(map[string]*jsonschema.Schema),
		}
		for k, v := range keys {
			if k == allowed {
				alt.Properties[k] = v
				alt.Require(k)
				continue
			}
			alt.Properties[k] = jsonschema.False()
		}
		return alt
	}
	s.OneOf = []*jsonschema.Schema{
		only(keyGeographyRegion),
		only(keyGeographyCountry),
		only(keyGeographySubdivision),
		only(""),
	}
}
