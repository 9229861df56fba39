package pact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeographicScopeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		scope GeographicScope
		wire  string
	}{
		{name: "global", scope: GlobalScope{}, wire: `{}`},
		{name: "regional", scope: RegionalScope{Region: RegionWesternEurope}, wire: `{"geographyRegionOrSubregion":"Western Europe"}`},
		{name: "country", scope: CountryScope{Country: "US"}, wire: `{"geographyCountry":"US"}`},
		{name: "subdivision", scope: SubdivisionScope{Subdivision: "DE-BE"}, wire: `{"geographyCountrySubdivision":"DE-BE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := MarshalGeographicScope(tt.scope)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(out))

			back, err := UnmarshalGeographicScope(out)
			require.NoError(t, err)
			assert.Equal(t, tt.scope, back)
		})
	}
}

func TestUnmarshalGeographicScope_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "two keys", input: `{"geographyCountry":"US","geographyRegionOrSubregion":"Europe"}`},
		{name: "three keys", input: `{"geographyCountry":"US","geographyRegionOrSubregion":"Europe","geographyCountrySubdivision":"x"}`},
		{name: "lowercase country", input: `{"geographyCountry":"us"}`},
		{name: "unknown region", input: `{"geographyRegionOrSubregion":"Atlantis"}`},
		{name: "empty subdivision", input: `{"geographyCountrySubdivision":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalGeographicScope([]byte(tt.input))
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUnmarshalGeographicScope_IgnoresOtherMembers(t *testing.T) {
	scope, err := UnmarshalGeographicScope([]byte(`{"declaredUnit":"kilogram","geographyCountry":"DE"}`))
	require.NoError(t, err)
	assert.Equal(t, CountryScope{Country: "DE"}, scope)
}

func TestMarshalGeographicScope_Nil(t *testing.T) {
	out, err := MarshalGeographicScope(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}
