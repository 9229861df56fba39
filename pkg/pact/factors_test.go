package pact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCharacterizationFactors(t *testing.T) {
	tests := []struct {
		name        string
		input       []CharacterizationFactors
		wantFactor  CharacterizationFactors
		wantSources IpccCharacterizationFactorsSources
	}{
		{name: "nil", input: nil, wantFactor: AR5, wantSources: IpccCharacterizationFactorsSources{"AR5"}},
		{name: "empty", input: []CharacterizationFactors{}, wantFactor: AR5, wantSources: IpccCharacterizationFactorsSources{"AR5"}},
		{name: "AR6 only", input: []CharacterizationFactors{AR6}, wantFactor: AR6, wantSources: IpccCharacterizationFactorsSources{"AR6"}},
		{name: "AR5 and AR6", input: []CharacterizationFactors{AR5, AR6}, wantFactor: AR5, wantSources: IpccCharacterizationFactorsSources{"AR5", "AR6"}},
		{name: "AR6 then AR5", input: []CharacterizationFactors{AR6, AR5}, wantFactor: AR5, wantSources: IpccCharacterizationFactorsSources{"AR6", "AR5"}},
		{name: "duplicates", input: []CharacterizationFactors{AR6, AR6}, wantFactor: AR6, wantSources: IpccCharacterizationFactorsSources{"AR6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, sources, err := ResolveCharacterizationFactors(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFactor, factor)
			assert.Equal(t, tt.wantSources, sources)
			assert.NoError(t, sources.Validate())
		})
	}
}

func TestResolveCharacterizationFactors_Unknown(t *testing.T) {
	_, _, err := ResolveCharacterizationFactors([]CharacterizationFactors{"AR7"})
	assert.ErrorIs(t, err, ErrValidation)
}
