package pact

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/internal/wire"
)

func TestNewISO3166CC(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "US"},
		{input: "DE"},
		{input: "us", wantErr: true},
		{input: "USA", wantErr: true},
		{input: "U", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cc, err := NewISO3166CC(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, cc.String())
		})
	}
}

func TestNewUrn(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "urn:pathfinder:company:customcode:buyer-assigned:acme"},
		{input: "URN:example"},
		{input: "uRn:mixed"},
		{input: "https://example.com", wantErr: true},
		{input: "urn", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewUrn(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSpecVersionString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2.2.0"},
		{input: "0.2.0"},
		{input: "2.2.0-20240115"},
		{input: "2.2", wantErr: true},
		{input: "2.2.0-2024", wantErr: true},
		{input: "v2.2.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewSpecVersionString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSpecVersionString_Satisfies(t *testing.T) {
	ok, err := MustSpecVersionString("2.2.0-20240115").Satisfies("^2.0.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = MustSpecVersionString("1.0.0").Satisfies("^2.0.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = MustSpecVersionString("2.2.0").Satisfies("not a constraint")
	assert.Error(t, err)
}

func TestSpecVersionString_Version(t *testing.T) {
	tests := []struct {
		input     string
		wantMajor uint64
		wantPre   string
	}{
		{input: "2.2.0", wantMajor: 2},
		{input: "2.2.0-20240115", wantMajor: 2, wantPre: "20240115"},
		{input: "2.3.1-01012024", wantMajor: 2, wantPre: "01012024"},
		{input: "02.0.0", wantMajor: 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := MustSpecVersionString(tt.input).Version()
			require.NoError(t, err)
			assert.Equal(t, tt.wantMajor, v.Major())
			assert.Equal(t, tt.wantPre, v.Prerelease())
		})
	}

	ok, err := MustSpecVersionString("2.3.1-01012024").Satisfies(SupportedSpecVersions)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = SpecVersionString("2.2").Version()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBoundedFloats(t *testing.T) {
	_, err := NewPercent(100)
	require.NoError(t, err)
	_, err = NewPercent(100.5)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewExemptedEmissionsPercent(5)
	require.NoError(t, err)
	_, err = NewExemptedEmissionsPercent(5.1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewFloatBetween1And3(1)
	require.NoError(t, err)
	_, err = NewFloatBetween1And3(0.9)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPercent(math.NaN())
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewFloatBetween1And3(math.NaN())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScalarJSONDecoding(t *testing.T) {
	t.Run("empty string rejected", func(t *testing.T) {
		var s NonEmptyString
		err := json.Unmarshal([]byte(`""`), &s)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("number where string required", func(t *testing.T) {
		var s NonEmptyString
		err := json.Unmarshal([]byte(`123`), &s)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, wire.ErrNotString)
	})

	t.Run("version zero rejected", func(t *testing.T) {
		var v VersionInteger
		err := json.Unmarshal([]byte(`0`), &v)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("percent out of range", func(t *testing.T) {
		var p Percent
		err := json.Unmarshal([]byte(`120`), &p)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("valid country", func(t *testing.T) {
		var cc ISO3166CC
		require.NoError(t, json.Unmarshal([]byte(`"FR"`), &cc))
		assert.Equal(t, ISO3166CC("FR"), cc)
	})
}

func TestWithin(t *testing.T) {
	err := Within("pcf", Within("fossilGhgEmissions", NewValidationError("PositiveDecimal", "bad")))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "pcf.fossilGhgEmissions", ve.Field)
	assert.Equal(t, "invalid pcf.fossilGhgEmissions: bad", err.Error())

	assert.NoError(t, Within("pcf", nil))

	plain := errors.New("boom")
	assert.ErrorIs(t, Within("pcf", plain), plain)
}
