package ileap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/pkg/pact"
)

func TestCodeLengths(t *testing.T) {
	tests := []struct {
		name    string
		build   func(string) error
		input   string
		wantErr bool
	}{
		{name: "iata empty", build: buildIata, input: ""},
		{name: "iata three", build: buildIata, input: "FRA"},
		{name: "iata four", build: buildIata, input: "FRAX", wantErr: true},
		{name: "locode four", build: buildLocode, input: "ABCD", wantErr: true},
		{name: "locode five", build: buildLocode, input: "ABCDE"},
		{name: "locode six", build: buildLocode, input: "ABCDEF", wantErr: true},
		{name: "uic two", build: buildUic, input: "80"},
		{name: "uic one", build: buildUic, input: "8", wantErr: true},
		{name: "uic three", build: buildUic, input: "801", wantErr: true},
		{name: "locode counts characters", build: buildLocode, input: "ÄBCDÉ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, pact.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func buildIata(s string) error { _, err := NewIataCode(s); return err }

func buildLocode(s string) error { _, err := NewLocode(s); return err }

func buildUic(s string) error { _, err := NewUicCode(s); return err }

func TestCodeDecode(t *testing.T) {
	var l Locode
	require.NoError(t, json.Unmarshal([]byte(`"DEHAM"`), &l))
	assert.Equal(t, Locode("DEHAM"), l)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"HAM"`), &l), pact.ErrValidation)
	assert.ErrorIs(t, json.Unmarshal([]byte(`12345`), &l), pact.ErrValidation)
}

func TestGlecDataQualityIndex(t *testing.T) {
	tests := []struct {
		input   string
		want    GlecDataQualityIndex
		wantErr bool
	}{
		{input: `0`, want: 0},
		{input: `4`, want: 4},
		{input: `5`, wantErr: true},
		{input: `-1`, wantErr: true},
		{input: `"2"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var g GlecDataQualityIndex
			err := json.Unmarshal([]byte(tt.input), &g)
			if tt.wantErr {
				assert.ErrorIs(t, err, pact.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
		})
	}

	_, err := NewGlecDataQualityIndex(7)
	assert.ErrorIs(t, err, pact.ErrValidation)
}
