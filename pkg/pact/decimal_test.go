package pact

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/internal/wire"
)

func TestParseDecimals(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) error
		input   string
		wantErr bool
	}{
		{name: "decimal negative", parse: parseAny, input: "-12.5"},
		{name: "decimal exponent", parse: parseAny, input: "1e5", wantErr: true},
		{name: "decimal trailing dot", parse: parseAny, input: "1.", wantErr: true},
		{name: "positive zero", parse: parsePositive, input: "0"},
		{name: "positive fraction", parse: parsePositive, input: "118.44"},
		{name: "positive negative", parse: parsePositive, input: "-1", wantErr: true},
		{name: "negative zero", parse: parseNegative, input: "0"},
		{name: "negative value", parse: parseNegative, input: "-0.5"},
		{name: "negative positive", parse: parseNegative, input: "1", wantErr: true},
		{name: "strict small", parse: parseStrict, input: "0.001"},
		{name: "strict zero", parse: parseStrict, input: "0", wantErr: true},
		{name: "strict zero fraction", parse: parseStrict, input: "0.0", wantErr: true},
		{name: "strict negative", parse: parseStrict, input: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func parseAny(s string) error { _, err := ParseDecimal(s); return err }

func parsePositive(s string) error { _, err := ParsePositiveDecimal(s); return err }

func parseNegative(s string) error { _, err := ParseNegativeDecimal(s); return err }

func parseStrict(s string) error { _, err := ParseStrictlyPositiveDecimal(s); return err }

func TestDecimalJSON(t *testing.T) {
	t.Run("encodes as string", func(t *testing.T) {
		out, err := json.Marshal(struct {
			A PositiveDecimal `json:"a"`
			B Decimal         `json:"b"`
		}{A: MustPositiveDecimal("3131.06"), B: MustDecimal("-2")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"3131.06","b":"-2"}`, string(out))
	})

	t.Run("numeric literal rejected", func(t *testing.T) {
		var d PositiveDecimal
		err := json.Unmarshal([]byte(`3131.06`), &d)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, wire.ErrNotString)
	})

	t.Run("sign checked on decode", func(t *testing.T) {
		var d StrictlyPositiveDecimal
		assert.ErrorIs(t, json.Unmarshal([]byte(`"0"`), &d), ErrValidation)
	})

	t.Run("round trip keeps precision", func(t *testing.T) {
		var d Decimal
		require.NoError(t, json.Unmarshal([]byte(`"0.100000000000000000000000001"`), &d))
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"0.100000000000000000000000001"`, string(out))
	})
}

func TestDecimalSumsAreExact(t *testing.T) {
	sum := decimal.NewFromInt(0)
	for _, s := range []string{"118.44", "1320", "1692.62"} {
		sum = sum.Add(MustPositiveDecimal(s).Decimal())
	}
	total, err := NewPositiveDecimal(sum)
	require.NoError(t, err)
	assert.True(t, total.Equal(MustPositiveDecimal("3131.06")))
	assert.Equal(t, "3131.06", total.String())
}

func TestStrictlyPositiveZeroValue(t *testing.T) {
	var d StrictlyPositiveDecimal
	assert.ErrorIs(t, d.Validate(), ErrValidation)
}

func TestDecimalSchemaPatterns(t *testing.T) {
	tests := []struct {
		name   string
		schema func() string
		match  []string
		reject []string
	}{
		{
			name:   "negative",
			schema: func() string { return NegativeDecimal{}.JSONSchema(nil).Pattern },
			match:  []string{"0", "-1", "-0.25"},
			reject: []string{"10", "1", "0.5", "-", "00"},
		},
		{
			name:   "positive",
			schema: func() string { return PositiveDecimal{}.JSONSchema(nil).Pattern },
			match:  []string{"0", "10", "2.5"},
			reject: []string{"-1", "1."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.schema())
			for _, s := range tt.match {
				assert.True(t, re.MatchString(s), s)
			}
			for _, s := range tt.reject {
				assert.False(t, re.MatchString(s), s)
			}
		})
	}
}
