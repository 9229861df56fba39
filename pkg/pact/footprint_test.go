package pact_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/pact"
)

type testPayload struct {
	Name string `json:"name"`
}

var (
	testCreated = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	testID      = pact.MustPfID("f4b34b3d-3e0c-4e0b-9a46-6a1f5c8f1c55")
)

func validFootprint(t *testing.T) pact.ProductFootprint[testPayload] {
	t.Helper()

	companyIDs, err := pact.NewCompanyIDSet(pact.MustUrn("urn:example:company:acme"))
	require.NoError(t, err)
	productIDs, err := pact.NewProductIDSet(pact.MustUrn("urn:example:product:widget"))
	require.NoError(t, err)

	return pact.ProductFootprint[testPayload]{
		ID:                 testID,
		SpecVersion:        pact.MustSpecVersionString("2.2.0"),
		Version:            1,
		Created:            testCreated,
		Status:             pact.PfStatusActive,
		CompanyName:        pact.MustNonEmptyString("Acme"),
		CompanyIDs:         companyIDs,
		ProductIDs:         productIDs,
		ProductCategoryCpc: pact.MustNonEmptyString("83117"),
		ProductNameCompany: pact.MustNonEmptyString("Widget"),
		PCF: pact.CarbonFootprint{
			DeclaredUnit:                       pact.DeclaredUnitKilogram,
			UnitaryProductAmount:               pact.MustStrictlyPositiveDecimal("1000"),
			PCfExcludingBiogenic:               pact.MustPositiveDecimal("12.5"),
			FossilGhgEmissions:                 pact.MustPositiveDecimal("12.5"),
			FossilCarbonContent:                pact.MustPositiveDecimal("0"),
			BiogenicCarbonContent:              pact.MustPositiveDecimal("0"),
			CharacterizationFactors:            pact.AR6,
			IpccCharacterizationFactorsSources: pact.IpccCharacterizationFactorsSources{"AR6"},
			CrossSectoralStandardsUsed:         pact.CrossSectoralStandardSet{pact.CrossSectoralISO14083},
			ReferencePeriodStart:               testCreated,
			ReferencePeriodEnd:                 testCreated.AddDate(0, 0, 364),
			GeographicScope:                    pact.CountryScope{Country: "DE"},
		},
		Extensions: []pact.DataModelExtension[testPayload]{{
			SpecVersion: pact.MustSpecVersionString("0.2.0"),
			DataSchema:  "https://example.com/payload.json",
			Data:        testPayload{Name: "first"},
		}},
	}
}

// mutate encodes pf, lets edit change the generic JSON tree and re-encodes it.
func mutate(t *testing.T, pf pact.ProductFootprint[testPayload], edit func(m map[string]any)) []byte {
	t.Helper()
	raw, err := json.Marshal(pf)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	edit(m)
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return out
}

func TestProductFootprint_RoundTrip(t *testing.T) {
	pf := validFootprint(t)
	require.NoError(t, pf.Validate())

	first, err := json.Marshal(pf)
	require.NoError(t, err)

	decoded, err := pact.Decode[testPayload](first)
	require.NoError(t, err)

	second, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, pact.CountryScope{Country: "DE"}, decoded.PCF.GeographicScope)
	assert.Equal(t, "first", decoded.Extensions[0].Data.Name)
	assert.True(t, decoded.Created.Equal(testCreated))
}

func TestProductFootprint_WireShape(t *testing.T) {
	pf := validFootprint(t)
	raw, err := json.Marshal(pf)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.NotContains(t, m, "updated")
	assert.NotContains(t, m, "precedingPfIds")
	assert.Equal(t, "2.2.0", m["specVersion"])

	pcf, ok := m["pcf"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DE", pcf["geographyCountry"])
	assert.NotContains(t, pcf, "geographyRegionOrSubregion")
	assert.NotContains(t, pcf, "dqi")
	assert.Equal(t, "1000", pcf["unitaryProductAmount"])

	rules, present := pcf["productOrSectorSpecificRules"]
	assert.True(t, present, "productOrSectorSpecificRules is always present")
	assert.Nil(t, rules)
}

func TestProductFootprint_GlobalScopeEmitsNoKeys(t *testing.T) {
	pf := validFootprint(t)
	pf.PCF.GeographicScope = pact.GlobalScope{}
	raw, err := json.Marshal(pf.PCF)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range []string{"geographyRegionOrSubregion", "geographyCountry", "geographyCountrySubdivision"} {
		assert.NotContains(t, m, k)
	}

	var back pact.CarbonFootprint
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, pact.GlobalScope{}, back.GeographicScope)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(m map[string]any)
		wantErr error
	}{
		{
			name:    "version zero",
			edit:    func(m map[string]any) { m["version"] = 0 },
			wantErr: pact.ErrValidation,
		},
		{
			name:    "non v4 id",
			edit:    func(m map[string]any) { m["id"] = "6ba7b810-9dad-11d1-80b4-00c04fd430c8" },
			wantErr: pact.ErrPfIDNotV4,
		},
		{
			name: "reference period reversed",
			edit: func(m map[string]any) {
				pcf := m["pcf"].(map[string]any)
				pcf["referencePeriodEnd"] = "2023-01-01T00:00:00Z"
			},
			wantErr: pact.ErrValidation,
		},
		{
			name:    "empty extensions",
			edit:    func(m map[string]any) { m["extensions"] = []any{} },
			wantErr: pact.ErrValidation,
		},
		{
			name:    "duplicate company ids",
			edit:    func(m map[string]any) { m["companyIds"] = []any{"urn:a", "urn:a"} },
			wantErr: pact.ErrValidation,
		},
		{
			name:    "empty product ids",
			edit:    func(m map[string]any) { m["productIds"] = []any{} },
			wantErr: pact.ErrValidation,
		},
		{
			name:    "missing pcf",
			edit:    func(m map[string]any) { delete(m, "pcf") },
			wantErr: wire.ErrMissingField,
		},
		{
			name:    "unsupported spec version",
			edit:    func(m map[string]any) { m["specVersion"] = "3.0.0" },
			wantErr: pact.ErrValidation,
		},
		{
			name:    "null comment",
			edit:    func(m map[string]any) { m["comment"] = nil },
			wantErr: wire.ErrMissingField,
		},
		{
			name:    "null product description",
			edit:    func(m map[string]any) { m["productDescription"] = nil },
			wantErr: wire.ErrMissingField,
		},
		{
			name: "numeric decimal",
			edit: func(m map[string]any) {
				pcf := m["pcf"].(map[string]any)
				pcf["pCfExcludingBiogenic"] = 12.5
			},
			wantErr: wire.ErrNotString,
		},
		{
			name: "two geography keys",
			edit: func(m map[string]any) {
				pcf := m["pcf"].(map[string]any)
				pcf["geographyRegionOrSubregion"] = "Europe"
			},
			wantErr: pact.ErrValidation,
		},
		{
			name: "unknown status",
			edit: func(m map[string]any) { m["status"] = "Retired" },
			wantErr: wire.ErrUnknownValue,
		},
		{
			name: "exempted above five percent",
			edit: func(m map[string]any) {
				pcf := m["pcf"].(map[string]any)
				pcf["exemptedEmissionsPercent"] = 7
			},
			wantErr: pact.ErrValidation,
		},
		{
			name: "extension without data",
			edit: func(m map[string]any) {
				ext := m["extensions"].([]any)[0].(map[string]any)
				delete(ext, "data")
			},
			wantErr: wire.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mutate(t, validFootprint(t), tt.edit)
			_, err := pact.Decode[testPayload](raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductFootprint_Revise(t *testing.T) {
	pf := validFootprint(t)
	prev := pact.MustPfID("0d4b7c1e-8f4a-4b7e-9c3d-2a1b0c9d8e7f")
	now := testCreated.Add(48 * time.Hour)

	next := pf.Revise(now, prev, prev)

	assert.Equal(t, pact.VersionInteger(2), next.Version)
	require.NotNil(t, next.Updated)
	assert.True(t, next.Updated.Equal(now))
	assert.True(t, next.Created.Equal(testCreated))
	assert.Equal(t, pact.NonEmptyPfIDVec{prev}, next.PrecedingPfIDs)
	assert.Equal(t, pf.ID, next.ID)
	require.NoError(t, next.Validate())

	// the original is untouched
	assert.Equal(t, pact.VersionInteger(1), pf.Version)
	assert.Nil(t, pf.Updated)
	assert.Nil(t, pf.PrecedingPfIDs)
}

func TestNewCompanyIDSet(t *testing.T) {
	set, err := pact.NewCompanyIDSet(pact.Urn("urn:a"), pact.Urn("urn:b"), pact.Urn("urn:a"))
	require.NoError(t, err)
	assert.Equal(t, pact.CompanyIDSet{"urn:a", "urn:b"}, set)

	_, err = pact.NewCompanyIDSet()
	assert.ErrorIs(t, err, pact.ErrValidation)

	_, err = pact.NewCompanyIDSet(pact.Urn("not-a-urn"))
	assert.ErrorIs(t, err, pact.ErrValidation)
}

func TestProductOrSectorSpecificRule_Validate(t *testing.T) {
	other := pact.MustNonEmptyString("Acme Rules Inc")
	tests := []struct {
		name    string
		rule    pact.ProductOrSectorSpecificRule
		wantErr bool
	}{
		{
			name: "PEF",
			rule: pact.ProductOrSectorSpecificRule{Operator: pact.RuleOperatorPEF, RuleNames: pact.NonEmptyStringVec{"r1"}},
		},
		{
			name:    "Other without name",
			rule:    pact.ProductOrSectorSpecificRule{Operator: pact.RuleOperatorOther, RuleNames: pact.NonEmptyStringVec{"r1"}},
			wantErr: true,
		},
		{
			name: "Other with name",
			rule: pact.ProductOrSectorSpecificRule{
				Operator: pact.RuleOperatorOther, RuleNames: pact.NonEmptyStringVec{"r1"}, OtherOperatorName: &other,
			},
		},
		{
			name:    "no rule names",
			rule:    pact.ProductOrSectorSpecificRule{Operator: pact.RuleOperatorPEF},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, pact.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
