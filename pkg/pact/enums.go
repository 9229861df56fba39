package pact

import (
	"fmt"
	"slices"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
)

// DecodeEnum decodes a JSON string restricted to allowed. Failures are
// ValidationErrors naming typeName.
func DecodeEnum[T ~string](data []byte, typeName string, allowed []T) (T, error) {
	v, err := wire.Enum(data, allowed)
	if err != nil {
		return "", &ValidationError{Field: typeName, Reason: err.Error(), Err: err}
	}
	return v, nil
}

// CheckEnum validates an in-memory enum value.
func CheckEnum[T ~string](v T, typeName string, allowed []T) error {
	if !slices.Contains(allowed, v) {
		return &ValidationError{Field: typeName, Reason: fmt.Sprintf("unknown value %q", string(v)), Err: wire.ErrUnknownValue}
	}
	return nil
}

// PfStatus is the lifecycle status of a footprint.
type PfStatus string

// Footprint statuses.
const (
	PfStatusActive     PfStatus = "Active"
	PfStatusDeprecated PfStatus = "Deprecated"
)

// Values lists every status.
func (PfStatus) Values() []PfStatus { return []PfStatus{PfStatusActive, PfStatusDeprecated} }

// Validate checks membership.
func (s PfStatus) Validate() error { return CheckEnum(s, "PfStatus", s.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *PfStatus) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "PfStatus", s.Values())
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (s PfStatus) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(s.Values())
}

// DeclaredUnit is the unit a footprint's amount is expressed in.
type DeclaredUnit string

// Declared units.
const (
	DeclaredUnitLiter        DeclaredUnit = "liter"
	DeclaredUnitKilogram     DeclaredUnit = "kilogram"
	DeclaredUnitCubicMeter   DeclaredUnit = "cubic meter"
	DeclaredUnitKilowattHour DeclaredUnit = "kilowatt hour"
	DeclaredUnitMegajoule    DeclaredUnit = "megajoule"
	DeclaredUnitTonKilometer DeclaredUnit = "ton kilometer"
	DeclaredUnitSquareMeter  DeclaredUnit = "square meter"
)

// Values lists every unit.
func (DeclaredUnit) Values() []DeclaredUnit {
	return []DeclaredUnit{
		DeclaredUnitLiter, DeclaredUnitKilogram, DeclaredUnitCubicMeter, DeclaredUnitKilowattHour,
		DeclaredUnitMegajoule, DeclaredUnitTonKilometer, DeclaredUnitSquareMeter,
	}
}

// Validate checks membership.
func (u DeclaredUnit) Validate() error { return CheckEnum(u, "DeclaredUnit", u.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (u *DeclaredUnit) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "DeclaredUnit", u.Values())
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (u DeclaredUnit) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(u.Values())
}

// CrossSectoralStandard names an accounting standard.
type CrossSectoralStandard string

// Cross-sectoral standards.
const (
	CrossSectoralGHGPProduct     CrossSectoralStandard = "GHGP Product"
	CrossSectoralISO14067        CrossSectoralStandard = "ISO14067"
	CrossSectoralISO14044        CrossSectoralStandard = "ISO14044"
	CrossSectoralISO14083        CrossSectoralStandard = "ISO14083"
	CrossSectoralISO14040To44    CrossSectoralStandard = "ISO14040-44"
	CrossSectoralPEF             CrossSectoralStandard = "PEF"
	CrossSectoralPACTMethodology CrossSectoralStandard = "PACT Methodology 2.0"
	CrossSectoralPAS2050         CrossSectoralStandard = "PAS2050"
)

// Values lists every standard.
func (CrossSectoralStandard) Values() []CrossSectoralStandard {
	return []CrossSectoralStandard{
		CrossSectoralGHGPProduct, CrossSectoralISO14067, CrossSectoralISO14044, CrossSectoralISO14083,
		CrossSectoralISO14040To44, CrossSectoralPEF, CrossSectoralPACTMethodology, CrossSectoralPAS2050,
	}
}

// Validate checks membership.
func (c CrossSectoralStandard) Validate() error {
	return CheckEnum(c, "CrossSectoralStandard", c.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CrossSectoralStandard) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "CrossSectoralStandard", c.Values())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (c CrossSectoralStandard) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(c.Values())
}

// CharacterizationFactors selects an IPCC assessment report.
type CharacterizationFactors string

// IPCC assessment reports.
const (
	AR5 CharacterizationFactors = "AR5"
	AR6 CharacterizationFactors = "AR6"
)

// Values lists every report.
func (CharacterizationFactors) Values() []CharacterizationFactors {
	return []CharacterizationFactors{AR5, AR6}
}

// Validate checks membership.
func (c CharacterizationFactors) Validate() error {
	return CheckEnum(c, "CharacterizationFactors", c.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CharacterizationFactors) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "CharacterizationFactors", c.Values())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (c CharacterizationFactors) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(c.Values())
}

// BiogenicAccountingMethodology names the method used for biogenic emissions.
type BiogenicAccountingMethodology string

// Biogenic accounting methodologies.
const (
	BiogenicPEF     BiogenicAccountingMethodology = "PEF"
	BiogenicISO     BiogenicAccountingMethodology = "ISO"
	BiogenicGHPG    BiogenicAccountingMethodology = "GHPG"
	BiogenicQuantis BiogenicAccountingMethodology = "Quantis"
)

// Values lists every methodology.
func (BiogenicAccountingMethodology) Values() []BiogenicAccountingMethodology {
	return []BiogenicAccountingMethodology{BiogenicPEF, BiogenicISO, BiogenicGHPG, BiogenicQuantis}
}

// Validate checks membership.
func (b BiogenicAccountingMethodology) Validate() error {
	return CheckEnum(b, "BiogenicAccountingMethodology", b.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BiogenicAccountingMethodology) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "BiogenicAccountingMethodology", b.Values())
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (b BiogenicAccountingMethodology) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(b.Values())
}

// UNRegionOrSubregion is a UN M49 region or subregion name.
type UNRegionOrSubregion string

// UN regions and subregions.
const (
	RegionAfrica                      UNRegionOrSubregion = "Africa"
	RegionAmericas                    UNRegionOrSubregion = "Americas"
	RegionAsia                        UNRegionOrSubregion = "Asia"
	RegionEurope                      UNRegionOrSubregion = "Europe"
	RegionOceania                     UNRegionOrSubregion = "Oceania"
	RegionAustraliaAndNewZealand      UNRegionOrSubregion = "Australia and New Zealand"
	RegionCentralAsia                 UNRegionOrSubregion = "Central Asia"
	RegionEasternAsia                 UNRegionOrSubregion = "Eastern Asia"
	RegionEasternEurope               UNRegionOrSubregion = "Eastern Europe"
	RegionLatinAmericaAndTheCaribbean UNRegionOrSubregion = "Latin America and the Caribbean"
	RegionMelanesia                   UNRegionOrSubregion = "Melanesia"
	RegionMicronesia                  UNRegionOrSubregion = "Micronesia"
	RegionNorthernAfrica              UNRegionOrSubregion = "Northern Africa"
	RegionNorthernAmerica             UNRegionOrSubregion = "Northern America"
	RegionNorthernEurope              UNRegionOrSubregion = "Northern Europe"
	RegionPolynesia                   UNRegionOrSubregion = "Polynesia"
	RegionSouthEasternAsia            UNRegionOrSubregion = "South-eastern Asia"
	RegionSouthernAsia                UNRegionOrSubregion = "Southern Asia"
	RegionSouthernEurope              UNRegionOrSubregion = "Southern Europe"
	RegionSubSaharanAfrica            UNRegionOrSubregion = "Sub-Saharan Africa"
	RegionWesternAsia                 UNRegionOrSubregion = "Western Asia"
	RegionWesternEurope               UNRegionOrSubregion = "Western Europe"
)

// Values lists every region.
func (UNRegionOrSubregion) Values() []UNRegionOrSubregion {
	return []UNRegionOrSubregion{
		RegionAfrica, RegionAmericas, RegionAsia, RegionEurope, RegionOceania,
		RegionAustraliaAndNewZealand, RegionCentralAsia, RegionEasternAsia, RegionEasternEurope,
		RegionLatinAmericaAndTheCaribbean, RegionMelanesia, RegionMicronesia, RegionNorthernAfrica,
		RegionNorthernAmerica, RegionNorthernEurope, RegionPolynesia, RegionSouthEasternAsia,
		RegionSouthernAsia, RegionSouthernEurope, RegionSubSaharanAfrica, RegionWesternAsia,
		RegionWesternEurope,
	}
}

// Validate checks membership.
func (r UNRegionOrSubregion) Validate() error {
	return CheckEnum(r, "UNRegionOrSubregion", r.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UNRegionOrSubregion) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "UNRegionOrSubregion", r.Values())
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (r UNRegionOrSubregion) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(r.Values())
}

// RuleOperator names the operator of a product or sector specific rule.
type RuleOperator string

// Rule operators.
const (
	RuleOperatorPEF              RuleOperator = "PEF"
	RuleOperatorEPDInternational RuleOperator = "EPD International"
	RuleOperatorOther            RuleOperator = "Other"
)

// Values lists every operator.
func (RuleOperator) Values() []RuleOperator {
	return []RuleOperator{RuleOperatorPEF, RuleOperatorEPDInternational, RuleOperatorOther}
}

// Validate checks membership.
func (o RuleOperator) Validate() error { return CheckEnum(o, "ProductOrSectorSpecificRuleOperator", o.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (o *RuleOperator) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "ProductOrSectorSpecificRuleOperator", o.Values())
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// JSONSchemaName implements jsonschema.Namer.
func (RuleOperator) JSONSchemaName() string { return "ProductOrSectorSpecificRuleOperator" }

// JSONSchema implements jsonschema.Schemer.
func (o RuleOperator) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(o.Values())
}

// AssuranceCoverage is the scope of a third-party assurance.
type AssuranceCoverage string

// Assurance coverages.
const (
	CoverageCorporateLevel AssuranceCoverage = "corporate level"
	CoverageProductLine    AssuranceCoverage = "product line"
	CoveragePCFSystem      AssuranceCoverage = "PCF system"
	CoverageProductLevel   AssuranceCoverage = "product level"
)

// Values lists every coverage.
func (AssuranceCoverage) Values() []AssuranceCoverage {
	return []AssuranceCoverage{CoverageCorporateLevel, CoverageProductLine, CoveragePCFSystem, CoverageProductLevel}
}

// Validate checks membership.
func (c AssuranceCoverage) Validate() error { return CheckEnum(c, "AssuranceCoverage", c.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *AssuranceCoverage) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "AssuranceCoverage", c.Values())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (c AssuranceCoverage) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(c.Values())
}

// AssuranceLevel is the depth of a third-party assurance.
type AssuranceLevel string

// Assurance levels.
const (
	AssuranceLimited    AssuranceLevel = "limited"
	AssuranceReasonable AssuranceLevel = "reasonable"
)

// Values lists every level.
func (AssuranceLevel) Values() []AssuranceLevel {
	return []AssuranceLevel{AssuranceLimited, AssuranceReasonable}
}

// Validate checks membership.
func (l AssuranceLevel) Validate() error { return CheckEnum(l, "AssuranceLevel", l.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (l *AssuranceLevel) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "AssuranceLevel", l.Values())
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (l AssuranceLevel) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(l.Values())
}

// AssuranceBoundary is the life-cycle boundary an assurance covers.
type AssuranceBoundary string

// Assurance boundaries.
const (
	BoundaryGateToGate   AssuranceBoundary = "Gate-to-Gate"
	BoundaryCradleToGate AssuranceBoundary = "Cradle-to-Gate"
)

// Values lists every boundary.
func (AssuranceBoundary) Values() []AssuranceBoundary {
	return []AssuranceBoundary{BoundaryGateToGate, BoundaryCradleToGate}
}

// Validate checks membership.
func (b AssuranceBoundary) Validate() error { return CheckEnum(b, "AssuranceBoundary", b.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (b *AssuranceBoundary) UnmarshalJSON(data []byte) error {
	v, err := DecodeEnum(data, "AssuranceBoundary", b.Values())
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// JSONSchema implements jsonschema.Schemer.
func (b AssuranceBoundary) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(b.Values())
}
