// Package greenops turns footprint emissions (kg CO2e) into relatable
// equivalencies such as miles driven or smartphones charged, using EPA
// conversion factors.
package greenops

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EquivalencyType is a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged
)

func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an emission amount with its unit.
type CarbonInput struct {
	Value decimal.Decimal `json:"value"`

	// Unit is one of g, kg, t, lb, optionally suffixed with CO2e.
	Unit string `json:"unit"`
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          decimal.Decimal `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds the equivalencies of one input.
type EquivalencyOutput struct {
	// InputKg is the input normalized to kg CO2e.
	InputKg decimal.Decimal `json:"input_kg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	DisplayText string `json:"display_text"`

	// CompactText is the short form, e.g. "(≈ 781 mi, 18,248 phones)".
	CompactText string `json:"compact_text"`

	// IsEmpty is set when the input is below MinEquivalencyThresholdKg
	// or could not be converted.
	IsEmpty bool `json:"is_empty"`
}
