package greenops

import "github.com/shopspring/decimal"

// EPA greenhouse gas equivalency factors (2024 edition), in kg CO2e per
// unit of activity. An equivalency is kg_CO2e / factor.
//
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//nolint:gochecknoglobals // decimal values cannot be constants.
var (
	// EPAMilesDrivenFactor is kg CO2e per mile of an average passenger vehicle.
	EPAMilesDrivenFactor = decimal.RequireFromString("0.192")

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = decimal.RequireFromString("0.00822")
)

// Unit conversion factors to kilograms.
//
//nolint:gochecknoglobals // decimal values cannot be constants.
var (
	gramsToKg  = decimal.New(1, -3)
	kgToKg     = decimal.NewFromInt(1)
	tonnesToKg = decimal.NewFromInt(1000)
	poundsToKg = decimal.RequireFromString("0.45359237")
)

// Display thresholds, in kg CO2e.
const (
	// MinEquivalencyThresholdKg is the smallest value shown with
	// equivalencies. Smaller values are shown raw.
	MinEquivalencyThresholdKg = 1

	// LargeNumberThreshold switches to "~X.X million" display.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" display.
	BillionThreshold = 1_000_000_000
)
