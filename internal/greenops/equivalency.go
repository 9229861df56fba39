package greenops

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/pkg/pact"
)

// Calculate normalizes input to kilograms and derives the miles-driven and
// smartphones-charged equivalencies.
//
// Inputs below MinEquivalencyThresholdKg give an empty output with InputKg
// set and no error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	if kg.LessThan(decimal.NewFromInt(MinEquivalencyThresholdKg)) {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg.Div(EPAMilesDrivenFactor)
	phones := kg.Div(EPASmartphoneChargeFactor)
	milesText := FormatLarge(miles)
	phonesText := FormatLarge(phones)

	return EquivalencyOutput{
		InputKg: kg,
		Results: []EquivalencyResult{
			{
				Type:           EquivalencyMilesDriven,
				Value:          miles,
				FormattedValue: milesText,
				Label:          "miles driven",
			},
			{
				Type:           EquivalencySmartphonesCharged,
				Value:          phones,
				FormattedValue: phonesText,
				Label:          "smartphones charged",
			},
		},
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			milesText, phonesText),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", milesText, phonesText),
	}, nil
}

// ForFootprint returns the equivalencies of pCfExcludingBiogenic, which is
// in kg CO2e. Failures are logged and yield an empty output.
func ForFootprint(cf pact.CarbonFootprint) EquivalencyOutput {
	output, err := Calculate(CarbonInput{Value: cf.PCfExcludingBiogenic.Decimal(), Unit: "kgCO2e"})
	if err != nil {
		log.Warn().Err(err).Msg("equivalency calculation failed for pCfExcludingBiogenic")
		return EquivalencyOutput{IsEmpty: true}
	}
	return output
}

// TotalKg sums pCfExcludingBiogenic over footprints.
func TotalKg(footprints ...pact.CarbonFootprint) decimal.Decimal {
	total := decimal.Zero
	for _, cf := range footprints {
		total = total.Add(cf.PCfExcludingBiogenic.Decimal())
	}
	return total
}
