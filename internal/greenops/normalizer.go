package greenops

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func unitFactor(unit string) (decimal.Decimal, bool) {
	switch strings.TrimSuffix(strings.ToLower(unit), "co2e") {
	case "g":
		return gramsToKg, true
	case "kg":
		return kgToKg, true
	case "t":
		return tonnesToKg, true
	case "lb":
		return poundsToKg, true
	default:
		return decimal.Decimal{}, false
	}
}

// NormalizeToKg converts value to kilograms. Units are g, kg, t and lb,
// each optionally suffixed with CO2e, matched case-insensitively.
func NormalizeToKg(value decimal.Decimal, unit string) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeValue, value)
	}
	factor, ok := unitFactor(unit)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	return value.Mul(factor), nil
}

// IsRecognizedUnit reports whether NormalizeToKg accepts unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
