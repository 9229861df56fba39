package greenops

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats n with thousand separators: 18248 becomes "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatDecimal rounds d to places and adds thousand separators to the
// integer part: 1234.567 with 2 places becomes "1,234.57".
func FormatDecimal(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	whole := rounded.Truncate(0)

	out := FormatNumber(whole.IntPart())
	if rounded.IsNegative() && whole.IsZero() {
		out = "-" + out
	}
	if places <= 0 {
		return out
	}
	frac := rounded.Sub(whole).Abs().StringFixed(places)
	return out + frac[1:]
}

// FormatLarge abbreviates values of a million and more ("~1.5 billion") and
// formats smaller ones as whole numbers with separators.
func FormatLarge(d decimal.Decimal) string {
	switch {
	case d.GreaterThanOrEqual(decimal.NewFromInt(BillionThreshold)):
		return fmt.Sprintf("~%s billion", d.Div(decimal.NewFromInt(BillionThreshold)).StringFixed(1))
	case d.GreaterThanOrEqual(decimal.NewFromInt(LargeNumberThreshold)):
		return fmt.Sprintf("~%s million", d.Div(decimal.NewFromInt(LargeNumberThreshold)).StringFixed(1))
	default:
		return FormatDecimal(d, 0)
	}
}
