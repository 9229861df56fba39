package tui

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/internal/greenops"
	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

// Footprint is the footprint type the browser and summaries display.
type Footprint = pact.ProductFootprint[ileap.AnyPayload]

// Row is the display form of one footprint.
type Row struct {
	ID          string
	Kind        string
	PayloadID   string
	Unit        string
	Amount      decimal.Decimal
	Emissions   decimal.Decimal
	Equivalency string

	Footprint *Footprint
}

// NewRows builds one row per footprint, in order. Kind and PayloadID come
// from the first extension and are "-" without one.
func NewRows(footprints []*Footprint) []Row {
	rows := make([]Row, 0, len(footprints))
	for _, fp := range footprints {
		row := Row{
			ID:        fp.ID.String(),
			Kind:      "-",
			PayloadID: "-",
			Unit:      string(fp.PCF.DeclaredUnit),
			Amount:    fp.PCF.UnitaryProductAmount.Decimal(),
			Emissions: fp.PCF.PCfExcludingBiogenic.Decimal(),
			Footprint: fp,
		}
		if len(fp.Extensions) > 0 && fp.Extensions[0].Data.Payload != nil {
			row.Kind = string(fp.Extensions[0].Data.Kind())
			row.PayloadID = fp.Extensions[0].Data.ID()
		}
		if eq := greenops.ForFootprint(fp.PCF); !eq.IsEmpty {
			row.Equivalency = eq.CompactText
		}
		rows = append(rows, row)
	}
	return rows
}

// Comparators returns the row orderings by sort field name.
func Comparators() map[string]func(a, b Row) int {
	return map[string]func(a, b Row) int{
		"id":        func(a, b Row) int { return strings.Compare(a.ID, b.ID) },
		"kind":      func(a, b Row) int { return strings.Compare(a.Kind, b.Kind) },
		"payload":   func(a, b Row) int { return strings.Compare(a.PayloadID, b.PayloadID) },
		"amount":    func(a, b Row) int { return a.Amount.Cmp(b.Amount) },
		"emissions": func(a, b Row) int { return a.Emissions.Cmp(b.Emissions) },
	}
}

// TotalEmissions sums the emissions of rows in kg CO2e.
func TotalEmissions(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Emissions)
	}
	return total
}

// matches reports whether query occurs in the id, kind or payload id,
// ignoring case.
func (r Row) matches(query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.ID), query) ||
		strings.Contains(strings.ToLower(r.Kind), query) ||
		strings.Contains(strings.ToLower(r.PayloadID), query)
}
