package ileap

import (
	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/pkg/pact"
)

// Feedstock is one primary source of an energy carrier. FeedstockPercentage
// is a fraction of one, not a percentage of a hundred.
type Feedstock struct {
	Feedstock           FeedstockType `json:"feedstock"`
	FeedstockPercentage *pact.Decimal `json:"feedstockPercentage,omitempty"`
	RegionProvenance    *string       `json:"regionProvenance,omitempty"`
}

type feedstockFields Feedstock

// UnmarshalJSON decodes and validates a feedstock.
func (f *Feedstock) UnmarshalJSON(data []byte) error {
	var fields feedstockFields
	if err := pact.DecodeObject(data, "Feedstock", &fields, "feedstock"); err != nil {
		return err
	}
	decoded := Feedstock(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*f = decoded
	return nil
}

// Validate checks the type and that the share lies in [0, 1].
func (f Feedstock) Validate() error {
	if err := pact.Within("feedstock", f.Feedstock.Validate()); err != nil {
		return err
	}
	if f.FeedstockPercentage != nil {
		share := f.FeedstockPercentage.Decimal()
		if share.IsNegative() || share.GreaterThan(decimal.NewFromInt(1)) {
			return pact.NewValidationError("feedstockPercentage", "%s is not a fraction in [0, 1]", share)
		}
	}
	return nil
}

// EnergyCarrier is a fuel used by a TOC or hub with its emission factors.
type EnergyCarrier struct {
	EnergyCarrier         EnergyCarrierType      `json:"energyCarrier"`
	Feedstocks            []Feedstock            `json:"feedstocks,omitempty"`
	EnergyConsumption     *pact.Decimal          `json:"energyConsumption,omitempty"`
	EnergyConsumptionUnit *EnergyConsumptionUnit `json:"energyConsumptionUnit,omitempty"`
	EmissionFactorWTW     pact.Decimal           `json:"emissionFactorWTW"`
	EmissionFactorTTW     pact.Decimal           `json:"emissionFactorTTW"`
}

type energyCarrierFields EnergyCarrier

// UnmarshalJSON decodes and validates an energy carrier.
func (e *EnergyCarrier) UnmarshalJSON(data []byte) error {
	var fields energyCarrierFields
	if err := pact.DecodeObject(data, "EnergyCarrier", &fields,
		"energyCarrier", "emissionFactorWTW", "emissionFactorTTW"); err != nil {
		return err
	}
	decoded := EnergyCarrier(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}

// Validate checks the carrier, each feedstock and that the feedstock shares
// add up to at most one.
func (e EnergyCarrier) Validate() error {
	if err := firstError(
		pact.Within("energyCarrier", e.EnergyCarrier.Validate()),
		validateOptional("energyConsumptionUnit", e.EnergyConsumptionUnit),
		validateEach("feedstocks", e.Feedstocks),
	); err != nil {
		return err
	}
	if total := e.FeedstockShare(); total.GreaterThan(decimal.NewFromInt(1)) {
		return pact.NewValidationError("feedstocks", "shares add up to %s, more than 1", total)
	}
	return nil
}

// FeedstockShare sums the feedstock shares that are set.
func (e EnergyCarrier) FeedstockShare() decimal.Decimal {
	total := decimal.Zero
	for _, f := range e.Feedstocks {
		if f.FeedstockPercentage != nil {
			total = total.Add(f.FeedstockPercentage.Decimal())
		}
	}
	return total
}
