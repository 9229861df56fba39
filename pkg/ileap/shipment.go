package ileap

import (
	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/pkg/pact"
)

// ShipmentFootprint is the emission record of one shipment along its legs.
// Mass is kept as the raw string the shipper reported.
type ShipmentFootprint struct {
	Mass          string                `json:"mass"`
	Volume        *string               `json:"volume,omitempty"`
	NumberOfItems *string               `json:"numberOfItems,omitempty"`
	TypeOfItems   *string               `json:"typeOfItems,omitempty"`
	ShipmentID    string                `json:"shipmentId"`
	TCEs          pact.NonEmptyVec[Tce] `json:"tces"`
}

type shipmentFootprintFields ShipmentFootprint

// UnmarshalJSON decodes and validates a shipment footprint.
func (s *ShipmentFootprint) UnmarshalJSON(data []byte) error {
	var fields shipmentFootprintFields
	if err := pact.DecodeObject(data, "ShipmentFootprint", &fields, "mass", "shipmentId", "tces"); err != nil {
		return err
	}
	decoded := ShipmentFootprint(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// Validate checks the mass is reported, every leg, that legs belong to this shipment and that leg
// ids are unique.
func (s ShipmentFootprint) Validate() error {
	if err := firstError(
		requireText("mass", s.Mass),
		requireText("shipmentId", s.ShipmentID),
		pact.Within("tces", s.TCEs.Validate()),
		validateEach("tces", s.TCEs),
	); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(s.TCEs))
	for i, tce := range s.TCEs {
		if tce.ShipmentID != s.ShipmentID {
			return pact.NewValidationError(indexField("tces", i)+".shipmentId",
				"leg %s belongs to shipment %q, not %q", tce.TceID, tce.ShipmentID, s.ShipmentID)
		}
		if _, dup := seen[tce.TceID]; dup {
			return pact.NewValidationError(indexField("tces", i)+".tceId", "duplicate leg id %s", tce.TceID)
		}
		seen[tce.TceID] = struct{}{}
	}
	return nil
}

// TransportActivity sums the transport activity of all legs.
func (s ShipmentFootprint) TransportActivity() decimal.Decimal {
	total := decimal.Zero
	for _, tce := range s.TCEs {
		total = total.Add(tce.TransportActivity.Decimal())
	}
	return total
}

// CO2eWTW sums the well-to-wheel emissions of all legs.
func (s ShipmentFootprint) CO2eWTW() decimal.Decimal {
	total := decimal.Zero
	for _, tce := range s.TCEs {
		total = total.Add(tce.CO2eWTW.Decimal())
	}
	return total
}
