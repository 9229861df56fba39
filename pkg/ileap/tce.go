package ileap

import (
	"time"

	"github.com/rshade/ileap/pkg/pact"
)

// Tce is a transport chain element: one leg of a shipment, operated either
// under a TOC or at a hub under a HOC.
type Tce struct {
	TceID                 string                `json:"tceId"`
	PrevTceIDs            []string              `json:"prevTceIds,omitempty"`
	TocID                 *string               `json:"tocId,omitempty"`
	HocID                 *string               `json:"hocId,omitempty"`
	ShipmentID            string                `json:"shipmentId"`
	ConsignmentID         *string               `json:"consignmentId,omitempty"`
	Mass                  pact.Decimal          `json:"mass"`
	PackagingOrTrEqType   *PackagingOrTrEqType  `json:"packagingOrTrEqType,omitempty"`
	PackagingOrTrEqAmount *pact.PositiveDecimal `json:"packagingOrTrEqAmount,omitempty"`
	Distance              GlecDistance          `json:"distance"`
	Origin                *Location             `json:"origin,omitempty"`
	Destination           *Location             `json:"destination,omitempty"`
	TransportActivity     pact.Decimal          `json:"transportActivity"`
	DepartureAt           *time.Time            `json:"departureAt,omitempty"`
	ArrivalAt             *time.Time            `json:"arrivalAt,omitempty"`
	FlightNo              *string               `json:"flightNo,omitempty"`
	VoyageNo              *string               `json:"voyageNo,omitempty"`
	Incoterms             *Incoterms            `json:"incoterms,omitempty"`
	CO2eWTW               pact.Decimal          `json:"co2eWTW"`
	CO2eTTW               pact.Decimal          `json:"co2eTTW"`
	NOxTTW                *pact.Decimal         `json:"noxTTW,omitempty"`
	SOxTTW                *pact.Decimal         `json:"soxTTW,omitempty"`
	CH4TTW                *pact.Decimal         `json:"ch4TTW,omitempty"`
	PMTTW                 *pact.Decimal         `json:"pmTTW,omitempty"`
}

type tceFields Tce

//nolint:gochecknoglobals // immutable key list
var tceRequired = []string{
	"tceId", "shipmentId", "mass", "distance", "transportActivity", "co2eWTW", "co2eTTW",
}

// JSONSchemaName implements jsonschema.Namer.
func (Tce) JSONSchemaName() string { return "TCE" }

// UnmarshalJSON decodes and validates a leg.
func (t *Tce) UnmarshalJSON(data []byte) error {
	var fields tceFields
	if err := pact.DecodeObject(data, "TCE", &fields, tceRequired...); err != nil {
		return err
	}
	decoded := Tce(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// IsHub reports whether the leg is operated under a HOC.
func (t Tce) IsHub() bool { return t.HocID != nil }

// OperatorID returns the TOC or HOC id the leg refers to.
func (t Tce) OperatorID() string {
	switch {
	case t.TocID != nil:
		return *t.TocID
	case t.HocID != nil:
		return *t.HocID
	default:
		return ""
	}
}

// Validate checks the leg. Exactly one of tocId and hocId is set, hub legs
// carry no transport activity and arrival is not before departure.
func (t Tce) Validate() error {
	if err := firstError(
		requireText("tceId", t.TceID),
		requireText("shipmentId", t.ShipmentID),
		pact.Within("distance", t.Distance.Validate()),
		validateOptional("packagingOrTrEqType", t.PackagingOrTrEqType),
		validateOptional("packagingOrTrEqAmount", t.PackagingOrTrEqAmount),
		validateOptional("origin", t.Origin),
		validateOptional("destination", t.Destination),
		validateOptional("incoterms", t.Incoterms),
	); err != nil {
		return err
	}

	switch {
	case t.TocID != nil && t.HocID != nil:
		return pact.NewValidationError("tocId", "leg %s sets both tocId and hocId", t.TceID)
	case t.TocID == nil && t.HocID == nil:
		return pact.NewValidationError("tocId", "leg %s sets neither tocId nor hocId", t.TceID)
	}

	if t.IsHub() && !t.TransportActivity.Decimal().IsZero() {
		return pact.NewValidationError("transportActivity", "hub leg %s must have zero transport activity, got %s",
			t.TceID, t.TransportActivity)
	}
	if t.DepartureAt != nil && t.ArrivalAt != nil && t.ArrivalAt.Before(*t.DepartureAt) {
		return pact.NewValidationError("arrivalAt", "leg %s arrives before it departs", t.TceID)
	}
	return nil
}
