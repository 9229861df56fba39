package ileap

import (
	"time"

	"github.com/rshade/ileap/pkg/jsonschema"
	"github.com/rshade/ileap/pkg/pact"
)

// Tad is transport activity data: one observed movement of consignments,
// independent of the TOC, HOC and TCE chain.
type Tad struct {
	ActivityID            string                          `json:"activityId"`
	ConsignmentIDs        []string                        `json:"consignmentIds"`
	Distance              GlecDistance                    `json:"distance"`
	Mass                  *pact.Decimal                   `json:"mass,omitempty"`
	LoadFactor            *pact.Decimal                   `json:"loadFactor,omitempty"`
	EmptyDistanceFactor   *pact.Decimal                   `json:"emptyDistanceFactor,omitempty"`
	Origin                Location                        `json:"origin"`
	Destination           Location                        `json:"destination"`
	DepartureAt           time.Time                       `json:"departureAt"`
	ArrivalAt             time.Time                       `json:"arrivalAt"`
	Mode                  TransportMode                   `json:"mode"`
	PackagingOrTrEqType   *PackagingOrTrEqType            `json:"packagingOrTrEqType,omitempty"`
	PackagingOrTrEqAmount *uint                           `json:"packagingOrTrEqAmount,omitempty"`
	EnergyCarriers        pact.NonEmptyVec[EnergyCarrier] `json:"energyCarriers,omitempty"`
	TemperatureControl    *TadTempControl                 `json:"temperatureControl,omitempty"`
}

type tadFields Tad

//nolint:gochecknoglobals // immutable key list
var tadRequired = []string{
	"activityId", "consignmentIds", "distance", "origin", "destination",
	"departureAt", "arrivalAt", "mode",
}

// JSONSchemaName implements jsonschema.Namer.
func (Tad) JSONSchemaName() string { return "TAD" }

// UnmarshalJSON decodes and validates a TAD.
func (t *Tad) UnmarshalJSON(data []byte) error {
	var fields tadFields
	if err := pact.DecodeObject(data, "TAD", &fields, tadRequired...); err != nil {
		return err
	}
	decoded := Tad(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// Validate checks the movement: unique consignment ids, valid locations and
// enums, and arrival not before departure.
func (t Tad) Validate() error {
	if err := firstError(
		requireText("activityId", t.ActivityID),
		pact.Within("distance", t.Distance.Validate()),
		pact.Within("origin", t.Origin.Validate()),
		pact.Within("destination", t.Destination.Validate()),
		pact.Within("mode", t.Mode.Validate()),
		validateOptional("packagingOrTrEqType", t.PackagingOrTrEqType),
		validateEach("energyCarriers", t.EnergyCarriers),
		validateOptional("temperatureControl", t.TemperatureControl),
	); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(t.ConsignmentIDs))
	for i, id := range t.ConsignmentIDs {
		if _, dup := seen[id]; dup {
			return pact.NewValidationError(indexField("consignmentIds", i), "duplicate consignment id %s", id)
		}
		seen[id] = struct{}{}
	}
	if t.ArrivalAt.Before(t.DepartureAt) {
		return pact.NewValidationError("arrivalAt", "activity %s arrives before it departs", t.ActivityID)
	}
	return nil
}

// ExtendJSONSchema marks the consignment ids as a set.
func (*Tad) ExtendJSONSchema(_ *jsonschema.Reflector, s *jsonschema.Schema) {
	s.Properties["consignmentIds"].UniqueItems = true
}
