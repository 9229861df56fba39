package ileap

import (
	"github.com/rshade/ileap/pkg/pact"
)

// Toc is a transport operation category: emission intensities shared by a
// group of comparable transport operations.
type Toc struct {
	TocID                   string                          `json:"tocId"`
	IsVerified              bool                            `json:"isVerified"`
	IsAccredited            bool                            `json:"isAccredited"`
	Certifications          pact.NonEmptyVec[Certification] `json:"certifications,omitempty"`
	Description             *string                         `json:"description,omitempty"`
	Mode                    TransportMode                   `json:"mode"`
	LoadFactor              *string                         `json:"loadFactor,omitempty"`
	EmptyDistanceFactor     *string                         `json:"emptyDistanceFactor,omitempty"`
	TemperatureControl      *TemperatureControl             `json:"temperatureControl,omitempty"`
	TruckLoadingSequence    *TruckLoadingSequence           `json:"truckLoadingSequence,omitempty"`
	AirShippingOption       *AirShippingOption              `json:"airShippingOption,omitempty"`
	FlightLength            *FlightLength                   `json:"flightLength,omitempty"`
	EnergyCarriers          pact.NonEmptyVec[EnergyCarrier] `json:"energyCarriers"`
	CO2eIntensityWTW        pact.Decimal                    `json:"co2eIntensityWTW"`
	CO2eIntensityTTW        pact.Decimal                    `json:"co2eIntensityTTW"`
	CO2eIntensityThroughput TocCo2eIntensityThroughput      `json:"co2eIntensityThroughput"`
	GlecDataQualityIndex    *GlecDataQualityIndex           `json:"glecDataQualityIndex,omitempty"`
}

type tocFields Toc

//nolint:gochecknoglobals // immutable key list
var tocRequired = []string{
	"tocId", "isVerified", "isAccredited", "mode", "energyCarriers",
	"co2eIntensityWTW", "co2eIntensityTTW", "co2eIntensityThroughput",
}

// JSONSchemaName implements jsonschema.Namer.
func (Toc) JSONSchemaName() string { return "TOC" }

// UnmarshalJSON decodes and validates a TOC.
func (t *Toc) UnmarshalJSON(data []byte) error {
	var fields tocFields
	if err := pact.DecodeObject(data, "TOC", &fields, tocRequired...); err != nil {
		return err
	}
	decoded := Toc(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// Validate checks the enums, the carriers and that air-only options are
// only set on air TOCs.
func (t Toc) Validate() error {
	if err := firstError(
		requireText("tocId", t.TocID),
		pact.Within("mode", t.Mode.Validate()),
		validateOptional("temperatureControl", t.TemperatureControl),
		validateOptional("truckLoadingSequence", t.TruckLoadingSequence),
		validateOptional("airShippingOption", t.AirShippingOption),
		validateOptional("flightLength", t.FlightLength),
		pact.Within("energyCarriers", t.EnergyCarriers.Validate()),
		validateEach("energyCarriers", t.EnergyCarriers),
		pact.Within("co2eIntensityThroughput", t.CO2eIntensityThroughput.Validate()),
		validateOptional("glecDataQualityIndex", t.GlecDataQualityIndex),
		validateEach("certifications", t.Certifications),
	); err != nil {
		return err
	}
	if t.Mode != TransportModeAir {
		if t.AirShippingOption != nil {
			return pact.NewValidationError("airShippingOption", "set on a %s TOC", t.Mode)
		}
		if t.FlightLength != nil {
			return pact.NewValidationError("flightLength", "set on a %s TOC", t.Mode)
		}
	}
	return nil
}
