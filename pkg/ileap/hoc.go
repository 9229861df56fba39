package ileap

import (
	"github.com/rshade/ileap/pkg/pact"
)

// Hoc is a hub operation category: emission intensities of a class of hub
// facilities per unit of throughput.
type Hoc struct {
	HocID                   string                          `json:"hocId"`
	Description             *string                         `json:"description,omitempty"`
	IsVerified              bool                            `json:"isVerified"`
	IsAccredited            bool                            `json:"isAccredited"`
	Certifications          pact.NonEmptyVec[Certification] `json:"certifications,omitempty"`
	HubType                 HubType                         `json:"hubType"`
	TemperatureControl      *TemperatureControl             `json:"temperatureControl,omitempty"`
	HubLocation             *Location                       `json:"hubLocation,omitempty"`
	InboundTransportMode    *TransportMode                  `json:"inboundTransportMode,omitempty"`
	OutboundTransportMode   *TransportMode                  `json:"outboundTransportMode,omitempty"`
	PackagingOrTrEqType     *PackagingOrTrEqType            `json:"packagingOrTrEqType,omitempty"`
	PackagingOrTrEqAmount   *uint                           `json:"packagingOrTrEqAmount,omitempty"`
	EnergyCarriers          pact.NonEmptyVec[EnergyCarrier] `json:"energyCarriers"`
	CO2eIntensityWTW        pact.Decimal                    `json:"co2eIntensityWTW"`
	CO2eIntensityTTW        pact.Decimal                    `json:"co2eIntensityTTW"`
	CO2eIntensityThroughput HocCo2eIntensityThroughput      `json:"co2eIntensityThroughput"`
}

type hocFields Hoc

//nolint:gochecknoglobals // immutable key list
var hocRequired = []string{
	"hocId", "isVerified", "isAccredited", "hubType", "energyCarriers",
	"co2eIntensityWTW", "co2eIntensityTTW", "co2eIntensityThroughput",
}

// JSONSchemaName implements jsonschema.Namer.
func (Hoc) JSONSchemaName() string { return "HOC" }

// UnmarshalJSON decodes and validates a HOC.
func (h *Hoc) UnmarshalJSON(data []byte) error {
	var fields hocFields
	if err := pact.DecodeObject(data, "HOC", &fields, hocRequired...); err != nil {
		return err
	}
	decoded := Hoc(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*h = decoded
	return nil
}

// Validate checks the enums, the location and the carriers.
func (h Hoc) Validate() error {
	return firstError(
		requireText("hocId", h.HocID),
		pact.Within("hubType", h.HubType.Validate()),
		validateOptional("temperatureControl", h.TemperatureControl),
		validateOptional("hubLocation", h.HubLocation),
		validateOptional("inboundTransportMode", h.InboundTransportMode),
		validateOptional("outboundTransportMode", h.OutboundTransportMode),
		validateOptional("packagingOrTrEqType", h.PackagingOrTrEqType),
		pact.Within("energyCarriers", h.EnergyCarriers.Validate()),
		validateEach("energyCarriers", h.EnergyCarriers),
		pact.Within("co2eIntensityThroughput", h.CO2eIntensityThroughput.Validate()),
		validateEach("certifications", h.Certifications),
	)
}
