package ileap

import (
	"slices"

	"github.com/rshade/ileap/pkg/jsonschema"
	"github.com/rshade/ileap/pkg/pact"
)

// decodeInto decodes a closed-vocabulary string into dst.
func decodeInto[T ~string](dst *T, data []byte, typeName string, allowed []T) error {
	v, err := pact.DecodeEnum(data, typeName, allowed)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// TransportMode is the mode a TOC operates or a hub is served by.
type TransportMode string

// Transport modes.
const (
	TransportModeRoad           TransportMode = "Road"
	TransportModeRail           TransportMode = "Rail"
	TransportModeAir            TransportMode = "Air"
	TransportModeSea            TransportMode = "Sea"
	TransportModeInlandWaterway TransportMode = "InlandWaterway"
)

// Values lists every mode.
func (TransportMode) Values() []TransportMode {
	return []TransportMode{
		TransportModeRoad, TransportModeRail, TransportModeAir, TransportModeSea, TransportModeInlandWaterway,
	}
}

// Validate checks membership.
func (m TransportMode) Validate() error { return pact.CheckEnum(m, "TransportMode", m.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *TransportMode) UnmarshalJSON(data []byte) error {
	return decodeInto(m, data, "TransportMode", m.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (m TransportMode) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(m.Values())
}

// TemperatureControl describes the temperature regime of a TOC or hub.
type TemperatureControl string

// Temperature regimes.
const (
	TemperatureAmbient      TemperatureControl = "ambient"
	TemperatureRefrigerated TemperatureControl = "refrigerated"
	TemperatureMixed        TemperatureControl = "mixed"
)

// Values lists every regime.
func (TemperatureControl) Values() []TemperatureControl {
	return []TemperatureControl{TemperatureAmbient, TemperatureRefrigerated, TemperatureMixed}
}

// Validate checks membership.
func (t TemperatureControl) Validate() error {
	return pact.CheckEnum(t, "TemperatureControl", t.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TemperatureControl) UnmarshalJSON(data []byte) error {
	return decodeInto(t, data, "TemperatureControl", t.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (t TemperatureControl) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(t.Values())
}

// TadTempControl is the temperature regime of an observed movement, which
// is never mixed.
type TadTempControl string

// Movement temperature regimes.
const (
	TadTempAmbient      TadTempControl = "ambient"
	TadTempRefrigerated TadTempControl = "refrigerated"
)

// Values lists every regime.
func (TadTempControl) Values() []TadTempControl {
	return []TadTempControl{TadTempAmbient, TadTempRefrigerated}
}

// Validate checks membership.
func (t TadTempControl) Validate() error { return pact.CheckEnum(t, "TadTempControl", t.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *TadTempControl) UnmarshalJSON(data []byte) error {
	return decodeInto(t, data, "TadTempControl", t.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (t TadTempControl) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(t.Values())
}

// TruckLoadingSequence distinguishes less-than-truckload from full loads.
type TruckLoadingSequence string

// Loading sequences.
const (
	TruckLoadingLTL TruckLoadingSequence = "LTL"
	TruckLoadingFTL TruckLoadingSequence = "FTL"
)

// Values lists every sequence.
func (TruckLoadingSequence) Values() []TruckLoadingSequence {
	return []TruckLoadingSequence{TruckLoadingLTL, TruckLoadingFTL}
}

// Validate checks membership.
func (s TruckLoadingSequence) Validate() error {
	return pact.CheckEnum(s, "TruckLoadingSequence", s.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *TruckLoadingSequence) UnmarshalJSON(data []byte) error {
	return decodeInto(s, data, "TruckLoadingSequence", s.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (s TruckLoadingSequence) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(s.Values())
}

// AirShippingOption tells belly freight from dedicated freighters.
type AirShippingOption string

// Air shipping options.
const (
	AirShippingBellyFreight AirShippingOption = "belly freight"
	AirShippingFreighter    AirShippingOption = "freighter"
)

// Values lists every option.
func (AirShippingOption) Values() []AirShippingOption {
	return []AirShippingOption{AirShippingBellyFreight, AirShippingFreighter}
}

// Validate checks membership.
func (o AirShippingOption) Validate() error {
	return pact.CheckEnum(o, "AirShippingOption", o.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *AirShippingOption) UnmarshalJSON(data []byte) error {
	return decodeInto(o, data, "AirShippingOption", o.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (o AirShippingOption) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(o.Values())
}

// FlightLength classifies air legs.
type FlightLength string

// Flight lengths.
const (
	FlightShortHaul FlightLength = "short-haul"
	FlightLongHaul  FlightLength = "long-haul"
)

// Values lists every length.
func (FlightLength) Values() []FlightLength { return []FlightLength{FlightShortHaul, FlightLongHaul} }

// Validate checks membership.
func (f FlightLength) Validate() error { return pact.CheckEnum(f, "FlightLength", f.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlightLength) UnmarshalJSON(data []byte) error {
	return decodeInto(f, data, "FlightLength", f.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (f FlightLength) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(f.Values())
}

// HubType is the kind of facility a HOC describes.
type HubType string

// Hub types.
const (
	HubTransshipment             HubType = "Transshipment"
	HubStorageAndTransshipment   HubType = "StorageAndTransshipment"
	HubWarehouse                 HubType = "Warehouse"
	HubLiquidBulkTerminal        HubType = "LiquidBulkTerminal"
	HubMaritimeContainerTerminal HubType = "MaritimeContainerterminal"
)

// Values lists every hub type.
func (HubType) Values() []HubType {
	return []HubType{
		HubTransshipment, HubStorageAndTransshipment, HubWarehouse,
		HubLiquidBulkTerminal, HubMaritimeContainerTerminal,
	}
}

// Validate checks membership.
func (h HubType) Validate() error { return pact.CheckEnum(h, "HubType", h.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (h *HubType) UnmarshalJSON(data []byte) error {
	return decodeInto(h, data, "HubType", h.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (h HubType) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(h.Values())
}

// PackagingOrTrEqType is the packaging or transport equipment of a leg.
type PackagingOrTrEqType string

// Packaging and equipment types.
const (
	PackagingBox          PackagingOrTrEqType = "Box"
	PackagingPallet       PackagingOrTrEqType = "Pallet"
	PackagingContainerTEU PackagingOrTrEqType = "Container-TEU"
	PackagingContainerFEU PackagingOrTrEqType = "Container-FEU"
	PackagingContainer    PackagingOrTrEqType = "Container"
)

// Values lists every type.
func (PackagingOrTrEqType) Values() []PackagingOrTrEqType {
	return []PackagingOrTrEqType{
		PackagingBox, PackagingPallet, PackagingContainerTEU, PackagingContainerFEU, PackagingContainer,
	}
}

// Validate checks membership.
func (p PackagingOrTrEqType) Validate() error {
	return pact.CheckEnum(p, "PackagingOrTrEqType", p.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PackagingOrTrEqType) UnmarshalJSON(data []byte) error {
	return decodeInto(p, data, "PackagingOrTrEqType", p.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (p PackagingOrTrEqType) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(p.Values())
}

// EnergyCarrierType is a fuel or energy source.
type EnergyCarrierType string

// Energy carriers.
const (
	EnergyDiesel       EnergyCarrierType = "Diesel"
	EnergyHVO          EnergyCarrierType = "HVO"
	EnergyPetrol       EnergyCarrierType = "Petrol"
	EnergyCNG          EnergyCarrierType = "CNG"
	EnergyLNG          EnergyCarrierType = "LNG"
	EnergyLPG          EnergyCarrierType = "LPG"
	EnergyHFO          EnergyCarrierType = "HFO"
	EnergyMGO          EnergyCarrierType = "MGO"
	EnergyAviationFuel EnergyCarrierType = "Aviation fuel"
	EnergyHydrogen     EnergyCarrierType = "Hydrogen"
	EnergyMethanol     EnergyCarrierType = "Methanol"
	EnergyElectric     EnergyCarrierType = "Electric"
)

// Values lists every carrier.
func (EnergyCarrierType) Values() []EnergyCarrierType {
	return []EnergyCarrierType{
		EnergyDiesel, EnergyHVO, EnergyPetrol, EnergyCNG, EnergyLNG, EnergyLPG,
		EnergyHFO, EnergyMGO, EnergyAviationFuel, EnergyHydrogen, EnergyMethanol, EnergyElectric,
	}
}

// Validate checks membership.
func (e EnergyCarrierType) Validate() error {
	return pact.CheckEnum(e, "EnergyCarrierType", e.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EnergyCarrierType) UnmarshalJSON(data []byte) error {
	return decodeInto(e, data, "EnergyCarrierType", e.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (e EnergyCarrierType) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(e.Values())
}

// CompatibleFeedstocks returns the feedstocks the demo generator pairs
// with the carrier. Diesel is fossil only, hydrogen is modelled from cooking
// oil only and electricity comes from the grid or renewables.
//
// The pairing is a modelling choice for generated data. EnergyCarrier.Validate
// does not enforce it, so reported data may combine any carrier and feedstock.
func (e EnergyCarrierType) CompatibleFeedstocks() []FeedstockType {
	switch e {
	case EnergyDiesel:
		return []FeedstockType{FeedstockFossil}
	case EnergyHydrogen:
		return []FeedstockType{FeedstockCookingOil}
	case EnergyElectric:
		return []FeedstockType{FeedstockGrid, FeedstockRenewableElectricity}
	case EnergyHVO, EnergyPetrol, EnergyCNG, EnergyLNG, EnergyLPG, EnergyHFO, EnergyMGO,
		EnergyAviationFuel, EnergyMethanol:
		return []FeedstockType{FeedstockFossil, FeedstockNaturalGas, FeedstockCookingOil}
	default:
		return nil
	}
}

// Accepts reports whether the demo generator may pair f with e.
func (e EnergyCarrierType) Accepts(f FeedstockType) bool {
	return slices.Contains(e.CompatibleFeedstocks(), f)
}

// EnergyConsumptionUnit is the unit of a carrier's energy consumption.
type EnergyConsumptionUnit string

// Energy consumption units.
const (
	EnergyUnitLiter    EnergyConsumptionUnit = "l"
	EnergyUnitKilogram EnergyConsumptionUnit = "kg"
	EnergyUnitKWh      EnergyConsumptionUnit = "kWh"
	EnergyUnitMJ       EnergyConsumptionUnit = "MJ"
)

// Values lists every unit.
func (EnergyConsumptionUnit) Values() []EnergyConsumptionUnit {
	return []EnergyConsumptionUnit{EnergyUnitLiter, EnergyUnitKilogram, EnergyUnitKWh, EnergyUnitMJ}
}

// Validate checks membership.
func (u EnergyConsumptionUnit) Validate() error {
	return pact.CheckEnum(u, "EnergyConsumptionUnit", u.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *EnergyConsumptionUnit) UnmarshalJSON(data []byte) error {
	return decodeInto(u, data, "EnergyConsumptionUnit", u.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (u EnergyConsumptionUnit) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(u.Values())
}

// FeedstockType is the primary source an energy carrier is made from.
type FeedstockType string

// Feedstocks.
const (
	FeedstockFossil               FeedstockType = "Fossil"
	FeedstockNaturalGas           FeedstockType = "Natural gas"
	FeedstockGrid                 FeedstockType = "Grid"
	FeedstockRenewableElectricity FeedstockType = "Renewable electricity"
	FeedstockCookingOil           FeedstockType = "Cooking oil"
)

// Values lists every feedstock.
func (FeedstockType) Values() []FeedstockType {
	return []FeedstockType{
		FeedstockFossil, FeedstockNaturalGas, FeedstockGrid, FeedstockRenewableElectricity, FeedstockCookingOil,
	}
}

// Validate checks membership.
func (f FeedstockType) Validate() error { return pact.CheckEnum(f, "FeedstockType", f.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *FeedstockType) UnmarshalJSON(data []byte) error {
	return decodeInto(f, data, "FeedstockType", f.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (f FeedstockType) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(f.Values())
}

// Incoterms is an ICC trade term.
type Incoterms string

// Trade terms.
const (
	IncotermsEXW Incoterms = "EXW"
	IncotermsFCA Incoterms = "FCA"
	IncotermsCPT Incoterms = "CPT"
	IncotermsCIP Incoterms = "CIP"
	IncotermsDAP Incoterms = "DAP"
	IncotermsDPU Incoterms = "DPU"
	IncotermsDDP Incoterms = "DDP"
	IncotermsFAS Incoterms = "FAS"
	IncotermsFOB Incoterms = "FOB"
	IncotermsCFR Incoterms = "CFR"
	IncotermsCIF Incoterms = "CIF"
)

// Values lists every term.
func (Incoterms) Values() []Incoterms {
	return []Incoterms{
		IncotermsEXW, IncotermsFCA, IncotermsCPT, IncotermsCIP, IncotermsDAP, IncotermsDPU,
		IncotermsDDP, IncotermsFAS, IncotermsFOB, IncotermsCFR, IncotermsCIF,
	}
}

// Validate checks membership.
func (i Incoterms) Validate() error { return pact.CheckEnum(i, "Incoterms", i.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (i *Incoterms) UnmarshalJSON(data []byte) error {
	return decodeInto(i, data, "Incoterms", i.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (i Incoterms) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(i.Values())
}

// TocCo2eIntensityThroughput is the activity unit a TOC's intensity is
// expressed per.
type TocCo2eIntensityThroughput string

// TOC throughput units.
const (
	TocThroughputTEUkm TocCo2eIntensityThroughput = "TEUkm"
	TocThroughputTkm   TocCo2eIntensityThroughput = "tkm"
)

// Values lists every unit.
func (TocCo2eIntensityThroughput) Values() []TocCo2eIntensityThroughput {
	return []TocCo2eIntensityThroughput{TocThroughputTEUkm, TocThroughputTkm}
}

// Validate checks membership.
func (t TocCo2eIntensityThroughput) Validate() error {
	return pact.CheckEnum(t, "TocCo2eIntensityThroughput", t.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TocCo2eIntensityThroughput) UnmarshalJSON(data []byte) error {
	return decodeInto(t, data, "TocCo2eIntensityThroughput", t.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (t TocCo2eIntensityThroughput) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(t.Values())
}

// HocCo2eIntensityThroughput is the throughput unit a HOC's intensity is
// expressed per.
type HocCo2eIntensityThroughput string

// HOC throughput units.
const (
	HocThroughputTEU    HocCo2eIntensityThroughput = "TEU"
	HocThroughputTonnes HocCo2eIntensityThroughput = "tonnes"
)

// Values lists every unit.
func (HocCo2eIntensityThroughput) Values() []HocCo2eIntensityThroughput {
	return []HocCo2eIntensityThroughput{HocThroughputTEU, HocThroughputTonnes}
}

// Validate checks membership.
func (t HocCo2eIntensityThroughput) Validate() error {
	return pact.CheckEnum(t, "HocCo2eIntensityThroughput", t.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *HocCo2eIntensityThroughput) UnmarshalJSON(data []byte) error {
	return decodeInto(t, data, "HocCo2eIntensityThroughput", t.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (t HocCo2eIntensityThroughput) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(t.Values())
}

// Certification is a standard an operator category is certified against.
type Certification string

// Certifications.
const (
	CertificationISO14083 Certification = "ISO14083:2023"
	CertificationGLECv2   Certification = "GLECv2"
	CertificationGLECv3   Certification = "GLECv3"
	CertificationGLECv31  Certification = "GLECv3.1"
)

// Values lists every certification.
func (Certification) Values() []Certification {
	return []Certification{CertificationISO14083, CertificationGLECv2, CertificationGLECv3, CertificationGLECv31}
}

// Validate checks membership.
func (c Certification) Validate() error { return pact.CheckEnum(c, "Certification", c.Values()) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *Certification) UnmarshalJSON(data []byte) error {
	return decodeInto(c, data, "Certification", c.Values())
}

// JSONSchema implements jsonschema.Schemer.
func (c Certification) JSONSchema(*jsonschema.Reflector) *jsonschema.Schema {
	return jsonschema.Enum(c.Values())
}
