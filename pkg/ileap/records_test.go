package ileap

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/pact"
)

func strPtr(s string) *string { return &s }

func railLeg() Tce {
	return Tce{
		TceID:             "tce-1",
		TocID:             strPtr("toc-rail-1"),
		ShipmentID:        "shipment-1",
		Mass:              pact.MustDecimal("40000"),
		Distance:          NewActualDistance(pact.MustDecimal("423")),
		TransportActivity: pact.MustDecimal("16920"),
		CO2eWTW:           pact.MustDecimal("118.44"),
		CO2eTTW:           pact.MustDecimal("0"),
	}
}

func TestTceValidate(t *testing.T) {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	earlier := departure.Add(-time.Hour)

	tests := []struct {
		name      string
		mutate    func(*Tce)
		wantField string
	}{
		{name: "valid toc leg", mutate: func(*Tce) {}},
		{
			name: "valid hub leg",
			mutate: func(l *Tce) {
				l.TocID, l.HocID = nil, strPtr("hoc-1")
				l.TransportActivity = pact.MustDecimal("0")
			},
		},
		{name: "both operators", mutate: func(l *Tce) { l.HocID = strPtr("hoc-1") }, wantField: "tocId"},
		{name: "no operator", mutate: func(l *Tce) { l.TocID = nil }, wantField: "tocId"},
		{
			name:      "hub leg with activity",
			mutate:    func(l *Tce) { l.TocID, l.HocID = nil, strPtr("hoc-1") },
			wantField: "transportActivity",
		},
		{
			name:      "arrives before departure",
			mutate:    func(l *Tce) { l.DepartureAt, l.ArrivalAt = &departure, &earlier },
			wantField: "arrivalAt",
		},
		{name: "empty id", mutate: func(l *Tce) { l.TceID = "" }, wantField: "tceId"},
		{
			name:      "bad origin",
			mutate:    func(l *Tce) { l.Origin = &Location{City: "Hamburg", Country: "de"} },
			wantField: "origin.country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := railLeg()
			tt.mutate(&leg)
			err := leg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *pact.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestTceDecode(t *testing.T) {
	input := `{
		"tceId": "tce-1",
		"tocId": "toc-rail-1",
		"shipmentId": "shipment-1",
		"mass": "40000",
		"distance": {"actual": "423"},
		"transportActivity": "16920",
		"co2eWTW": "118.44",
		"co2eTTW": "0",
		"incoterms": "FCA"
	}`

	var leg Tce
	require.NoError(t, json.Unmarshal([]byte(input), &leg))
	assert.Equal(t, "toc-rail-1", leg.OperatorID())
	assert.False(t, leg.IsHub())
	require.NotNil(t, leg.Incoterms)
	assert.Equal(t, IncotermsFCA, *leg.Incoterms)

	var missing Tce
	err := json.Unmarshal([]byte(`{"tceId":"x","tocId":"t","shipmentId":"s"}`), &missing)
	assert.ErrorIs(t, err, pact.ErrValidation)
}

func TestShipmentValidate(t *testing.T) {
	second := railLeg()
	second.TceID = "tce-2"

	tests := []struct {
		name    string
		legs    pact.NonEmptyVec[Tce]
		wantErr bool
	}{
		{name: "valid", legs: pact.MustNonEmptyVec(railLeg(), second)},
		{name: "no legs", legs: pact.NonEmptyVec[Tce]{}, wantErr: true},
		{name: "duplicate leg id", legs: pact.MustNonEmptyVec(railLeg(), railLeg()), wantErr: true},
		{
			name: "foreign leg",
			legs: func() pact.NonEmptyVec[Tce] {
				other := second
				other.ShipmentID = "shipment-2"
				return pact.MustNonEmptyVec(railLeg(), other)
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShipmentFootprint{Mass: "40000", ShipmentID: "shipment-1", TCEs: tt.legs}
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, pact.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "33840", s.TransportActivity().String())
			assert.Equal(t, "236.88", s.CO2eWTW().String())
		})
	}
}

func TestEnergyCarrierFeedstockShare(t *testing.T) {
	share := func(s string) *pact.Decimal {
		d := pact.MustDecimal(s)
		return &d
	}

	tests := []struct {
		name    string
		shares  []string
		wantErr bool
	}{
		{name: "no shares"},
		{name: "whole", shares: []string{"0.4", "0.6"}},
		{name: "partial", shares: []string{"0.3"}},
		{name: "over one", shares: []string{"0.7", "0.6"}, wantErr: true},
		{name: "single over one", shares: []string{"1.2"}, wantErr: true},
		{name: "negative", shares: []string{"-0.1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := EnergyCarrier{
				EnergyCarrier:     EnergyDiesel,
				EmissionFactorWTW: pact.MustDecimal("4.13"),
				EmissionFactorTTW: pact.MustDecimal("3.17"),
			}
			for _, s := range tt.shares {
				carrier.Feedstocks = append(carrier.Feedstocks, Feedstock{
					Feedstock:           FeedstockFossil,
					FeedstockPercentage: share(s),
				})
			}
			err := carrier.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, pact.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTocAirOptions(t *testing.T) {
	belly := AirShippingBellyFreight
	toc := Toc{
		TocID: "toc-air-1",
		Mode:  TransportModeAir,
		EnergyCarriers: pact.MustNonEmptyVec(EnergyCarrier{
			EnergyCarrier:     EnergyAviationFuel,
			EmissionFactorWTW: pact.MustDecimal("3.8"),
			EmissionFactorTTW: pact.MustDecimal("3.1"),
		}),
		CO2eIntensityWTW:        pact.MustDecimal("1.2"),
		CO2eIntensityTTW:        pact.MustDecimal("0.9"),
		CO2eIntensityThroughput: TocThroughputTkm,
		AirShippingOption:       &belly,
	}
	require.NoError(t, toc.Validate())

	toc.Mode = TransportModeRoad
	var ve *pact.ValidationError
	require.ErrorAs(t, toc.Validate(), &ve)
	assert.Equal(t, "airShippingOption", ve.Field)
}

func TestTadValidate(t *testing.T) {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	base := func() Tad {
		return Tad{
			ActivityID:     "tad-1",
			ConsignmentIDs: []string{"c-1", "c-2"},
			Distance:       NewGCDDistance(pact.MustDecimal("120")),
			Origin:         Location{City: "Hamburg", Country: "DE"},
			Destination:    Location{City: "Berlin", Country: "DE"},
			DepartureAt:    departure,
			ArrivalAt:      departure.Add(2 * time.Hour),
			Mode:           TransportModeRoad,
		}
	}

	require.NoError(t, base().Validate())

	dup := base()
	dup.ConsignmentIDs = []string{"c-1", "c-1"}
	assert.ErrorIs(t, dup.Validate(), pact.ErrValidation)

	late := base()
	late.ArrivalAt = departure.Add(-time.Minute)
	assert.ErrorIs(t, late.Validate(), pact.ErrValidation)

	mixed := base()
	temp := TadTempControl("mixed")
	mixed.TemperatureControl = &temp
	assert.ErrorIs(t, mixed.Validate(), pact.ErrValidation)
}

func TestShipmentDecode_NullRequiredMembers(t *testing.T) {
	leg, err := json.Marshal(railLeg())
	require.NoError(t, err)
	carrier := `[{"energyCarrier":"Diesel","emissionFactorWTW":"1","emissionFactorTTW":"1"}]`

	tests := []struct {
		name  string
		input string
		into  any
	}{
		{
			name:  "shipment mass",
			input: `{"mass":null,"shipmentId":"shipment-1","tces":[` + string(leg) + `]}`,
			into:  &ShipmentFootprint{},
		},
		{
			name:  "shipment id",
			input: `{"mass":"40000","shipmentId":null,"tces":[` + string(leg) + `]}`,
			into:  &ShipmentFootprint{},
		},
		{
			name: "toc verification flags",
			input: `{"tocId":"toc-1","isVerified":null,"isAccredited":null,"mode":"Rail","energyCarriers":` + carrier +
				`,"co2eIntensityWTW":"1","co2eIntensityTTW":"1","co2eIntensityThroughput":"tkm"}`,
			into: &Toc{},
		},
		{
			name: "hoc hub type",
			input: `{"hocId":"hoc-1","isVerified":true,"isAccredited":true,"hubType":null,"energyCarriers":` + carrier +
				`,"co2eIntensityWTW":"1","co2eIntensityTTW":"1","co2eIntensityThroughput":"tonnes"}`,
			into: &Hoc{},
		},
		{name: "location city", input: `{"city":null,"country":"DE"}`, into: &Location{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.input), tt.into)
			assert.ErrorIs(t, err, pact.ErrValidation)
			assert.ErrorIs(t, err, wire.ErrMissingField)
		})
	}
}

func TestShipmentValidate_EmptyMass(t *testing.T) {
	s := ShipmentFootprint{ShipmentID: "shipment-1", TCEs: pact.MustNonEmptyVec(railLeg())}

	var ve *pact.ValidationError
	require.ErrorAs(t, s.Validate(), &ve)
	assert.Equal(t, "mass", ve.Field)

	leg, err := json.Marshal(railLeg())
	require.NoError(t, err)
	var decoded ShipmentFootprint
	err = json.Unmarshal([]byte(`{"mass":"","shipmentId":"shipment-1","tces":[`+string(leg)+`]}`), &decoded)
	assert.ErrorIs(t, err, pact.ErrValidation)
}

func decPtr(s string) *pact.Decimal {
	d := pact.MustDecimal(s)
	return &d
}

func fullLocation() Location {
	iata := IataCode("HAM")
	locode := Locode("DEHAM")
	uic := UicCode("80")
	return Location{
		Street:  strPtr("Am Sandtorkai 1"),
		Zip:     strPtr("20457"),
		City:    "Hamburg",
		Country: pact.MustISO3166CC("DE"),
		Iata:    &iata,
		Locode:  &locode,
		Uic:     &uic,
		Lat:     decPtr("53.5436"),
		Lng:     decPtr("9.9885"),
	}
}

func fullCarrier() EnergyCarrier {
	unit := EnergyUnitLiter
	return EnergyCarrier{
		EnergyCarrier: EnergyHVO,
		Feedstocks: []Feedstock{
			{Feedstock: FeedstockCookingOil, FeedstockPercentage: decPtr("0.6"), RegionProvenance: strPtr("Europe")},
			{Feedstock: FeedstockFossil, FeedstockPercentage: decPtr("0.4")},
		},
		EnergyConsumption:     decPtr("120.5"),
		EnergyConsumptionUnit: &unit,
		EmissionFactorWTW:     pact.MustDecimal("0.54"),
		EmissionFactorTTW:     pact.MustDecimal("0.03"),
	}
}

func TestRecordRoundTrip(t *testing.T) {
	departure := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	arrival := departure.Add(5 * time.Hour)
	origin, destination := fullLocation(), Location{City: "Berlin", Country: pact.MustISO3166CC("DE")}
	pallet := PackagingPallet
	amount := uint(12)
	refrigerated := TemperatureRefrigerated
	tadTemp := TadTempRefrigerated
	ftl := TruckLoadingFTL
	freighter := AirShippingFreighter
	longHaul := FlightLongHaul
	quality := GlecDataQualityIndex(2)
	road, rail := TransportModeRoad, TransportModeRail
	fca := IncotermsFCA
	palletAmount := pact.MustPositiveDecimal("12")

	leg := Tce{
		TceID:                 "tce-2",
		PrevTceIDs:            []string{"tce-1"},
		TocID:                 strPtr("toc-road-1"),
		ShipmentID:            "shipment-1",
		ConsignmentID:         strPtr("consignment-1"),
		Mass:                  pact.MustDecimal("40000"),
		PackagingOrTrEqType:   &pallet,
		PackagingOrTrEqAmount: &palletAmount,
		Distance:              NewSFDDistance(pact.MustDecimal("423")),
		Origin:                &origin,
		Destination:           &destination,
		TransportActivity:     pact.MustDecimal("16920"),
		DepartureAt:           &departure,
		ArrivalAt:             &arrival,
		FlightNo:              strPtr("LH8400"),
		VoyageNo:              strPtr("V-17"),
		Incoterms:             &fca,
		CO2eWTW:               pact.MustDecimal("1692.62"),
		CO2eTTW:               pact.MustDecimal("1505.88"),
		NOxTTW:                decPtr("1.2"),
		SOxTTW:                decPtr("0.03"),
		CH4TTW:                decPtr("0.01"),
		PMTTW:                 decPtr("0.002"),
	}

	tests := []struct {
		name string
		in   any
		out  func() any
	}{
		{name: "location", in: fullLocation(), out: func() any { return &Location{} }},
		{
			name: "feedstock",
			in:   Feedstock{Feedstock: FeedstockGrid, FeedstockPercentage: decPtr("1"), RegionProvenance: strPtr("DE")},
			out:  func() any { return &Feedstock{} },
		},
		{name: "energy carrier", in: fullCarrier(), out: func() any { return &EnergyCarrier{} }},
		{name: "tce", in: leg, out: func() any { return &Tce{} }},
		{
			name: "shipment",
			in: ShipmentFootprint{
				Mass:          "40000",
				Volume:        strPtr("80"),
				NumberOfItems: strPtr("33"),
				TypeOfItems:   strPtr("pallets"),
				ShipmentID:    "shipment-1",
				TCEs:          pact.MustNonEmptyVec(railLeg(), leg),
			},
			out: func() any { return &ShipmentFootprint{} },
		},
		{
			name: "road toc",
			in: Toc{
				TocID:                   "toc-road-1",
				IsVerified:              true,
				IsAccredited:            true,
				Certifications:          pact.MustNonEmptyVec(CertificationISO14083, CertificationGLECv31),
				Description:             strPtr("Refrigerated full truck load"),
				Mode:                    TransportModeRoad,
				LoadFactor:              strPtr("0.8"),
				EmptyDistanceFactor:     strPtr("0.2"),
				TemperatureControl:      &refrigerated,
				TruckLoadingSequence:    &ftl,
				EnergyCarriers:          pact.MustNonEmptyVec(fullCarrier()),
				CO2eIntensityWTW:        pact.MustDecimal("0.1"),
				CO2eIntensityTTW:        pact.MustDecimal("0.08"),
				CO2eIntensityThroughput: TocThroughputTkm,
				GlecDataQualityIndex:    &quality,
			},
			out: func() any { return &Toc{} },
		},
		{
			name: "air toc",
			in: Toc{
				TocID:                   "toc-air-1",
				Mode:                    TransportModeAir,
				AirShippingOption:       &freighter,
				FlightLength:            &longHaul,
				EnergyCarriers: pact.MustNonEmptyVec(EnergyCarrier{
					EnergyCarrier:     EnergyAviationFuel,
					EmissionFactorWTW: pact.MustDecimal("3.8"),
					EmissionFactorTTW: pact.MustDecimal("3.1"),
				}),
				CO2eIntensityWTW:        pact.MustDecimal("1.2"),
				CO2eIntensityTTW:        pact.MustDecimal("0.9"),
				CO2eIntensityThroughput: TocThroughputTkm,
			},
			out: func() any { return &Toc{} },
		},
		{
			name: "hoc",
			in: Hoc{
				HocID:                   "hoc-warehouse-1",
				Description:             strPtr("Cold store"),
				IsVerified:              true,
				Certifications:          pact.MustNonEmptyVec(CertificationGLECv3),
				HubType:                 HubWarehouse,
				TemperatureControl:      &refrigerated,
				HubLocation:             func() *Location { l := fullLocation(); return &l }(),
				InboundTransportMode:    &road,
				OutboundTransportMode:   &rail,
				PackagingOrTrEqType:     &pallet,
				PackagingOrTrEqAmount:   &amount,
				EnergyCarriers:          pact.MustNonEmptyVec(fullCarrier()),
				CO2eIntensityWTW:        pact.MustDecimal("3.3"),
				CO2eIntensityTTW:        pact.MustDecimal("0"),
				CO2eIntensityThroughput: HocThroughputTonnes,
			},
			out: func() any { return &Hoc{} },
		},
		{
			name: "tad",
			in: Tad{
				ActivityID:            "tad-1",
				ConsignmentIDs:        []string{"consignment-1", "consignment-2"},
				Distance:              NewGCDDistance(pact.MustDecimal("120.5")),
				Mass:                  decPtr("8700"),
				LoadFactor:            decPtr("0.75"),
				EmptyDistanceFactor:   decPtr("0.1"),
				Origin:                fullLocation(),
				Destination:           destination,
				DepartureAt:           departure,
				ArrivalAt:             arrival,
				Mode:                  TransportModeRoad,
				PackagingOrTrEqType:   &pallet,
				PackagingOrTrEqAmount: &amount,
				EnergyCarriers:        pact.MustNonEmptyVec(fullCarrier()),
				TemperatureControl:    &tadTemp,
			},
			out: func() any { return &Tad{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)

			got := tt.out()
			require.NoError(t, json.Unmarshal(data, got))
			assert.Equal(t, tt.in, reflect.ValueOf(got).Elem().Interface())
		})
	}
}
