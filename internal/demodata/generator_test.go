package demodata_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/internal/demodata"
	"github.com/rshade/ileap/internal/schemagen"
	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

func testOptions(seed uint64) demodata.Options {
	opts := demodata.DefaultOptions()
	opts.Seed = seed
	opts.Clock = ileap.ClockFunc(func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) })
	return opts
}

func generate(t *testing.T, seed uint64) demodata.Dataset {
	t.Helper()
	ds, err := demodata.Generate(testOptions(seed), zerolog.Nop())
	require.NoError(t, err)
	return ds
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := json.Marshal(generate(t, 42).Footprints())
	require.NoError(t, err)
	b, err := json.Marshal(generate(t, 42).Footprints())
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))

	c, err := json.Marshal(generate(t, 43).Footprints())
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(c))
}

func TestGenerate_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, demodata.MaxSize + 1} {
		opts := testOptions(1)
		opts.Size = size
		_, err := demodata.New(opts, zerolog.Nop())
		assert.ErrorIs(t, err, demodata.ErrInvalidSize)
	}
}

func TestGenerate_Order(t *testing.T) {
	ds := generate(t, 7)
	all := ds.Footprints()
	require.Len(t, all, len(ds.Shipments)+len(ds.TOCs)+len(ds.HOCs))
	require.NotEmpty(t, ds.Shipments)

	for i, pf := range all {
		var want ileap.PayloadKind
		switch {
		case i < len(ds.Shipments):
			want = ileap.KindShipment
		case i < len(ds.Shipments)+len(ds.TOCs):
			want = ileap.KindTOC
		default:
			want = ileap.KindHOC
		}
		assert.Equal(t, want, pf.Extensions[0].Data.Kind(), "footprint %d", i)
		assert.Equal(t, pact.NonEmptyString(demodata.DefaultCompanyName), pf.CompanyName)
		assert.Equal(t, pact.AR6, pf.PCF.CharacterizationFactors)
	}
}

func TestGenerate_LegInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 4, 5, 99, 1234} {
		ds := generate(t, seed)

		tocs := make(map[string]ileap.Toc)
		for _, pf := range ds.TOCs {
			toc, ok := pf.Extensions[0].Data.Payload.(ileap.Toc)
			require.True(t, ok)
			tocs[toc.TocID] = toc
			if toc.Mode != ileap.TransportModeAir {
				assert.Nil(t, toc.AirShippingOption)
				assert.Nil(t, toc.FlightLength)
			}
		}
		hocs := make(map[string]ileap.Hoc)
		for _, pf := range ds.HOCs {
			hoc, ok := pf.Extensions[0].Data.Payload.(ileap.Hoc)
			require.True(t, ok)
			assert.Equal(t, ileap.HocThroughputTonnes, hoc.CO2eIntensityThroughput)
			hocs[hoc.HocID] = hoc
		}

		for _, pf := range ds.Shipments {
			shipment, ok := pf.Extensions[0].Data.Payload.(ileap.ShipmentFootprint)
			require.True(t, ok)
			legs := shipment.TCEs
			require.NotEmpty(t, legs)
			assert.False(t, legs[0].IsHub(), "first leg is a hub")
			assert.False(t, legs[len(legs)-1].IsHub(), "last leg is a hub")

			var prev []string
			for i, leg := range legs {
				assert.True(t, (leg.TocID != nil) != (leg.HocID != nil), "leg %s", leg.TceID)
				assert.Equal(t, shipment.ShipmentID, leg.ShipmentID)
				if i > 0 {
					assert.False(t, leg.IsHub() && legs[i-1].IsHub(), "adjacent hubs at %d", i)
					assert.Equal(t, prev, leg.PrevTceIDs)
				} else {
					assert.Empty(t, leg.PrevTceIDs)
				}
				prev = append(prev, leg.TceID)

				require.NotNil(t, leg.DepartureAt)
				require.NotNil(t, leg.ArrivalAt)
				assert.False(t, leg.ArrivalAt.Before(*leg.DepartureAt))

				if leg.IsHub() {
					hoc, ok := hocs[*leg.HocID]
					require.True(t, ok, "hoc %s not generated", *leg.HocID)
					assert.True(t, leg.TransportActivity.Decimal().IsZero())
					assert.Equal(t, ileap.DistanceActual, leg.Distance.Basis)
					assert.True(t, leg.Distance.Distance().Decimal().IsZero())
					tonnes := leg.Mass.Decimal().Div(decimal.NewFromInt(1000))
					want := hoc.CO2eIntensityWTW.Decimal().Mul(tonnes).Round(2)
					assert.True(t, want.Equal(leg.CO2eWTW.Decimal()), "hub co2e %s != %s", leg.CO2eWTW, want)
					continue
				}

				toc, ok := tocs[*leg.TocID]
				require.True(t, ok, "toc %s not generated", *leg.TocID)
				activity := leg.Mass.Decimal().Mul(leg.Distance.Distance().Decimal()).
					Div(decimal.NewFromInt(1000)).Round(2)
				assert.True(t, activity.Equal(leg.TransportActivity.Decimal()))
				want := toc.CO2eIntensityWTW.Decimal().Mul(activity).Round(2)
				assert.True(t, want.Equal(leg.CO2eWTW.Decimal()))
			}

			assert.True(t, shipment.TransportActivity().Equal(pf.PCF.UnitaryProductAmount.Decimal()))
			assert.True(t, shipment.CO2eWTW().Equal(pf.PCF.PCfExcludingBiogenic.Decimal()))
		}
	}
}

func TestGenerate_FeedstocksCompatible(t *testing.T) {
	ds := generate(t, 11)
	check := func(carriers pact.NonEmptyVec[ileap.EnergyCarrier]) {
		for _, c := range carriers {
			for _, f := range c.Feedstocks {
				assert.True(t, c.EnergyCarrier.Accepts(f.Feedstock), "%s with %s", c.EnergyCarrier, f.Feedstock)
			}
			assert.True(t, c.FeedstockShare().LessThanOrEqual(decimal.NewFromInt(1)))
		}
	}
	for _, pf := range ds.TOCs {
		check(pf.Extensions[0].Data.Payload.(ileap.Toc).EnergyCarriers)
	}
	for _, pf := range ds.HOCs {
		check(pf.Extensions[0].Data.Payload.(ileap.Hoc).EnergyCarriers)
	}
}

func TestGenerate_MatchesPublishedSchemas(t *testing.T) {
	v, err := schemagen.NewValidator()
	require.NoError(t, err)

	ds := generate(t, 2024)
	for _, pf := range ds.Footprints() {
		raw, err := json.Marshal(pf)
		require.NoError(t, err)

		schema := "pcf-" + map[ileap.PayloadKind]string{
			ileap.KindShipment: "shipment-footprint",
			ileap.KindTOC:      "toc",
			ileap.KindHOC:      "hoc",
		}[pf.Extensions[0].Data.Kind()]
		assert.NoError(t, v.Validate(schema, raw), pf.ID.String())
		assert.NoError(t, v.Validate(schemagen.DataModelSchema, raw), pf.ID.String())

		_, err = pact.Decode[ileap.AnyPayload](raw)
		assert.NoError(t, err)
	}
}
