// Package demodata generates random but internally consistent iLEAP
// footprints for demonstrations and tests.
//
// Each generated shipment is a chain of legs alternating between transport
// operations and hub operations. The TOCs and HOCs the legs refer to are
// generated alongside and mapped to footprints of their own, so the output
// holds the shipments first, then their TOCs, then their HOCs.
package demodata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

// Generation defaults and ranges.
const (
	DefaultSize        = 10
	DefaultCompanyName = "SINE Foundation"
	DefaultCompanyURN  = "urn:sine:example"

	// MaxSize bounds both the number of shipments and legs per shipment.
	MaxSize = 255

	minMassKg     = 100
	maxMassKg     = 40000
	minDistanceKm = 10
	maxDistanceKm = 2000
	maxStartDays  = 30

	// kmPerHour is the average speed used to derive arrival times.
	kmPerHour  = 100
	kgPerTonne = 1000

	maxCarriers  = 3
	maxFeedstock = 2
)

// ErrInvalidSize indicates a size outside [1, MaxSize].
var ErrInvalidSize = errors.New("demo size must be between 1 and 255")

// Options configures a Generator.
type Options struct {
	// Size bounds the number of shipments and the legs of each shipment.
	Size int
	// Seed makes the output reproducible together with Clock.
	Seed uint64
	// Clock supplies the creation time of footprints and the first departure.
	Clock ileap.Clock

	CompanyName string
	CompanyURN  string
	Factors     []pact.CharacterizationFactors
}

// DefaultOptions returns the options of the public demo data set, seeded
// from the current time.
func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		Seed:        uint64(time.Now().UnixNano()),
		Clock:       ileap.ClockFunc(time.Now),
		CompanyName: DefaultCompanyName,
		CompanyURN:  DefaultCompanyURN,
		Factors:     []pact.CharacterizationFactors{pact.AR6},
	}
}

// Dataset is the output of one generation run.
type Dataset struct {
	Shipments []*pact.ProductFootprint[ileap.AnyPayload]
	TOCs      []*pact.ProductFootprint[ileap.AnyPayload]
	HOCs      []*pact.ProductFootprint[ileap.AnyPayload]
}

// Footprints returns shipments, then TOCs, then HOCs.
func (d Dataset) Footprints() []*pact.ProductFootprint[ileap.AnyPayload] {
	out := make([]*pact.ProductFootprint[ileap.AnyPayload], 0, len(d.Shipments)+len(d.TOCs)+len(d.HOCs))
	out = append(out, d.Shipments...)
	out = append(out, d.TOCs...)
	return append(out, d.HOCs...)
}

// Generator produces demo data sets. It is not safe for concurrent use.
type Generator struct {
	opts    Options
	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy
	source  *rand.ChaCha8
	now     time.Time
	logger  zerolog.Logger
}

// New returns a Generator for opts. Zero-valued company fields and clock
// fall back to the defaults.
func New(opts Options, logger zerolog.Logger) (*Generator, error) {
	if opts.Size < 1 || opts.Size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, opts.Size)
	}
	defaults := DefaultOptions()
	if opts.Clock == nil {
		opts.Clock = defaults.Clock
	}
	if opts.CompanyName == "" {
		opts.CompanyName = defaults.CompanyName
	}
	if opts.CompanyURN == "" {
		opts.CompanyURN = defaults.CompanyURN
	}

	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], opts.Seed)
	source := rand.NewChaCha8(seed)
	rng := rand.New(source) //nolint:gosec // G404: reproducible demo data, not a security boundary

	return &Generator{
		opts:    opts,
		rng:     rng,
		entropy: ulid.Monotonic(source, 0),
		source:  source,
		now:     opts.Clock.Now().UTC(),
		logger:  logger.With().Str("component", "demodata").Uint64("seed", opts.Seed).Logger(),
	}, nil
}

// Generate builds a data set of 1 to Size shipments with 1 to Size legs
// each. Shipments with more than two legs get hub legs in between, never
// two in a row.
func (g *Generator) Generate() (Dataset, error) {
	var ds Dataset
	shipments := 1 + g.rng.IntN(g.opts.Size)
	for range shipments {
		if err := g.shipment(&ds); err != nil {
			return Dataset{}, err
		}
	}
	g.logger.Debug().
		Int("shipments", len(ds.Shipments)).
		Int("tocs", len(ds.TOCs)).
		Int("hocs", len(ds.HOCs)).
		Msg("generated demo data")
	return ds, nil
}

// Generate runs a Generator for opts once.
func Generate(opts Options, logger zerolog.Logger) (Dataset, error) {
	g, err := New(opts, logger)
	if err != nil {
		return Dataset{}, err
	}
	return g.Generate()
}

func (g *Generator) shipment(ds *Dataset) error {
	shipmentID := g.id("shipment-")
	massKg := decimal.NewFromInt(int64(minMassKg + g.rng.IntN(maxMassKg-minMassKg+1)))
	legs := 1 + g.rng.IntN(g.opts.Size)

	departure := g.now.Add(time.Duration(g.rng.IntN(maxStartDays)) * 24 * time.Hour).Truncate(time.Hour)
	tces := make([]ileap.Tce, 0, legs)
	var prev []string
	for i := range legs {
		previousWasHub := i > 0 && tces[i-1].IsHub()
		hub := i > 0 && i < legs-1 && !previousWasHub && g.rng.IntN(2) == 0

		var (
			tce ileap.Tce
			err error
		)
		if hub {
			tce, err = g.hubLeg(ds, shipmentID, massKg, departure)
		} else {
			tce, err = g.transportLeg(ds, shipmentID, massKg, departure)
		}
		if err != nil {
			return err
		}
		if len(prev) > 0 {
			tce.PrevTceIDs = append([]string(nil), prev...)
		}
		prev = append(prev, tce.TceID)
		departure = *tce.ArrivalAt
		tces = append(tces, tce)
	}

	shipment := ileap.ShipmentFootprint{
		Mass:       massKg.String(),
		ShipmentID: shipmentID,
		TCEs:       pact.NonEmptyVec[ileap.Tce](tces),
	}
	pf, err := g.toPCF(shipment)
	if err != nil {
		return fmt.Errorf("shipment %s: %w", shipmentID, err)
	}
	ds.Shipments = append(ds.Shipments, pf)
	return nil
}

func (g *Generator) baseLeg(shipmentID string, massKg decimal.Decimal, departure time.Time) ileap.Tce {
	consignment := g.id("consignment-")
	dep := departure
	tce := ileap.Tce{
		TceID:         g.id("tce-"),
		ShipmentID:    shipmentID,
		ConsignmentID: &consignment,
		Mass:          pact.NewDecimal(massKg),
		DepartureAt:   &dep,
	}
	if g.rng.IntN(2) == 0 {
		incoterms := pick(g.rng, ileap.Incoterms("").Values())
		tce.Incoterms = &incoterms
	}
	if g.rng.IntN(2) == 0 {
		packaging := pick(g.rng, []ileap.PackagingOrTrEqType{
			ileap.PackagingBox, ileap.PackagingPallet, ileap.PackagingContainer,
		})
		tce.PackagingOrTrEqType = &packaging
	}
	return tce
}

func (g *Generator) transportLeg(
	ds *Dataset, shipmentID string, massKg decimal.Decimal, departure time.Time,
) (ileap.Tce, error) {
	toc := g.toc()
	tce := g.baseLeg(shipmentID, massKg, departure)
	tce.TocID = &toc.TocID

	km := decimal.NewFromInt(int64(minDistanceKm + g.rng.IntN(maxDistanceKm-minDistanceKm+1)))
	tce.Distance = g.distance(km)
	activity := massKg.Mul(km).Div(decimal.NewFromInt(kgPerTonne)).Round(2)
	tce.TransportActivity = pact.NewDecimal(activity)
	tce.CO2eWTW = pact.NewDecimal(toc.CO2eIntensityWTW.Decimal().Mul(activity).Round(2))
	tce.CO2eTTW = pact.NewDecimal(toc.CO2eIntensityTTW.Decimal().Mul(activity).Round(2))

	hours := km.Div(decimal.NewFromInt(kmPerHour)).Round(0).IntPart()
	arrival := departure.Add(time.Duration(hours) * time.Hour)
	tce.ArrivalAt = &arrival

	pf, err := g.toPCF(toc)
	if err != nil {
		return ileap.Tce{}, fmt.Errorf("toc %s: %w", toc.TocID, err)
	}
	ds.TOCs = append(ds.TOCs, pf)
	return tce, nil
}

func (g *Generator) hubLeg(
	ds *Dataset, shipmentID string, massKg decimal.Decimal, departure time.Time,
) (ileap.Tce, error) {
	hoc := g.hoc()
	tce := g.baseLeg(shipmentID, massKg, departure)
	tce.HocID = &hoc.HocID

	zero := pact.NewDecimal(decimal.Zero)
	tce.Distance = ileap.NewActualDistance(zero)
	tce.TransportActivity = zero
	tonnes := massKg.Div(decimal.NewFromInt(kgPerTonne))
	tce.CO2eWTW = pact.NewDecimal(hoc.CO2eIntensityWTW.Decimal().Mul(tonnes).Round(2))
	tce.CO2eTTW = pact.NewDecimal(hoc.CO2eIntensityTTW.Decimal().Mul(tonnes).Round(2))
	arrival := departure
	tce.ArrivalAt = &arrival

	pf, err := g.toPCF(hoc)
	if err != nil {
		return ileap.Tce{}, fmt.Errorf("hoc %s: %w", hoc.HocID, err)
	}
	ds.HOCs = append(ds.HOCs, pf)
	return tce, nil
}

func (g *Generator) distance(km decimal.Decimal) ileap.GlecDistance {
	d := pact.NewDecimal(km)
	switch g.rng.IntN(3) {
	case 0:
		return ileap.NewActualDistance(d)
	case 1:
		return ileap.NewGCDDistance(d)
	default:
		return ileap.NewSFDDistance(d)
	}
}

func (g *Generator) toc() ileap.Toc {
	mode := pick(g.rng, ileap.TransportMode("").Values())
	wtw, ttw := g.intensities()
	toc := ileap.Toc{
		TocID:                   g.id("toc-"),
		IsVerified:              g.rng.IntN(2) == 0,
		IsAccredited:            g.rng.IntN(2) == 0,
		Mode:                    mode,
		LoadFactor:              g.factor(),
		EmptyDistanceFactor:     g.factor(),
		EnergyCarriers:          g.carriers(),
		CO2eIntensityWTW:        wtw,
		CO2eIntensityTTW:        ttw,
		CO2eIntensityThroughput: pick(g.rng, ileap.TocCo2eIntensityThroughput("").Values()),
	}
	if g.rng.IntN(2) == 0 {
		temp := pick(g.rng, ileap.TemperatureControl("").Values())
		toc.TemperatureControl = &temp
	}
	if mode == ileap.TransportModeRoad && g.rng.IntN(2) == 0 {
		seq := pick(g.rng, ileap.TruckLoadingSequence("").Values())
		toc.TruckLoadingSequence = &seq
	}
	if mode == ileap.TransportModeAir {
		option := pick(g.rng, ileap.AirShippingOption("").Values())
		length := pick(g.rng, ileap.FlightLength("").Values())
		toc.AirShippingOption, toc.FlightLength = &option, &length
	}
	if g.rng.IntN(2) == 0 {
		dqi := ileap.GlecDataQualityIndex(g.rng.IntN(5))
		toc.GlecDataQualityIndex = &dqi
	}
	return toc
}

func (g *Generator) hoc() ileap.Hoc {
	hubType := pick(g.rng, ileap.HubType("").Values())
	inbound, outbound := g.hubModes(hubType)
	wtw, ttw := g.intensities()
	hoc := ileap.Hoc{
		HocID:                   g.id("hoc-"),
		IsVerified:              g.rng.IntN(2) == 0,
		IsAccredited:            g.rng.IntN(2) == 0,
		HubType:                 hubType,
		InboundTransportMode:    inbound,
		OutboundTransportMode:   outbound,
		EnergyCarriers:          g.carriers(),
		CO2eIntensityWTW:        wtw,
		CO2eIntensityTTW:        ttw,
		CO2eIntensityThroughput: ileap.HocThroughputTonnes,
	}
	if g.rng.IntN(2) == 0 {
		temp := pick(g.rng, ileap.TemperatureControl("").Values())
		hoc.TemperatureControl = &temp
	}
	return hoc
}

// hubModes returns inbound and outbound modes that make sense for the hub:
// transshipment changes mode, warehouses are served by road and container
// terminals touch the sea on at least one side.
func (g *Generator) hubModes(hubType ileap.HubType) (*ileap.TransportMode, *ileap.TransportMode) {
	modes := ileap.TransportMode("").Values()
	in, out := pick(g.rng, modes), pick(g.rng, modes)
	switch hubType {
	case ileap.HubTransshipment, ileap.HubStorageAndTransshipment:
		for out == in {
			out = pick(g.rng, modes)
		}
	case ileap.HubWarehouse:
		in, out = ileap.TransportModeRoad, ileap.TransportModeRoad
	case ileap.HubMaritimeContainerTerminal:
		if g.rng.IntN(2) == 0 {
			in = ileap.TransportModeSea
		} else {
			out = ileap.TransportModeSea
		}
	case ileap.HubLiquidBulkTerminal:
	}
	return &in, &out
}

// intensities returns a WTW intensity and a TTW intensity not above it.
func (g *Generator) intensities() (pact.Decimal, pact.Decimal) {
	wtw := decimal.New(int64(g.rng.IntN(10000)), -2)
	ttw := wtw.Mul(decimal.New(int64(g.rng.IntN(101)), -2)).Round(2)
	return pact.NewDecimal(wtw), pact.NewDecimal(ttw)
}

func (g *Generator) factor() *string {
	s := decimal.New(int64(1+g.rng.IntN(10)), -1).String()
	return &s
}

func (g *Generator) carriers() pact.NonEmptyVec[ileap.EnergyCarrier] {
	n := 1 + g.rng.IntN(maxCarriers)
	out := make(pact.NonEmptyVec[ileap.EnergyCarrier], n)
	for i := range out {
		kind := pick(g.rng, ileap.EnergyCarrierType("").Values())
		wtw, ttw := g.intensities()
		carrier := ileap.EnergyCarrier{
			EnergyCarrier:     kind,
			Feedstocks:        g.feedstocks(kind),
			EmissionFactorWTW: wtw,
			EmissionFactorTTW: ttw,
		}
		if g.rng.IntN(2) == 0 {
			unit := pick(g.rng, ileap.EnergyConsumptionUnit("").Values())
			amount := pact.NewDecimal(decimal.New(int64(g.rng.IntN(100000)), -2))
			carrier.EnergyConsumption, carrier.EnergyConsumptionUnit = &amount, &unit
		}
		out[i] = carrier
	}
	return out
}

// feedstocks picks compatible feedstocks whose shares add up to at most one.
func (g *Generator) feedstocks(kind ileap.EnergyCarrierType) []ileap.Feedstock {
	n := g.rng.IntN(maxFeedstock + 1)
	if n == 0 {
		return nil
	}
	compatible := kind.CompatibleFeedstocks()
	remaining := 10
	out := make([]ileap.Feedstock, 0, n)
	for range n {
		f := ileap.Feedstock{Feedstock: pick(g.rng, compatible)}
		if g.rng.IntN(2) == 0 {
			tenths := g.rng.IntN(remaining + 1)
			remaining -= tenths
			share := pact.NewDecimal(decimal.New(int64(tenths), -1))
			f.FeedstockPercentage = &share
		}
		out = append(out, f)
	}
	return out
}

func (g *Generator) id(prefix string) string {
	return prefix + strings.ToLower(ulid.MustNew(ulid.Timestamp(g.now), g.entropy).String())
}

func (g *Generator) newPfID() (pact.PfID, error) {
	u, err := uuid.NewRandomFromReader(g.source)
	if err != nil {
		return pact.PfID{}, fmt.Errorf("generating footprint id: %w", err)
	}
	return pact.PfIDFromUUID(u)
}

func (g *Generator) toPCF(p ileap.Payload) (*pact.ProductFootprint[ileap.AnyPayload], error) {
	return ileap.ToPCF(ileap.Any(p), g.opts.CompanyName, g.opts.CompanyURN, g.opts.Factors,
		ileap.WithClock(g.opts.Clock),
		ileap.WithIDGenerator(ileap.IDGeneratorFunc(g.newPfID)),
	)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
