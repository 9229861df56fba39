package ileap

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/rshade/ileap/pkg/pact"
)

// Fixed values of every footprint produced by ToPCF.
const (
	PACTSpecVersion      = "2.2.0"
	ExtensionSpecVersion = "0.2.0"
	ProductCategoryCPC   = "83117"

	ExtensionSchemaBase    = "https://api.ileap.sine.dev/"
	ExtensionDocumentation = "https://sine-fdn.github.io/ileap-extension/"

	productURNPrefix = "urn:pathfinder:product:customcode:vendor-assigned:"

	// referencePeriod is the length of the reference period, starting now.
	referencePeriod = 364 * 24 * time.Hour

	// hocDeclaredAmount is the kilograms a HOC intensity per tonne refers to.
	hocDeclaredAmount = 1000
)

// mappedFields are the footprint values that depend on the payload kind.
type mappedFields struct {
	schemaID    string
	productName string
	unit        pact.DeclaredUnit
	amount      decimal.Decimal
	emissions   decimal.Decimal
}

func (s ShipmentFootprint) pactFields() (mappedFields, error) {
	return mappedFields{
		schemaID:    "shipment-footprint",
		productName: "ShipmentFootprint with id " + s.ShipmentID,
		unit:        pact.DeclaredUnitTonKilometer,
		amount:      s.TransportActivity(),
		emissions:   s.CO2eWTW(),
	}, nil
}

func (t Toc) pactFields() (mappedFields, error) {
	return mappedFields{
		schemaID:    "toc",
		productName: "TOC with ID " + t.TocID,
		unit:        pact.DeclaredUnitTonKilometer,
		amount:      decimal.NewFromInt(1),
		emissions:   t.CO2eIntensityWTW.Decimal(),
	}, nil
}

func (h Hoc) pactFields() (mappedFields, error) {
	if h.CO2eIntensityThroughput != HocThroughputTonnes {
		return mappedFields{}, fmt.Errorf("%w: HOC %s is expressed per %s", ErrUnsupportedThroughputUnit,
			h.HocID, h.CO2eIntensityThroughput)
	}
	return mappedFields{
		schemaID:    "hoc",
		productName: "HOC with ID " + h.HocID,
		unit:        pact.DeclaredUnitKilogram,
		amount:      decimal.NewFromInt(hocDeclaredAmount),
		emissions:   h.CO2eIntensityWTW.Decimal(),
	}, nil
}

// DataSchemaURL returns the published schema URL of a payload kind's
// extension.
func DataSchemaURL(schemaID string) string {
	return ExtensionSchemaBase + schemaID + ".json"
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// IDGenerator supplies footprint ids.
type IDGenerator interface {
	NewPfID() (pact.PfID, error)
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() (pact.PfID, error)

// NewPfID implements IDGenerator.
func (f IDGeneratorFunc) NewPfID() (pact.PfID, error) { return f() }

type mapOptions struct {
	clock Clock
	ids   IDGenerator
}

// Option configures ToPCF.
type Option func(*mapOptions)

// WithClock sets the clock the creation time and reference period are
// taken from.
func WithClock(c Clock) Option {
	return func(o *mapOptions) { o.clock = c }
}

// WithIDGenerator sets the source of footprint ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *mapOptions) { o.ids = g }
}

// ToPCF wraps payload in a PACT ProductFootprint. The company name and URN
// identify the reporting company; factors lists the IPCC assessment reports
// used, defaulting to AR5 when empty.
//
// The declared unit, amount and emissions depend on the payload kind:
// shipments are declared per ton kilometer over the sum of their legs, TOCs
// per ton kilometer and HOCs per 1000 kilogram. A HOC expressed per TEU
// fails with ErrUnsupportedThroughputUnit.
func ToPCF[T Payload](
	payload T,
	companyName, companyURN string,
	factors []pact.CharacterizationFactors,
	opts ...Option,
) (*pact.ProductFootprint[T], error) {
	o := mapOptions{
		clock: ClockFunc(time.Now),
		ids:   IDGeneratorFunc(pact.NewPfID),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := payload.Validate(); err != nil {
		return nil, pact.Within("data", err)
	}
	name, err := pact.NewNonEmptyString(companyName)
	if err != nil {
		return nil, pact.Within("companyName", err)
	}
	urn, err := pact.NewUrn(companyURN)
	if err != nil {
		return nil, pact.Within("companyIds", err)
	}
	companyIDs, err := pact.NewCompanyIDSet(urn)
	if err != nil {
		return nil, pact.Within("companyIds", err)
	}
	characterization, sources, err := pact.ResolveCharacterizationFactors(factors)
	if err != nil {
		return nil, pact.Within("pcf.characterizationFactors", err)
	}

	fields, err := payload.pactFields()
	if err != nil {
		return nil, err
	}
	amount, err := pact.NewStrictlyPositiveDecimal(fields.amount)
	if err != nil {
		return nil, pact.Within("pcf.unitaryProductAmount", err)
	}
	emissions, err := pact.NewPositiveDecimal(fields.emissions)
	if err != nil {
		return nil, pact.Within("pcf.pCfExcludingBiogenic", err)
	}
	productURN, err := pact.NewUrn(productURNPrefix + string(payload.Kind()) + ":" + payload.ID())
	if err != nil {
		return nil, pact.Within("productIds", err)
	}
	productIDs, err := pact.NewProductIDSet(productURN)
	if err != nil {
		return nil, pact.Within("productIds", err)
	}
	productName, err := pact.NewNonEmptyString(fields.productName)
	if err != nil {
		return nil, pact.Within("productNameCompany", err)
	}

	id, err := o.ids.NewPfID()
	if err != nil {
		return nil, fmt.Errorf("generating footprint id: %w", err)
	}
	now := o.clock.Now().UTC()
	documentation := ExtensionDocumentation

	pf := &pact.ProductFootprint[T]{
		ID:                 id,
		SpecVersion:        pact.SpecVersionString(PACTSpecVersion),
		Version:            1,
		Created:            now,
		Status:             pact.PfStatusActive,
		CompanyName:        name,
		CompanyIDs:         companyIDs,
		ProductDescription: "",
		ProductIDs:         productIDs,
		ProductCategoryCpc: pact.NonEmptyString(ProductCategoryCPC),
		ProductNameCompany: productName,
		Comment:            "",
		PCF: pact.CarbonFootprint{
			DeclaredUnit:                       fields.unit,
			UnitaryProductAmount:               amount,
			PCfExcludingBiogenic:               emissions,
			FossilGhgEmissions:                 emissions,
			FossilCarbonContent:                pact.MustPositiveDecimal("0"),
			BiogenicCarbonContent:              pact.MustPositiveDecimal("0"),
			CharacterizationFactors:            characterization,
			IpccCharacterizationFactorsSources: sources,
			CrossSectoralStandardsUsed:         pact.CrossSectoralStandardSet{pact.CrossSectoralISO14083},
			ReferencePeriodStart:               now,
			ReferencePeriodEnd:                 now.Add(referencePeriod),
			GeographicScope:                    pact.GlobalScope{},
			ExemptedEmissionsPercent:           0,
			PackagingEmissionsIncluded:         false,
		},
		Extensions: []pact.DataModelExtension[T]{{
			SpecVersion:   pact.SpecVersionString(ExtensionSpecVersion),
			DataSchema:    DataSchemaURL(fields.schemaID),
			Documentation: &documentation,
			Data:          payload,
		}},
	}
	if err := pf.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("kind", string(payload.Kind())).
		Str("payload_id", payload.ID()).
		Str("pf_id", id.String()).
		Str("amount", amount.String()).
		Str("emissions", emissions.String()).
		Msg("mapped payload to product footprint")
	return pf, nil
}
