package pact

import (
	"encoding/json"
	"reflect"
	"slices"
	"time"

	"github.com/rshade/ileap/pkg/jsonschema"
)

// ProductFootprint is the PACT v2 exchange envelope, generic over the payload
// carried by its data model extensions.
type ProductFootprint[T any] struct {
	ID                  PfID                    `json:"id"`
	SpecVersion         SpecVersionString       `json:"specVersion"`
	PrecedingPfIDs      NonEmptyPfIDVec         `json:"precedingPfIds,omitempty"`
	Version             VersionInteger          `json:"version"`
	Created             time.Time               `json:"created"`
	Updated             *time.Time              `json:"updated,omitempty"`
	Status              PfStatus                `json:"status"`
	StatusComment       *string                 `json:"statusComment,omitempty"`
	ValidityPeriodStart *time.Time              `json:"validityPeriodStart,omitempty"`
	ValidityPeriodEnd   *time.Time              `json:"validityPeriodEnd,omitempty"`
	CompanyName         NonEmptyString          `json:"companyName"`
	CompanyIDs          CompanyIDSet            `json:"companyIds"`
	ProductDescription  string                  `json:"productDescription"`
	ProductIDs          ProductIDSet            `json:"productIds"`
	ProductCategoryCpc  NonEmptyString          `json:"productCategoryCpc"`
	ProductNameCompany  NonEmptyString          `json:"productNameCompany"`
	Comment             string                  `json:"comment"`
	PCF                 CarbonFootprint         `json:"pcf"`
	Extensions          []DataModelExtension[T] `json:"extensions,omitempty"`
}

// productFootprintFields has the layout of ProductFootprint without its
// methods, so the custom decoder can delegate to encoding/json.
type productFootprintFields[T any] ProductFootprint[T]

//nolint:gochecknoglobals // immutable key list
// SupportedSpecVersions is the semver constraint a footprint's specVersion
// must meet. Only PACT version 2 envelopes are modelled.
const SupportedSpecVersions = "^2.0.0"

var productFootprintRequired = []string{
	"id", "specVersion", "version", "created", "status", "companyName", "companyIds",
	"productDescription", "productIds", "productCategoryCpc", "productNameCompany", "comment", "pcf",
}

// JSONSchemaName gives every instantiation the same definition name.
func (ProductFootprint[T]) JSONSchemaName() string { return "ProductFootprint" }

// UnmarshalJSON decodes and validates a footprint.
func (p *ProductFootprint[T]) UnmarshalJSON(data []byte) error {
	var fields productFootprintFields[T]
	if err := DecodeObject(data, "ProductFootprint", &fields, productFootprintRequired...); err != nil {
		return err
	}
	decoded := ProductFootprint[T](fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*p = decoded
	return nil
}

// Validate checks the envelope invariants and every nested value.
func (p *ProductFootprint[T]) Validate() error {
	if err := firstError(
		Within("id", p.ID.Validate()),
		Within("specVersion", p.SpecVersion.Validate()),
		Within("version", p.Version.Validate()),
		Within("status", p.Status.Validate()),
		Within("companyName", p.CompanyName.Validate()),
		Within("companyIds", p.CompanyIDs.Validate()),
		Within("productIds", p.ProductIDs.Validate()),
		Within("productCategoryCpc", p.ProductCategoryCpc.Validate()),
		Within("productNameCompany", p.ProductNameCompany.Validate()),
	); err != nil {
		return err
	}
	supported, err := p.SpecVersion.Satisfies(SupportedSpecVersions)
	if err != nil {
		return Within("specVersion", err)
	}
	if !supported {
		return NewValidationError("specVersion", "%s is not a supported version (%s)", p.SpecVersion, SupportedSpecVersions)
	}
	if p.PrecedingPfIDs != nil {
		if err := Within("precedingPfIds", p.PrecedingPfIDs.Validate()); err != nil {
			return err
		}
		for i, id := range p.PrecedingPfIDs {
			if err := Within(indexField("precedingPfIds", i), id.Validate()); err != nil {
				return err
			}
		}
	}
	if p.Created.IsZero() {
		return NewValidationError("created", "must be set")
	}
	if p.Updated != nil && p.Updated.Before(p.Created) {
		return NewValidationError("updated", "%s is before created %s",
			p.Updated.Format(time.RFC3339), p.Created.Format(time.RFC3339))
	}
	if p.ValidityPeriodStart != nil && p.ValidityPeriodEnd != nil &&
		!p.ValidityPeriodEnd.After(*p.ValidityPeriodStart) {
		return NewValidationError("validityPeriodEnd", "must be after validityPeriodStart")
	}
	if err := Within("pcf", p.PCF.Validate()); err != nil {
		return err
	}
	if p.Extensions != nil && len(p.Extensions) == 0 {
		return NewValidationError("extensions", "must not be empty when present")
	}
	for i := range p.Extensions {
		if err := Within(indexField("extensions", i), p.Extensions[i].Validate()); err != nil {
			return err
		}
	}
	return nil
}

// Revise returns the next version of p: the version is incremented, updated
// is set to now and the given footprints are recorded as preceding this one.
// Created and the id are kept; p itself is not modified.
func (p *ProductFootprint[T]) Revise(now time.Time, preceding ...PfID) ProductFootprint[T] {
	next := *p
	next.Version = p.Version + 1
	updated := now
	next.Updated = &updated
	if ids := append(slices.Clone(p.PrecedingPfIDs), preceding...); len(ids) > 0 {
		next.PrecedingPfIDs = dedupe(ids)
	}
	next.Extensions = slices.Clone(p.Extensions)
	return next
}

// Decode parses and validates a footprint document.
func Decode[T any](data []byte) (*ProductFootprint[T], error) {
	var pf ProductFootprint[T]
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

// DataModelExtension binds a payload to the schema it conforms to.
type DataModelExtension[T any] struct {
	SpecVersion   SpecVersionString `json:"specVersion"`
	DataSchema    string            `json:"dataSchema"`
	Documentation *string           `json:"documentation,omitempty"`
	Data          T                 `json:"data"`
}

type dataModelExtensionFields[T any] DataModelExtension[T]

// UnmarshalJSON decodes and validates an extension.
func (e *DataModelExtension[T]) UnmarshalJSON(data []byte) error {
	var fields dataModelExtensionFields[T]
	if err := DecodeObject(data, "DataModelExtension", &fields, "specVersion", "dataSchema", "data"); err != nil {
		return err
	}
	decoded := DataModelExtension[T](fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}

// Validate checks the version, the schema URL and, when the payload knows
// how, the payload itself.
func (e *DataModelExtension[T]) Validate() error {
	if err := Within("specVersion", e.SpecVersion.Validate()); err != nil {
		return err
	}
	if e.DataSchema == "" {
		return NewValidationError("dataSchema", "must not be empty")
	}
	if v, ok := any(e.Data).(validator); ok {
		return Within("data", v.Validate())
	}
	return nil
}

// JSONSchemaName gives every instantiation the same definition name.
func (DataModelExtension[T]) JSONSchemaName() string { return "DataModelExtension" }

// JSONSchema implements jsonschema.Schemer. The payload is referenced by its
// own definition; an untyped payload is any object.
func (DataModelExtension[T]) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	data := &jsonschema.Schema{Type: jsonschema.TypeList{jsonschema.TypeObject}}
	if t := reflect.TypeFor[T](); t.Kind() != reflect.Interface {
		data = r.ReflectType(t)
	}
	s := &jsonschema.Schema{
		Type: jsonschema.TypeList{jsonschema.TypeObject},
		Properties: map[string]*jsonschema.Schema{
			"data":          data,
			"dataSchema":    {Type: jsonschema.TypeList{jsonschema.TypeString}},
			"documentation": {Type: jsonschema.TypeList{jsonschema.TypeString}},
			"specVersion":   r.Reflect(SpecVersionString("")),
		},
	}
	s.Require("data", "dataSchema", "specVersion")
	return s
}

// CarbonFootprint holds the emission figures of a footprint.
type CarbonFootprint struct {
	DeclaredUnit                       DeclaredUnit                       `json:"declaredUnit"`
	UnitaryProductAmount               StrictlyPositiveDecimal            `json:"unitaryProductAmount"`
	PCfExcludingBiogenic               PositiveDecimal                    `json:"pCfExcludingBiogenic"`
	PCfIncludingBiogenic               *Decimal                           `json:"pCfIncludingBiogenic,omitempty"`
	FossilGhgEmissions                 PositiveDecimal                    `json:"fossilGhgEmissions"`
	FossilCarbonContent                PositiveDecimal                    `json:"fossilCarbonContent"`
	BiogenicCarbonContent              PositiveDecimal                    `json:"biogenicCarbonContent"`
	DLucGhgEmissions                   *PositiveDecimal                   `json:"dLucGhgEmissions,omitempty"`
	LandManagementGhgEmissions         *PositiveDecimal                   `json:"landManagementGhgEmissions,omitempty"`
	OtherBiogenicGhgEmissions          *PositiveDecimal                   `json:"otherBiogenicGhgEmissions,omitempty"`
	ILucGhgEmissions                   *PositiveDecimal                   `json:"iLucGhgEmissions,omitempty"`
	BiogenicCarbonWithdrawal           *NegativeDecimal                   `json:"biogenicCarbonWithdrawal,omitempty"`
	AircraftGhgEmissions               *PositiveDecimal                   `json:"aircraftGhgEmissions,omitempty"`
	CharacterizationFactors            CharacterizationFactors            `json:"characterizationFactors"`
	IpccCharacterizationFactorsSources IpccCharacterizationFactorsSources `json:"ipccCharacterizationFactorsSources"`
	CrossSectoralStandardsUsed         CrossSectoralStandardSet           `json:"crossSectoralStandardsUsed"`
	ProductOrSectorSpecificRules       ProductOrSectorSpecificRuleSet     `json:"productOrSectorSpecificRules" jsonschema:"nullable"`
	BiogenicAccountingMethodology      *BiogenicAccountingMethodology     `json:"biogenicAccountingMethodology,omitempty"`
	BoundaryProcessesDescription       string                             `json:"boundaryProcessesDescription"`
	ReferencePeriodStart               time.Time                          `json:"referencePeriodStart"`
	ReferencePeriodEnd                 time.Time                          `json:"referencePeriodEnd"`
	GeographicScope                    GeographicScope                    `json:"-"`
	SecondaryEmissionFactorSources     EmissionFactorDSSet                `json:"secondaryEmissionFactorSources,omitempty"`
	ExemptedEmissionsPercent           ExemptedEmissionsPercent           `json:"exemptedEmissionsPercent"`
	ExemptedEmissionsDescription       string                             `json:"exemptedEmissionsDescription"`
	PackagingEmissionsIncluded         bool                               `json:"packagingEmissionsIncluded"`
	PackagingGhgEmissions              *PositiveDecimal                   `json:"packagingGhgEmissions,omitempty"`
	AllocationRulesDescription         *string                            `json:"allocationRulesDescription,omitempty"`
	UncertaintyAssessmentDescription   *string                            `json:"uncertaintyAssessmentDescription,omitempty"`
	PrimaryDataShare                   *Percent                           `json:"primaryDataShare,omitempty"`
	DQI                                *DataQualityIndicators             `json:"dqi,omitempty"`
	Assurance                          *Assurance                         `json:"assurance,omitempty"`
}

type carbonFootprintFields CarbonFootprint

// carbonFootprintWire is the wire layout: the struct fields plus the
// flattened geographic scope keys.
type carbonFootprintWire struct {
	carbonFootprintFields
	geographyMembers
}

//nolint:gochecknoglobals // immutable key list
var carbonFootprintRequired = []string{
	"declaredUnit", "unitaryProductAmount", "pCfExcludingBiogenic", "fossilGhgEmissions",
	"fossilCarbonContent", "biogenicCarbonContent", "characterizationFactors",
	"ipccCharacterizationFactorsSources", "crossSectoralStandardsUsed", "boundaryProcessesDescription",
	"referencePeriodStart", "referencePeriodEnd", "exemptedEmissionsPercent",
	"exemptedEmissionsDescription", "packagingEmissionsIncluded",
}

// MarshalJSON flattens the geographic scope into the object.
func (c CarbonFootprint) MarshalJSON() ([]byte, error) {
	return json.Marshal(carbonFootprintWire{
		carbonFootprintFields: carbonFootprintFields(c),
		geographyMembers:      flattenScope(c.GeographicScope),
	})
}

// UnmarshalJSON decodes and validates the object, rebuilding the geographic
// scope from its flattened keys.
func (c *CarbonFootprint) UnmarshalJSON(data []byte) error {
	var w carbonFootprintWire
	if err := DecodeObject(data, "CarbonFootprint", &w, carbonFootprintRequired...); err != nil {
		return err
	}
	scope, err := w.scope()
	if err != nil {
		return err
	}
	decoded := CarbonFootprint(w.carbonFootprintFields)
	decoded.GeographicScope = scope
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// Validate checks every figure and the reference period.
func (c *CarbonFootprint) Validate() error {
	if err := firstError(
		Within("declaredUnit", c.DeclaredUnit.Validate()),
		Within("unitaryProductAmount", c.UnitaryProductAmount.Validate()),
		Within("pCfExcludingBiogenic", c.PCfExcludingBiogenic.Validate()),
		Within("fossilGhgEmissions", c.FossilGhgEmissions.Validate()),
		Within("fossilCarbonContent", c.FossilCarbonContent.Validate()),
		Within("biogenicCarbonContent", c.BiogenicCarbonContent.Validate()),
		validateOptional("dLucGhgEmissions", c.DLucGhgEmissions),
		validateOptional("landManagementGhgEmissions", c.LandManagementGhgEmissions),
		validateOptional("otherBiogenicGhgEmissions", c.OtherBiogenicGhgEmissions),
		validateOptional("iLucGhgEmissions", c.ILucGhgEmissions),
		validateOptional("biogenicCarbonWithdrawal", c.BiogenicCarbonWithdrawal),
		validateOptional("aircraftGhgEmissions", c.AircraftGhgEmissions),
		Within("characterizationFactors", c.CharacterizationFactors.Validate()),
		Within("ipccCharacterizationFactorsSources", c.IpccCharacterizationFactorsSources.Validate()),
		Within("crossSectoralStandardsUsed", c.CrossSectoralStandardsUsed.Validate()),
		c.ProductOrSectorSpecificRules.Validate(),
		validateOptional("biogenicAccountingMethodology", c.BiogenicAccountingMethodology),
		Within("exemptedEmissionsPercent", c.ExemptedEmissionsPercent.Validate()),
		validateOptional("packagingGhgEmissions", c.PackagingGhgEmissions),
		validateOptional("primaryDataShare", c.PrimaryDataShare),
		validateOptional("dqi", c.DQI),
		validateOptional("assurance", c.Assurance),
	); err != nil {
		return err
	}
	for i, std := range c.CrossSectoralStandardsUsed {
		if err := Within(indexField("crossSectoralStandardsUsed", i), std.Validate()); err != nil {
			return err
		}
	}
	if c.SecondaryEmissionFactorSources != nil {
		if err := Within("secondaryEmissionFactorSources", c.SecondaryEmissionFactorSources.Validate()); err != nil {
			return err
		}
	}
	if c.GeographicScope != nil {
		if err := c.GeographicScope.Validate(); err != nil {
			return err
		}
	}
	if !c.ReferencePeriodEnd.After(c.ReferencePeriodStart) {
		return NewValidationError("referencePeriodEnd", "%s is not after referencePeriodStart %s",
			c.ReferencePeriodEnd.Format(time.RFC3339), c.ReferencePeriodStart.Format(time.RFC3339))
	}
	if c.PackagingGhgEmissions != nil && !c.PackagingEmissionsIncluded {
		return NewValidationError("packagingGhgEmissions", "set while packagingEmissionsIncluded is false")
	}
	return nil
}

// Scope returns the geographic scope, treating nil as global.
func (c *CarbonFootprint) Scope() GeographicScope {
	if c.GeographicScope == nil {
		return GlobalScope{}
	}
	return c.GeographicScope
}

// ExtendJSONSchema describes the flattened geographic scope keys.
func (*CarbonFootprint) ExtendJSONSchema(r *jsonschema.Reflector, s *jsonschema.Schema) {
	geographicScopeSchema(r, s)
}

// DataQualityIndicators rate the data behind a footprint.
type DataQualityIndicators struct {
	CoveragePercent  Percent           `json:"coveragePercent"`
	TechnologicalDQR FloatBetween1And3 `json:"technologicalDQR"`
	TemporalDQR      FloatBetween1And3 `json:"temporalDQR"`
	GeographicalDQR  FloatBetween1And3 `json:"geographicalDQR"`
	CompletenessDQR  FloatBetween1And3 `json:"completenessDQR"`
	ReliabilityDQR   FloatBetween1And3 `json:"reliabilityDQR"`
}

type dataQualityIndicatorsFields DataQualityIndicators

// UnmarshalJSON implements json.Unmarshaler.
func (d *DataQualityIndicators) UnmarshalJSON(data []byte) error {
	var fields dataQualityIndicatorsFields
	if err := DecodeObject(data, "DataQualityIndicators", &fields,
		"coveragePercent", "technologicalDQR", "temporalDQR", "geographicalDQR",
		"completenessDQR", "reliabilityDQR"); err != nil {
		return err
	}
	*d = DataQualityIndicators(fields)
	return d.Validate()
}

// Validate checks every rating.
func (d DataQualityIndicators) Validate() error {
	return firstError(
		Within("coveragePercent", d.CoveragePercent.Validate()),
		Within("technologicalDQR", d.TechnologicalDQR.Validate()),
		Within("temporalDQR", d.TemporalDQR.Validate()),
		Within("geographicalDQR", d.GeographicalDQR.Validate()),
		Within("completenessDQR", d.CompletenessDQR.Validate()),
		Within("reliabilityDQR", d.ReliabilityDQR.Validate()),
	)
}

// Assurance describes a third-party verification of a footprint.
type Assurance struct {
	Assurance    bool               `json:"assurance"`
	Coverage     *AssuranceCoverage `json:"coverage,omitempty"`
	Level        *AssuranceLevel    `json:"level,omitempty"`
	Boundary     *AssuranceBoundary `json:"boundary,omitempty"`
	ProviderName string             `json:"providerName"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
	StandardName *string            `json:"standardName,omitempty"`
	Comments     *string            `json:"comments,omitempty"`
}

type assuranceFields Assurance

// UnmarshalJSON implements json.Unmarshaler.
func (a *Assurance) UnmarshalJSON(data []byte) error {
	var fields assuranceFields
	if err := DecodeObject(data, "Assurance", &fields, "assurance", "providerName"); err != nil {
		return err
	}
	*a = Assurance(fields)
	return a.Validate()
}

// Validate checks the enums.
func (a Assurance) Validate() error {
	return firstError(
		validateOptional("coverage", a.Coverage),
		validateOptional("level", a.Level),
		validateOptional("boundary", a.Boundary),
	)
}

// ProductOrSectorSpecificRule names the rules published by an operator.
type ProductOrSectorSpecificRule struct {
	Operator          RuleOperator      `json:"operator"`
	RuleNames         NonEmptyStringVec `json:"ruleNames"`
	OtherOperatorName *NonEmptyString   `json:"otherOperatorName,omitempty"`
}

type productOrSectorSpecificRuleFields ProductOrSectorSpecificRule

// UnmarshalJSON implements json.Unmarshaler.
func (p *ProductOrSectorSpecificRule) UnmarshalJSON(data []byte) error {
	var fields productOrSectorSpecificRuleFields
	if err := DecodeObject(data, "ProductOrSectorSpecificRule", &fields, "operator", "ruleNames"); err != nil {
		return err
	}
	*p = ProductOrSectorSpecificRule(fields)
	return p.Validate()
}

// Validate checks the operator and rule names. The operator name is
// required exactly when the operator is Other.
func (p ProductOrSectorSpecificRule) Validate() error {
	if err := firstError(
		Within("operator", p.Operator.Validate()),
		Within("ruleNames", p.RuleNames.Validate()),
		validateOptional("otherOperatorName", p.OtherOperatorName),
	); err != nil {
		return err
	}
	if p.Operator == RuleOperatorOther && p.OtherOperatorName == nil {
		return NewValidationError("otherOperatorName", "required when operator is Other")
	}
	if p.Operator != RuleOperatorOther && p.OtherOperatorName != nil {
		return NewValidationError("otherOperatorName", "only allowed when operator is Other")
	}
	return nil
}

// EmissionFactorDS names a secondary emission factor database.
type EmissionFactorDS struct {
	Name    NonEmptyString `json:"name"`
	Version NonEmptyString `json:"version"`
}

// Validate checks both names.
func (e EmissionFactorDS) Validate() error {
	return firstError(
		Within("name", e.Name.Validate()),
		Within("version", e.Version.Validate()),
	)
}

// MarshalJSON encodes a nil set as [] since the member is required.
func (s CrossSectoralStandardSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]CrossSectoralStandard(s))
}
