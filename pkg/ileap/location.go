package ileap

import (
	"github.com/rshade/ileap/pkg/pact"
)

// Location is a postal or coded place a leg starts or ends at.
type Location struct {
	Street  *string        `json:"street,omitempty"`
	Zip     *string        `json:"zip,omitempty"`
	City    string         `json:"city"`
	Country pact.ISO3166CC `json:"country"`
	Iata    *IataCode      `json:"iata,omitempty"`
	Locode  *Locode        `json:"locode,omitempty"`
	Uic     *UicCode       `json:"uic,omitempty"`
	Lat     *pact.Decimal  `json:"lat,omitempty"`
	Lng     *pact.Decimal  `json:"lng,omitempty"`
}

type locationFields Location

// UnmarshalJSON decodes and validates a location.
func (l *Location) UnmarshalJSON(data []byte) error {
	var fields locationFields
	if err := pact.DecodeObject(data, "Location", &fields, "city", "country"); err != nil {
		return err
	}
	decoded := Location(fields)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*l = decoded
	return nil
}

// Validate checks the country and the optional codes.
func (l Location) Validate() error {
	return firstError(
		pact.Within("country", l.Country.Validate()),
		validateOptional("iata", l.Iata),
		validateOptional("locode", l.Locode),
		validateOptional("uic", l.Uic),
	)
}
