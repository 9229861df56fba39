package ileap

import (
	"encoding/json"
	"fmt"

	"github.com/rshade/ileap/internal/wire"
	"github.com/rshade/ileap/pkg/jsonschema"
	"github.com/rshade/ileap/pkg/pact"
)

// PayloadKind names the kind of record a footprint is derived from. It is
// also the product id type used in the derived product URN.
type PayloadKind string

// Payload kinds.
const (
	KindShipment PayloadKind = "shipment"
	KindTOC      PayloadKind = "toc"
	KindHOC      PayloadKind = "hoc"
)

// Payload is a record that can be carried by a ProductFootprint extension
// and mapped with ToPCF. It is implemented by ShipmentFootprint, Toc, Hoc
// and AnyPayload only.
type Payload interface {
	Kind() PayloadKind
	ID() string
	Validate() error
	pactFields() (mappedFields, error)
}

// Kind implements Payload.
func (ShipmentFootprint) Kind() PayloadKind { return KindShipment }

// ID implements Payload.
func (s ShipmentFootprint) ID() string { return s.ShipmentID }

// Kind implements Payload.
func (Toc) Kind() PayloadKind { return KindTOC }

// ID implements Payload.
func (t Toc) ID() string { return t.TocID }

// Kind implements Payload.
func (Hoc) Kind() PayloadKind { return KindHOC }

// ID implements Payload.
func (h Hoc) ID() string { return h.HocID }

// AnyPayload holds one ShipmentFootprint, Toc or Hoc. It is used where
// payloads of different kinds share one list. On the wire it is the bare
// record; decoding picks the kind by its identifying member.
type AnyPayload struct {
	Payload Payload
}

// Any wraps p. Wrapping an AnyPayload returns it unchanged.
func Any(p Payload) AnyPayload {
	if a, ok := p.(AnyPayload); ok {
		return a
	}
	return AnyPayload{Payload: p}
}

// Kind implements Payload.
func (a AnyPayload) Kind() PayloadKind {
	if a.Payload == nil {
		return ""
	}
	return a.Payload.Kind()
}

// ID implements Payload.
func (a AnyPayload) ID() string {
	if a.Payload == nil {
		return ""
	}
	return a.Payload.ID()
}

// Validate implements Payload.
func (a AnyPayload) Validate() error {
	if a.Payload == nil {
		return fmt.Errorf("%w: empty payload", ErrUnknownPayload)
	}
	return a.Payload.Validate()
}

func (a AnyPayload) pactFields() (mappedFields, error) {
	if a.Payload == nil {
		return mappedFields{}, fmt.Errorf("%w: empty payload", ErrUnknownPayload)
	}
	return a.Payload.pactFields()
}

// MarshalJSON encodes the wrapped record as is.
func (a AnyPayload) MarshalJSON() ([]byte, error) {
	if a.Payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrUnknownPayload)
	}
	return json.Marshal(a.Payload)
}

// UnmarshalJSON decodes a shipment footprint when the object has "tces", a
// TOC when it has "tocId" and a HOC when it has "hocId".
func (a *AnyPayload) UnmarshalJSON(data []byte) error {
	members, err := wire.Members(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownPayload, err)
	}
	var p Payload
	switch {
	case has(members, "tces"):
		var s ShipmentFootprint
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p = s
	case has(members, "tocId"):
		var t Toc
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		p = t
	case has(members, "hocId"):
		var h Hoc
		if err := json.Unmarshal(data, &h); err != nil {
			return err
		}
		p = h
	default:
		return fmt.Errorf("%w: object has none of tces, tocId, hocId", ErrUnknownPayload)
	}
	a.Payload = p
	return nil
}

func has(members map[string]json.RawMessage, key string) bool {
	_, ok := members[key]
	return ok
}

// JSONSchemaName implements jsonschema.Namer.
func (AnyPayload) JSONSchemaName() string { return "ILeapType" }

// JSONSchema implements jsonschema.Schemer.
func (AnyPayload) JSONSchema(r *jsonschema.Reflector) *jsonschema.Schema {
	return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
		jsonschema.For[ShipmentFootprint](r),
		jsonschema.For[Toc](r),
		jsonschema.For[Hoc](r),
	}}
}

// DecodePayload decodes a single payload of any kind.
func DecodePayload(data []byte) (AnyPayload, error) {
	var a AnyPayload
	if err := json.Unmarshal(data, &a); err != nil {
		return AnyPayload{}, err
	}
	return a, nil
}

// DecodePayloads decodes either one payload or a JSON array of payloads.
func DecodePayloads(data []byte) ([]AnyPayload, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		one, oneErr := DecodePayload(data)
		if oneErr != nil {
			return nil, oneErr
		}
		return []AnyPayload{one}, nil
	}
	out := make([]AnyPayload, 0, len(list))
	for i, raw := range list {
		p, err := DecodePayload(raw)
		if err != nil {
			return nil, pact.Within(indexField("payloads", i), err)
		}
		out = append(out, p)
	}
	return out, nil
}
