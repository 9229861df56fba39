package ileap

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrUnsupportedThroughputUnit indicates a HOC whose intensity is given
	// per TEU. There is no agreed TEU to mass conversion, so such a HOC
	// cannot be expressed per kilogram.
	ErrUnsupportedThroughputUnit = constError("unsupported HOC throughput unit")

	// ErrUnknownPayload indicates a JSON object that is none of
	// ShipmentFootprint, TOC or HOC.
	ErrUnknownPayload = constError("unknown iLEAP payload")
)
