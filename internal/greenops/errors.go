package greenops

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compare with errors.Is.
var (
	// ErrInvalidUnit is returned for a unit NormalizeToKg does not know.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue is returned for negative emissions.
	ErrNegativeValue = constError("negative carbon value")
)
