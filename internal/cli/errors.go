package cli

import "fmt"

// Process exit codes.
const (
	ExitCodeFailure = 1
	// ExitCodeInvalid reports input that failed validation.
	ExitCodeInvalid = 2
	// ExitCodeWrongVersion reports a well-formed id of the wrong UUID version.
	ExitCodeWrongVersion = 3
)

// ExitError carries the exit code main should use for Err.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
