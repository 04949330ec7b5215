package labs

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Rejection kinds returned by the calculators. Compare with errors.Is.
var (
	// ErrMissingInput indicates that a required value is absent or exactly zero.
	ErrMissingInput = constError("missing input")

	// ErrInvalidRange indicates that an input fails a positivity precondition.
	ErrInvalidRange = constError("input out of range")

	// ErrInconsistentComposition indicates that a composition checksum is outside
	// the accepted tolerance around 100%.
	ErrInconsistentComposition = constError("inconsistent composition")

	// ErrUnknownFuel indicates a fuel type outside the reference table.
	ErrUnknownFuel = constError("unknown fuel type")
)

// InconsistentCompositionError carries the checksums that failed validation.
type InconsistentCompositionError struct {
	DryTotal         float64
	CombustibleTotal float64
}

func (e *InconsistentCompositionError) Error() string {
	return fmt.Sprintf("%s: dry total %g%%, combustible total %g%%",
		ErrInconsistentComposition, e.DryTotal, e.CombustibleTotal)
}

func (e *InconsistentCompositionError) Unwrap() error {
	return ErrInconsistentComposition
}
