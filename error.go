package kepler

import (
	"errors"
	"fmt"
)

// ErrNotFinite is the kind of a DomainError raised for NaN or infinite inputs.
var ErrNotFinite = errors.New("value must be finite")

// ErrOutOfRange is the kind of a DomainError raised for finite inputs outside
// the function's domain.
var ErrOutOfRange = errors.New("value out of range")

// ErrInvalidElementSet is wrapped by every TLE and OMM decoding failure.
var ErrInvalidElementSet = errors.New("invalid element set")

// DomainErrorReason describes which constraint an input violated.
type DomainErrorReason string

const (
	ReasonNotFinite           DomainErrorReason = "must be finite"
	ReasonEccentricElliptic   DomainErrorReason = "must satisfy 0 <= e < 1 (elliptic)"
	ReasonEccentricClosed     DomainErrorReason = "must satisfy 0 <= e <= 1"
	ReasonNegative            DomainErrorReason = "must be >= 0"
	ReasonNotPositive         DomainErrorReason = "must be > 0"
	ReasonZero                DomainErrorReason = "must be non-zero"
	ReasonAngleOutOfHalfTurn  DomainErrorReason = "must be in [0, pi] radians"
	ReasonFinalMassTooLarge   DomainErrorReason = "final mass must be < initial mass"
	ReasonNonPhysical         DomainErrorReason = "yields a non-physical result"
	ReasonParabolic           DomainErrorReason = "parabolic orbits (e = 1) have no finite semi-major axis"
	ReasonHyperbolicMismatch  DomainErrorReason = "a < 0 requires e > 1"
	ReasonEllipticMismatch    DomainErrorReason = "a > 0 requires 0 <= e < 1"
	ReasonCoincidentPositions DomainErrorReason = "bodies share the same position"
	ReasonUnknownUnit         DomainErrorReason = "unknown unit"
)

// DomainError is returned when an input violates a function's domain.
// It wraps ErrNotFinite or ErrOutOfRange so callers can use errors.Is.
type DomainError struct {
	Func   string            // Function that rejected the input
	Param  string            // Offending parameter name
	Value  float64           // Offending value
	Reason DomainErrorReason // Violated constraint
	Kind   error             // ErrNotFinite or ErrOutOfRange
}

// Error returns the error message for DomainError.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %g)", e.Func, e.Param, e.Reason, e.Value)
}

// Unwrap returns the violation kind.
func (e *DomainError) Unwrap() error {
	return e.Kind
}

func rangeError(fn, param string, value float64, reason DomainErrorReason) *DomainError {
	return &DomainError{Func: fn, Param: param, Value: value, Reason: reason, Kind: ErrOutOfRange}
}

func finiteError(fn, param string, value float64) *DomainError {
	return &DomainError{Func: fn, Param: param, Value: value, Reason: ReasonNotFinite, Kind: ErrNotFinite}
}
