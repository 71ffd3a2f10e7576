package kepler

import "math"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// param is a named input checked by the validators below.
type param struct {
	name  string
	value float64
}

// requireFinite returns a DomainError for the first non-finite parameter.
func requireFinite(fn string, params ...param) error {
	for _, p := range params {
		if !isFinite(p.value) {
			return finiteError(fn, p.name, p.value)
		}
	}
	return nil
}

// requirePositive checks finiteness and strict positivity.
func requirePositive(fn string, params ...param) error {
	for _, p := range params {
		if !isFinite(p.value) {
			return finiteError(fn, p.name, p.value)
		}
		if p.value <= 0 {
			return rangeError(fn, p.name, p.value, ReasonNotPositive)
		}
	}
	return nil
}

// requireNonNegative checks finiteness and value >= 0.
func requireNonNegative(fn string, params ...param) error {
	for _, p := range params {
		if !isFinite(p.value) {
			return finiteError(fn, p.name, p.value)
		}
		if p.value < 0 {
			return rangeError(fn, p.name, p.value, ReasonNegative)
		}
	}
	return nil
}

// requireElliptic checks 0 <= e < 1.
func requireElliptic(fn string, e float64) error {
	if !isFinite(e) {
		return finiteError(fn, "e", e)
	}
	if e < 0 || e >= 1 {
		return rangeError(fn, "e", e, ReasonEccentricElliptic)
	}
	return nil
}

// requireHalfTurn checks an angle lies in [0, π].
func requireHalfTurn(fn, name string, angle float64) error {
	if !isFinite(angle) {
		return finiteError(fn, name, angle)
	}
	if angle < 0 || angle > math.Pi {
		return rangeError(fn, name, angle, ReasonAngleOutOfHalfTurn)
	}
	return nil
}
