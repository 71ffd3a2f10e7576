package kepler

import "math"

// Secular J2 rates. n is the mean motion (rad per time unit), re the body's
// equatorial radius in the units of a, and i the inclination in radians.
// Both rates come out in radians per the time unit of n.

// J2NodalPrecessionRate returns dΩ/dt = -3/2·J2·n·(Re/a)²·cos i / (1-e²)².
func J2NodalPrecessionRate(j2, n, re, a, i, e float64) (float64, error) {
	factor, err := j2Factor("J2NodalPrecessionRate", j2, n, re, a, i, e)
	if err != nil {
		return 0, err
	}
	return -1.5 * factor * math.Cos(i), nil
}

// J2ArgumentOfPerigeeRate returns dω/dt = 3/4·J2·n·(Re/a)²·(5cos²i - 1) / (1-e²)².
func J2ArgumentOfPerigeeRate(j2, n, re, a, i, e float64) (float64, error) {
	factor, err := j2Factor("J2ArgumentOfPerigeeRate", j2, n, re, a, i, e)
	if err != nil {
		return 0, err
	}
	cosI := math.Cos(i)
	return 0.75 * factor * (5*cosI*cosI - 1), nil
}

// j2Factor validates the shared inputs and returns J2·n·(Re/a)²/(1-e²)².
func j2Factor(fn string, j2, n, re, a, i, e float64) (float64, error) {
	if err := requireFinite(fn, param{"J2", j2}, param{"i", i}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"n", n}); err != nil {
		return 0, err
	}
	if err := requirePositive(fn, param{"Re", re}, param{"a", a}); err != nil {
		return 0, err
	}
	if err := requireElliptic(fn, e); err != nil {
		return 0, err
	}
	p := 1 - e*e
	ratio := re / a
	return j2 * n * ratio * ratio / (p * p), nil
}
