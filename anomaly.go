package kepler

import "math"

// TrueToMeanAnomaly converts a true anomaly ν (radians) to the mean anomaly
// of an elliptic orbit. The result goes through WrapAngle.
func TrueToMeanAnomaly(nu, e float64) (float64, error) {
	const fn = "TrueToMeanAnomaly"
	if err := requireFinite(fn, param{"nu", nu}); err != nil {
		return 0, err
	}
	if err := requireElliptic(fn, e); err != nil {
		return 0, err
	}

	// atan2 keeps the quadrant of the half angle.
	E := 2 * math.Atan2(math.Tan(nu/2)*math.Sqrt((1-e)/(1+e)), 1)
	if nu < -math.Pi || nu > math.Pi {
		E = WrapAngle(E+math.Pi) - math.Pi
	}
	return WrapAngle(E - e*math.Sin(E)), nil
}

// EccentricToTrueAnomaly converts an eccentric anomaly E to the true anomaly.
// e = 0 returns E unchanged and e = 1 uses the parabolic 2·atan(E/2).
func EccentricToTrueAnomaly(E, e float64) (float64, error) {
	const fn = "EccentricToTrueAnomaly"
	if err := requireFinite(fn, param{"E", E}, param{"e", e}); err != nil {
		return 0, err
	}
	if e < 0 || e > 1 {
		return 0, rangeError(fn, "e", e, ReasonEccentricClosed)
	}

	switch {
	case e == 0:
		return E, nil
	case e == 1:
		return 2 * math.Atan(E/2), nil
	}

	sinHalf, cosHalf := math.Sincos(E / 2)
	if math.Abs(cosHalf) < 1e-10 {
		return math.Pi, nil
	}
	return 2 * math.Atan2(math.Sqrt(1+e)*sinHalf, math.Sqrt(1-e)*cosHalf), nil
}

// EccentricToMeanAnomaly evaluates Kepler's equation M = E - e·sinE.
func EccentricToMeanAnomaly(E, e float64) (float64, error) {
	const fn = "EccentricToMeanAnomaly"
	if err := requireFinite(fn, param{"E", E}); err != nil {
		return 0, err
	}
	if err := requireElliptic(fn, e); err != nil {
		return 0, err
	}
	return E - e*math.Sin(E), nil
}

// TrueAnomalyFromMean solves Kepler's equation for M and converts the
// eccentric anomaly to a true anomaly in [0, 2π).
func TrueAnomalyFromMean(M, e float64, cfg *SolverConfig) (float64, error) {
	E, err := Solve(M, e, cfg)
	if err != nil {
		return 0, err
	}
	nu, err := EccentricToTrueAnomaly(E, e)
	if err != nil {
		return 0, err
	}
	return NormalizeAngle(nu), nil
}

// MeanAnomalyAt advances a mean anomaly M0 by elapsed time dt on an orbit of
// the given period. dt and period share any time unit; the result is
// normalized into [0, 2π).
func MeanAnomalyAt(M0, period, dt float64) (float64, error) {
	const fn = "MeanAnomalyAt"
	if err := requireFinite(fn, param{"M0", M0}, param{"dt", dt}); err != nil {
		return 0, err
	}
	if err := requirePositive(fn, param{"period", period}); err != nil {
		return 0, err
	}
	// Reduce dt first so long spans keep their precision.
	turns := math.Mod(dt/period, 1)
	return NormalizeAngle(M0 + twoPi*turns), nil
}
