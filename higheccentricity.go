package kepler

import "math"

// HighEccentricityIterations is the default budget of SolveHighEccentricity:
// max(300, ⌊5 + 3·ln(1+|M|)⌋). Large mean anomalies on near-parabolic and
// hyperbolic orbits need more steps.
func HighEccentricityIterations(M float64) int {
	n := int(math.Floor(5 + 3*math.Log(1+math.Abs(M))))
	return max(minHighEccentricityIter, n)
}

// SolveHighEccentricity solves Kepler's equation for e close to or above 1.
//
// For e < 1 it solves E - e·sinE = M and wraps the result with WrapAngle.
// For e >= 1 it solves the hyperbolic form e·sinhE - E = M and returns the
// hyperbolic anomaly unwrapped.
//
// A nil cfg selects HighEccentricityIterations(M) and a 1e-9 tolerance; zero
// fields of a non-nil cfg take the same defaults. The slope is floored at
// 1e-6, each step is clamped to 0.5 rad, and an iterate escaping |E| > 100 is
// clamped to ±100 and returned as is. Only finite iterates are kept, so the
// result is always the last finite estimate.
func SolveHighEccentricity(M, e float64, cfg *SolverConfig) (Solution, error) {
	const fn = "SolveHighEccentricity"
	if err := requireFinite(fn, param{"M", M}); err != nil {
		return Solution{}, err
	}
	if err := requireNonNegative(fn, param{"e", e}); err != nil {
		return Solution{}, err
	}

	c := SolverConfig{MaxIter: HighEccentricityIterations(M), Tolerance: DefaultTolerance}
	if cfg != nil {
		if cfg.MaxIter != 0 {
			c.MaxIter = cfg.MaxIter
		}
		if cfg.Tolerance != 0 {
			c.Tolerance = cfg.Tolerance
		}
	}
	if err := c.validate(fn); err != nil {
		return Solution{}, err
	}

	elliptic := e < 1
	if elliptic {
		// E(M + 2πk) = E(M) + 2πk; reducing keeps the iterate away from the divergence bound.
		M = math.Mod(M, twoPi)
	}

	sinM, cosM := math.Sincos(M)
	E := M + e*sinM/(1-e*cosM)
	if M < 0 {
		E = M - e*sinM/(1-e*cosM)
	}
	// 1 - e·cosM vanishes when cosM = 1/e.
	if !isFinite(E) {
		E = M
	}

	lastValid := E
	delta := math.Inf(1)
	iter := 0

	for math.Abs(delta) > c.Tolerance && iter < c.MaxIter {
		var f, df float64
		if elliptic {
			sinE, cosE := math.Sincos(E)
			f = E - e*sinE - M
			df = 1 - e*cosE
		} else {
			f = e*math.Sinh(E) - E - M
			df = e*math.Cosh(E) - 1
		}

		df = math.Copysign(math.Max(math.Abs(df), minDerivative), df)
		delta = f / df
		delta = math.Copysign(math.Min(math.Abs(delta), maxStep), delta)

		E -= delta
		iter++

		if isFinite(E) {
			lastValid = E
		}

		if math.Abs(E) > divergenceBound {
			E = math.Copysign(divergenceBound, E)
			lastValid = E
			break
		}
	}

	converged := math.Abs(delta) <= c.Tolerance
	if elliptic {
		lastValid = WrapAngle(lastValid)
	}
	return Solution{E: lastValid, Iterations: iter, Converged: converged}, nil
}
