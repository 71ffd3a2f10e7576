package kepler

import "math"

// SolveNewtonRaphson solves Kepler's equation for elliptic orbits with
// Newton's method refined by Householder's third-order correction.
//
// The seed depends on e: M below 0.8, a second-order Taylor correction up to
// 0.97, and the near-parabolic 6M/e above. Each step folds F''(E) = e·sinE and
// F'''(E) = e·cosE into the plain Newton step -F/F'.
//
// If the budget runs out, or an iterate stops being finite, the returned
// Solution has Converged false and E set to NaN. A converged E is normalized
// into [0, 2π).
func SolveNewtonRaphson(M, e float64, cfg *SolverConfig) (Solution, error) {
	cfg = cfg.orDefault()
	if err := validateEllipticInputs("SolveNewtonRaphson", M, e, cfg); err != nil {
		return Solution{}, err
	}

	var E float64
	switch {
	case e < newtonSeedTaylor:
		E = M
	case e < newtonSeedParabolic:
		E = M + e*math.Sin(M)*(1+e*math.Cos(M))
	default:
		E = 6 * M / e
	}

	for i := 0; i < cfg.MaxIter; i++ {
		sinE, cosE := math.Sincos(E)
		F := E - e*sinE - M
		dF := 1 - e*cosE
		d2F := e * sinE
		d3F := e * cosE

		delta := -F / dF
		correction := delta / (1 - 0.5*delta*d2F/dF)
		correction /= 1 - (1.0/6.0)*correction*correction*d3F/dF

		E += correction
		if !isFinite(E) {
			return Solution{E: math.NaN(), Iterations: i + 1}, nil
		}
		if math.Abs(correction) < cfg.Tolerance {
			return Solution{E: NormalizeAngle(E), Iterations: i + 1, Converged: true}, nil
		}
	}

	return Solution{E: math.NaN(), Iterations: cfg.MaxIter}, nil
}
