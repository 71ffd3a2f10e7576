package kepler

import "math"

// SolveBisection solves Kepler's equation M = E - e·sinE by bisection for
// elliptic orbits (0 <= e < 1).
//
// M is first normalized into [0, 2π). F(E) = E - e·sinE - M is strictly
// increasing on [0, 2π] because F'(E) = 1 - e·cosE >= 1 - e > 0, so the bracket
// always holds exactly one root. Iteration stops on a residual below the
// tolerance or on a half-bracket narrower than the tolerance. When the budget
// runs out the current midpoint is returned with Converged set to false; the
// solver never fails for lack of convergence.
//
// The returned E lies in [0, 2π).
func SolveBisection(M, e float64, cfg *SolverConfig) (Solution, error) {
	cfg = cfg.orDefault()
	if err := validateEllipticInputs("SolveBisection", M, e, cfg); err != nil {
		return Solution{}, err
	}

	Mm := math.Mod(math.Mod(M, twoPi)+twoPi, twoPi)

	// 2π ≡ 0, so both endpoints report 0.
	if math.Abs(-Mm) < cfg.Tolerance || math.Abs(twoPi-Mm) < cfg.Tolerance {
		return Solution{E: 0, Converged: true}, nil
	}

	lo, hi := 0.0, twoPi
	E := (lo + hi) / 2

	for i := 0; i < cfg.MaxIter; i++ {
		F := residual(E, e, Mm)
		if math.Abs(F) < cfg.Tolerance {
			return Solution{E: math.Mod(E, twoPi), Iterations: i + 1, Converged: true}, nil
		}

		if F > 0 {
			hi = E
		} else {
			lo = E
		}

		if (hi-lo)/2 < cfg.Tolerance {
			return Solution{E: math.Mod((lo+hi)/2, twoPi), Iterations: i + 1, Converged: true}, nil
		}
		E = (lo + hi) / 2
	}

	return Solution{E: math.Mod(E, twoPi), Iterations: cfg.MaxIter}, nil
}
