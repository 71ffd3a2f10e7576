package kepler

// Solve returns the eccentric anomaly E in [0, 2π) for mean anomaly M and
// elliptic eccentricity e (0 <= e < 1).
//
// A nil cfg uses DefaultSolverConfig. See SolveDetailed for which solver ran.
func Solve(M, e float64, cfg *SolverConfig) (float64, error) {
	res, err := SolveDetailed(M, e, cfg)
	if err != nil {
		return 0, err
	}
	return res.E, nil
}

// SolveDetailed picks a solver by eccentricity regime and convergence outcome:
//
//   - e == 0: circular orbit, E = M.
//   - e > 0.9: SolveHighEccentricity.
//   - otherwise SolveNewtonRaphson.
//
// Either iterative solver falls back to SolveBisection when it does not
// converge within the budget. Near-parabolic orbits close to periapsis can
// exhaust the clamped high-eccentricity steps; the bisection bracket cannot
// fail there.
//
// The only error is input validation; every accepted input yields a finite E
// normalized into [0, 2π).
func SolveDetailed(M, e float64, cfg *SolverConfig) (Result, error) {
	cfg = cfg.orDefault()
	if err := validateEllipticInputs("Solve", M, e, cfg); err != nil {
		return Result{}, err
	}

	// Kepler's equation is 2π-periodic in M and E alike.
	M = NormalizeAngle(M)

	if e == 0 {
		return Result{E: M, Method: MethodCircular, Converged: true}, nil
	}

	method, solve := MethodNewtonRaphson, SolveNewtonRaphson
	if e > highEccentricityThreshold {
		method, solve = MethodHighEccentricity, SolveHighEccentricity
	}

	sol, err := solve(M, e, cfg)
	if err != nil {
		return Result{}, err
	}
	if sol.Converged {
		return Result{E: NormalizeAngle(sol.E), Method: method, Iterations: sol.Iterations, Converged: true}, nil
	}

	fallback, err := SolveBisection(M, e, cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{
		E:          NormalizeAngle(fallback.E),
		Method:     MethodBisection,
		Iterations: sol.Iterations + fallback.Iterations,
		Fallback:   true,
		Converged:  fallback.Converged,
	}, nil
}
