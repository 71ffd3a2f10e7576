package kepler

import "math"

// SolverConfig bounds the work a solver may spend on one call.
type SolverConfig struct {
	MaxIter   int     `json:"max_iter" yaml:"max_iter"`   // Iteration budget, > 0
	Tolerance float64 `json:"tolerance" yaml:"tolerance"` // Convergence tolerance in radians, > 0
}

// DefaultSolverConfig returns the dispatcher defaults: 50 iterations, 1e-9 rad.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance}
}

// Validate checks the budget and tolerance are usable.
func (c *SolverConfig) Validate() error {
	return c.validate("SolverConfig")
}

func (c *SolverConfig) validate(fn string) error {
	if c.MaxIter <= 0 {
		return rangeError(fn, "maxIter", float64(c.MaxIter), ReasonNotPositive)
	}
	return requirePositive(fn, param{"tolerance", c.Tolerance})
}

// orDefault returns c, or the dispatcher defaults when c is nil.
func (c *SolverConfig) orDefault() *SolverConfig {
	if c == nil {
		return DefaultSolverConfig()
	}
	return c
}

// Method names the algorithm that produced an eccentric anomaly.
type Method string

const (
	MethodCircular         Method = "circular"
	MethodNewtonRaphson    Method = "newton-raphson"
	MethodBisection        Method = "bisection"
	MethodHighEccentricity Method = "high-eccentricity"
)

// Solution is the outcome of a single solver run.
//
// Converged is false when the iteration budget ran out before the stopping
// criterion fired. Newton-Raphson reports that case with E set to NaN and
// callers must not use it; the bisection and high-eccentricity solvers still
// return their best finite estimate.
type Solution struct {
	E          float64 // Eccentric (or hyperbolic) anomaly in radians
	Iterations int     // Iterations spent
	Converged  bool
}

// Result is what the dispatcher returns.
type Result struct {
	E          float64 `json:"eccentric_anomaly"`
	Method     Method  `json:"method"`
	Iterations int     `json:"iterations"`
	Fallback   bool    `json:"fallback"`  // bisection replaced a non-converged run
	Converged  bool    `json:"converged"` // false only when the bisection budget also ran out
}

// validateEllipticInputs is the shared guard of the elliptic entry points.
func validateEllipticInputs(fn string, M, e float64, cfg *SolverConfig) error {
	if err := requireFinite(fn, param{"M", M}); err != nil {
		return err
	}
	if err := requireElliptic(fn, e); err != nil {
		return err
	}
	return cfg.validate(fn)
}

// residual evaluates Kepler's elliptic equation F(E) = E - e·sinE - M.
func residual(E, e, M float64) float64 {
	return E - e*math.Sin(E) - M
}
