package kepler

import "math"

// Mathematical and physical constants
const (
	twoPi   = 2 * math.Pi
	halfPi  = math.Pi / 2
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// G is the Newtonian constant of gravitation (m³·kg⁻¹·s⁻², CODATA 2018).
	G = 6.6743e-11
	// StandardGravity is g0 used to convert specific impulse to exhaust velocity (m/s²).
	StandardGravity = 9.80665

	// MuEarth is Earth's gravitational parameter (km³/s², WGS-84).
	MuEarth = 398600.4418
	// EarthRadius is Earth's equatorial radius (km, WGS-84).
	EarthRadius = 6378.137
	// EarthFlattening is the WGS-84 flattening.
	EarthFlattening = 1 / 298.257223563
	// EarthJ2 is Earth's second zonal harmonic.
	EarthJ2 = 1.08262668e-3

	// Julian date of the J2000.0 epoch.
	j2000 = 2451545.0

	secondsPerDay     = 86400.0
	julianYearDays    = 365.25
	julianYearSeconds = secondsPerDay * julianYearDays
)

// Solver defaults and numeric safeguards.
const (
	// DefaultMaxIter is the dispatcher iteration budget.
	DefaultMaxIter = 50
	// DefaultTolerance is the dispatcher convergence tolerance (radians).
	DefaultTolerance = 1e-9

	// wrapEpsilon snaps values within 1e-10 of ±2π to zero.
	wrapEpsilon = 1e-10
	// wrapLooseEpsilon catches drift left over from large multiples of 2π.
	wrapLooseEpsilon = 1e-8

	// highEccentricityThreshold routes the dispatcher to the fixed-point solver above it.
	highEccentricityThreshold = 0.9
	// newtonSeedTaylor and newtonSeedParabolic select Newton's initial guess.
	newtonSeedTaylor    = 0.8
	newtonSeedParabolic = 0.97

	// minDerivative floors |F'(E)| so the step never divides by a vanishing slope.
	minDerivative = 1e-6
	// maxStep bounds a single correction (radians) on steep residual surfaces.
	maxStep = 0.5
	// divergenceBound stops the iteration once |E| runs away.
	divergenceBound = 100.0
	// minHighEccentricityIter is the floor of the adaptive iteration budget.
	minHighEccentricityIter = 300
)
