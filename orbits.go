package kepler

import "math"

// Closed-form two-body relations. Units are whatever the caller keeps
// consistent: metres with m³/s², or kilometres with km³/s².

// VisVivaSpeed returns sqrt(μ(2/r - 1/a)). a > 0 is elliptic, a < 0
// hyperbolic and a = +Inf parabolic.
func VisVivaSpeed(r, a, mu float64) (float64, error) {
	const fn = "VisVivaSpeed"
	if err := requirePositive(fn, param{"r", r}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"mu", mu}); err != nil {
		return 0, err
	}
	if math.IsInf(a, 1) {
		return math.Sqrt(2 * mu / r), nil
	}
	if !isFinite(a) {
		return 0, finiteError(fn, "a", a)
	}
	if a == 0 {
		return 0, rangeError(fn, "a", a, ReasonZero)
	}

	radicand := mu * (2/r - 1/a)
	if radicand < 0 {
		// Rounding at apoapsis can dip just below zero.
		if radicand > -math.Abs(1e-14*mu/r) {
			return 0, nil
		}
		return 0, rangeError(fn, "r", r, ReasonNonPhysical)
	}
	return math.Sqrt(radicand), nil
}

// CircularSpeed returns sqrt(μ/r).
func CircularSpeed(r, mu float64) (float64, error) {
	const fn = "CircularSpeed"
	if err := requirePositive(fn, param{"r", r}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"mu", mu}); err != nil {
		return 0, err
	}
	return math.Sqrt(mu / r), nil
}

// EscapeSpeed returns sqrt(2μ/r).
func EscapeSpeed(r, mu float64) (float64, error) {
	const fn = "EscapeSpeed"
	if err := requirePositive(fn, param{"r", r}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"mu", mu}); err != nil {
		return 0, err
	}
	return math.Sqrt(2 * mu / r), nil
}

// KeplerPeriod returns the orbital period 2π·sqrt(a³/μ).
func KeplerPeriod(a, mu float64) (float64, error) {
	if err := requirePositive("KeplerPeriod", param{"a", a}, param{"mu", mu}); err != nil {
		return 0, err
	}
	return twoPi * math.Sqrt(a*a*a/mu), nil
}

// MeanMotion returns sqrt(μ/a³) in radians per time unit.
func MeanMotion(mu, a float64) (float64, error) {
	if err := requirePositive("MeanMotion", param{"mu", mu}, param{"a", a}); err != nil {
		return 0, err
	}
	return math.Sqrt(mu / (a * a * a)), nil
}

// ApsisRadii holds periapsis and apoapsis distances. Apoapsis is +Inf for
// open orbits.
type ApsisRadii struct {
	Periapsis float64
	Apoapsis  float64
}

// PeriApoapsisRadii returns rp = a(1-e) and ra = a(1+e). Hyperbolic orbits
// take a < 0 with e > 1 and have no apoapsis.
func PeriApoapsisRadii(a, e float64) (ApsisRadii, error) {
	const fn = "PeriApoapsisRadii"
	if err := requireFinite(fn, param{"a", a}); err != nil {
		return ApsisRadii{}, err
	}
	if a == 0 {
		return ApsisRadii{}, rangeError(fn, "a", a, ReasonZero)
	}
	if err := requireNonNegative(fn, param{"e", e}); err != nil {
		return ApsisRadii{}, err
	}

	if a > 0 {
		if e == 1 {
			return ApsisRadii{}, rangeError(fn, "e", e, ReasonParabolic)
		}
		if e > 1 {
			return ApsisRadii{}, rangeError(fn, "e", e, ReasonEllipticMismatch)
		}
		return ApsisRadii{Periapsis: a * (1 - e), Apoapsis: a * (1 + e)}, nil
	}

	if e <= 1 {
		return ApsisRadii{}, rangeError(fn, "e", e, ReasonHyperbolicMismatch)
	}
	rp := a * (1 - e)
	if rp <= 0 {
		if rp > -math.Abs(1e-14*a) {
			return ApsisRadii{Periapsis: 0, Apoapsis: math.Inf(1)}, nil
		}
		return ApsisRadii{}, rangeError(fn, "a", a, ReasonNonPhysical)
	}
	return ApsisRadii{Periapsis: rp, Apoapsis: math.Inf(1)}, nil
}

// SpecificMechanicalEnergy returns v²/2 - μ/r.
func SpecificMechanicalEnergy(v, r, mu float64) (float64, error) {
	const fn = "SpecificMechanicalEnergy"
	if err := requireNonNegative(fn, param{"v", v}); err != nil {
		return 0, err
	}
	if err := requirePositive(fn, param{"r", r}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"mu", mu}); err != nil {
		return 0, err
	}
	return 0.5*v*v - mu/r, nil
}

// SpecificAngularMomentum returns |r × v|.
func SpecificAngularMomentum(r, v Vector) (float64, error) {
	const fn = "SpecificAngularMomentum"
	if err := requireFinite(fn, param{"r.X", r.X}, param{"r.Y", r.Y}, param{"r.Z", r.Z},
		param{"v.X", v.X}, param{"v.Y", v.Y}, param{"v.Z", v.Z}); err != nil {
		return 0, err
	}
	if r.Norm() == 0 {
		return 0, rangeError(fn, "|r|", 0, ReasonZero)
	}
	return r.Cross(v).Norm(), nil
}

// SpecificAngularMomentumFromElements returns sqrt(μ·a·(1-e²)).
func SpecificAngularMomentumFromElements(a, e, mu float64) (float64, error) {
	const fn = "SpecificAngularMomentumFromElements"
	if err := requireFinite(fn, param{"a", a}); err != nil {
		return 0, err
	}
	if a == 0 {
		return 0, rangeError(fn, "a", a, ReasonZero)
	}
	if err := requireNonNegative(fn, param{"e", e}, param{"mu", mu}); err != nil {
		return 0, err
	}

	radicand := mu * a * (1 - e*e)
	if radicand < 0 {
		if radicand > -math.Abs(1e-14*mu*a) {
			return 0, nil
		}
		return 0, rangeError(fn, "e", e, ReasonNonPhysical)
	}
	return math.Sqrt(radicand), nil
}

// FlightPathAngle returns the flight-path angle atan2(e·sinν, 1 + e·cosν).
func FlightPathAngle(nu, e float64) (float64, error) {
	const fn = "FlightPathAngle"
	if err := requireFinite(fn, param{"nu", nu}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"e", e}); err != nil {
		return 0, err
	}
	sinNu, cosNu := math.Sincos(nu)
	y := e * sinNu
	x := 1 + e*cosNu
	if math.Abs(x) < 1e-15 && math.Abs(y) < 1e-15 {
		return 0, nil
	}
	return math.Atan2(y, x), nil
}

// SphereOfInfluenceRadius returns the Laplace radius a·(m/M)^(2/5).
func SphereOfInfluenceRadius(a, m, M float64) (float64, error) {
	if err := requirePositive("SphereOfInfluenceRadius", param{"a", a}, param{"m", m}, param{"M", M}); err != nil {
		return 0, err
	}
	return a * math.Pow(m/M, 2.0/5.0), nil
}

// HyperbolicPeriapsisSpeed returns sqrt(v∞² + 2μ/rp).
func HyperbolicPeriapsisSpeed(vInf, mu, rp float64) (float64, error) {
	const fn = "HyperbolicPeriapsisSpeed"
	if err := requireNonNegative(fn, param{"vInfinity", vInf}); err != nil {
		return 0, err
	}
	if err := requirePositive(fn, param{"mu", mu}, param{"rp", rp}); err != nil {
		return 0, err
	}
	return math.Sqrt(vInf*vInf + 2*mu/rp), nil
}

// CharacteristicEnergyC3 returns v∞².
func CharacteristicEnergyC3(vInf float64) (float64, error) {
	if err := requireFinite("CharacteristicEnergyC3", param{"vInfinity", vInf}); err != nil {
		return 0, err
	}
	return vInf * vInf, nil
}

// AtmosphericDragAcceleration returns ½·(Cd·A/m)·ρ·v².
func AtmosphericDragAcceleration(cd, area, mass, rho, v float64) (float64, error) {
	const fn = "AtmosphericDragAcceleration"
	if err := requireNonNegative(fn, param{"Cd", cd}, param{"A", area}); err != nil {
		return 0, err
	}
	if err := requirePositive(fn, param{"m", mass}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"rho", rho}, param{"v", v}); err != nil {
		return 0, err
	}
	return 0.5 * (cd * area / mass) * rho * v * v, nil
}
