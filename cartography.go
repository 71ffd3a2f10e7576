package kepler

import "math"

// FlatteningOblateSpheroid returns f = (a - c)/a for equatorial radius a and
// polar radius c.
func FlatteningOblateSpheroid(a, c float64) (float64, error) {
	if err := requirePositive("FlatteningOblateSpheroid", param{"a", a}, param{"c", c}); err != nil {
		return 0, err
	}
	return (a - c) / a, nil
}

// EccentricitySquaredOblateSpheroid returns e² = 1 - c²/a².
func EccentricitySquaredOblateSpheroid(a, c float64) (float64, error) {
	if err := requirePositive("EccentricitySquaredOblateSpheroid", param{"a", a}, param{"c", c}); err != nil {
		return 0, err
	}
	return 1 - (c*c)/(a*a), nil
}

// PlanetocentricLatitude returns atan2(z, sqrt(x²+y²)) in radians.
func PlanetocentricLatitude(p Vector) (float64, error) {
	if err := requireFinite("PlanetocentricLatitude", param{"x", p.X}, param{"y", p.Y}, param{"z", p.Z}); err != nil {
		return 0, err
	}
	return math.Atan2(p.Z, math.Hypot(p.X, p.Y)), nil
}

// PlanetographicLatitudeOblate returns the geodetic latitude of a point on the
// surface of an oblate spheroid, atan2(z/(1-e²), sqrt(x²+y²)).
func PlanetographicLatitudeOblate(p Vector, a, c float64) (float64, error) {
	const fn = "PlanetographicLatitudeOblate"
	if err := requireFinite(fn, param{"x", p.X}, param{"y", p.Y}, param{"z", p.Z}); err != nil {
		return 0, err
	}
	e2, err := EccentricitySquaredOblateSpheroid(a, c)
	if err != nil {
		return 0, err
	}
	return math.Atan2(p.Z/(1-e2), math.Hypot(p.X, p.Y)), nil
}

// IsOnTriaxialEllipsoidSurface reports whether x²/a² + y²/b² + z²/c² is
// within eps of 1.
func IsOnTriaxialEllipsoidSurface(p Vector, a, b, c, eps float64) (bool, error) {
	const fn = "IsOnTriaxialEllipsoidSurface"
	if err := requireFinite(fn, param{"x", p.X}, param{"y", p.Y}, param{"z", p.Z}); err != nil {
		return false, err
	}
	if err := requirePositive(fn, param{"a", a}, param{"b", b}, param{"c", c}); err != nil {
		return false, err
	}
	if err := requireNonNegative(fn, param{"eps", eps}); err != nil {
		return false, err
	}
	v := p.X*p.X/(a*a) + p.Y*p.Y/(b*b) + p.Z*p.Z/(c*c)
	return math.Abs(v-1) <= eps, nil
}

// BodyFixedFromInertialIAU builds the inertial→body-fixed direction cosine
// matrix from the IAU pole right ascension alphaP, declination deltaP and
// prime meridian angle W (all radians). The three frame rotations
//
//	R = R3(W) · R1(π/2 - δp) · R3(π/2 + αp)
//
// turn axes rather than vectors, so each is the inverse of Rot1/Rot3.
// The body's pole maps onto +Z.
func BodyFixedFromInertialIAU(alphaP, deltaP, w float64) (Matrix3, error) {
	if err := requireFinite("BodyFixedFromInertialIAU", param{"alphaP", alphaP}, param{"deltaP", deltaP}, param{"W", w}); err != nil {
		return Matrix3{}, err
	}
	return Rot3(-w).Mul(Rot1(deltaP - halfPi)).Mul(Rot3(-halfPi - alphaP)), nil
}
