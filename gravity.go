package kepler

import "math"

// GravitationalParameter returns μ = G(M + m) in SI units.
func GravitationalParameter(M, m float64) (float64, error) {
	if err := requireNonNegative("GravitationalParameter", param{"M", M}, param{"m", m}); err != nil {
		return 0, err
	}
	return G * (M + m), nil
}

// Force is a gravitational force acting on body 1.
type Force struct {
	Vector    Vector  // N, pointing from body 1 toward body 2
	Magnitude float64 // N
	Direction Vector  // unit vector from body 1 toward body 2
}

// GravitationalForce returns Newton's attraction exerted by body 2 (mass m2 at
// r2) on body 1 (mass m1 at r1). Positions are in metres, masses in kg.
func GravitationalForce(m1, m2 float64, r1, r2 Vector) (Force, error) {
	const fn = "GravitationalForce"
	if err := requireNonNegative(fn, param{"m1", m1}, param{"m2", m2}); err != nil {
		return Force{}, err
	}

	d := r2.Sub(r1)
	dist2 := d.Dot(d)
	if dist2 == 0 {
		return Force{}, rangeError(fn, "|r2-r1|", 0, ReasonCoincidentPositions)
	}
	if !isFinite(dist2) {
		return Force{}, finiteError(fn, "|r2-r1|", dist2)
	}

	dir := d.Scale(1 / math.Sqrt(dist2))
	mag := G * m1 * m2 / dist2
	return Force{Vector: dir.Scale(mag), Magnitude: mag, Direction: dir}, nil
}

// GravitationalAccelerationOn1By2 returns the acceleration (m/s²) body 2 of
// mass m2 imparts on anything located at r1.
func GravitationalAccelerationOn1By2(m2 float64, r1, r2 Vector) (Vector, error) {
	f, err := GravitationalForce(1, m2, r1, r2)
	if err != nil {
		return Vector{}, err
	}
	return f.Vector, nil
}
