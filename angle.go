package kepler

import "math"

// WrapAngle reduces angle by 2π keeping the sign of the input, so the result
// lies in (-2π, 2π). Values that land within floating-point drift of ±2π are
// snapped to exactly 0.
//
// WrapAngle does not return a canonical principal value: -π/2 stays -π/2.
// Use NormalizeAngle when [0, 2π) is required.
func WrapAngle(angle float64) float64 {
	angle = math.Mod(angle, twoPi)

	if math.Abs(angle-twoPi) < wrapEpsilon || math.Abs(angle+twoPi) < wrapEpsilon {
		return 0
	}
	if math.Abs(angle-twoPi) < wrapLooseEpsilon || math.Abs(angle+twoPi) < wrapLooseEpsilon {
		return 0
	}
	return angle
}

// NormalizeAngle maps angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = WrapAngle(angle)
	if angle < 0 {
		angle += twoPi
	}
	// -tiny + 2π rounds to 2π
	if angle >= twoPi {
		return 0
	}
	return angle
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * deg2rad
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * rad2deg
}
