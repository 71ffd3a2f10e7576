package kepler

import "math"

// BurnDirection tells whether a burn adds or removes speed.
type BurnDirection string

const (
	Prograde   BurnDirection = "prograde"
	Retrograde BurnDirection = "retrograde"
	NoBurn     BurnDirection = "none"
)

func burnDirection(signedDv float64) BurnDirection {
	switch {
	case math.Abs(signedDv) < 1e-15:
		return NoBurn
	case signedDv > 0:
		return Prograde
	default:
		return Retrograde
	}
}

// Hohmann summarizes a two-impulse transfer between coplanar circular orbits.
type Hohmann struct {
	SemiMajorAxis float64       `json:"semi_major_axis"` // transfer ellipse a = (r1+r2)/2
	DeltaV1       float64       `json:"dv1"`             // |Δv| of the departure burn
	DeltaV2       float64       `json:"dv2"`             // |Δv| of the arrival burn
	DeltaVTotal   float64       `json:"dv_total"`
	TransferTime  float64       `json:"transfer_time"` // half the transfer ellipse period
	Direction1    BurnDirection `json:"dir1"`
	Direction2    BurnDirection `json:"dir2"`
}

// HohmannTransfer computes the transfer from a circular orbit of radius r1 to
// one of radius r2 around a body with gravitational parameter mu.
func HohmannTransfer(r1, r2, mu float64) (Hohmann, error) {
	if err := requirePositive("HohmannTransfer", param{"r1", r1}, param{"r2", r2}, param{"mu", mu}); err != nil {
		return Hohmann{}, err
	}

	at := 0.5 * (r1 + r2)
	v1c := math.Sqrt(mu / r1)
	v2c := math.Sqrt(mu / r2)
	vPeri := math.Sqrt(mu * (2/r1 - 1/at))
	vApo := math.Sqrt(mu * (2/r2 - 1/at))

	dv1 := vPeri - v1c
	dv2 := v2c - vApo

	return Hohmann{
		SemiMajorAxis: at,
		DeltaV1:       math.Abs(dv1),
		DeltaV2:       math.Abs(dv2),
		DeltaVTotal:   math.Abs(dv1) + math.Abs(dv2),
		TransferTime:  math.Pi * math.Sqrt(at*at*at/mu),
		Direction1:    burnDirection(dv1),
		Direction2:    burnDirection(dv2),
	}, nil
}

// PlaneChangeDeltaV returns 2v·sin(Δi/2) for a pure inclination change.
func PlaneChangeDeltaV(v, deltaI float64) (float64, error) {
	const fn = "PlaneChangeDeltaV"
	if err := requireNonNegative(fn, param{"v", v}); err != nil {
		return 0, err
	}
	if err := requireHalfTurn(fn, "deltaI", deltaI); err != nil {
		return 0, err
	}
	return 2 * v * math.Sin(deltaI/2), nil
}

// CombineBurnsDeltaV returns the single-burn Δv between velocity magnitudes
// v1 and v2 separated by deltaTheta (law of cosines).
func CombineBurnsDeltaV(v1, v2, deltaTheta float64) (float64, error) {
	const fn = "CombineBurnsDeltaV"
	if err := requireNonNegative(fn, param{"v1", v1}, param{"v2", v2}); err != nil {
		return 0, err
	}
	if err := requireHalfTurn(fn, "deltaTheta", deltaTheta); err != nil {
		return 0, err
	}

	radicand := v1*v1 + v2*v2 - 2*v1*v2*math.Cos(deltaTheta)
	if radicand < 0 {
		if radicand > -1e-12*(v1*v1+v2*v2) {
			return 0, nil
		}
		return 0, rangeError(fn, "deltaTheta", deltaTheta, ReasonNonPhysical)
	}
	return math.Sqrt(radicand), nil
}

// RocketDeltaVFromVe is the Tsiolkovsky equation ve·ln(m0/mf).
func RocketDeltaVFromVe(ve, m0, mf float64) (float64, error) {
	const fn = "RocketDeltaVFromVe"
	if err := requirePositive(fn, param{"ve", ve}, param{"m0", m0}, param{"mf", mf}); err != nil {
		return 0, err
	}
	if mf >= m0 {
		return 0, rangeError(fn, "mf", mf, ReasonFinalMassTooLarge)
	}
	return ve * math.Log(m0/mf), nil
}

// RocketDeltaVFromIsp is the Tsiolkovsky equation with ve = g0·Isp.
func RocketDeltaVFromIsp(isp, m0, mf float64) (float64, error) {
	if err := requirePositive("RocketDeltaVFromIsp", param{"Isp", isp}); err != nil {
		return 0, err
	}
	return RocketDeltaVFromVe(StandardGravity*isp, m0, mf)
}

// GravityAssistTurningAngle returns the hyperbolic deflection
// 2·asin(1 / (1 + rp·v∞²/μ)).
func GravityAssistTurningAngle(rp, vInf, mu float64) (float64, error) {
	const fn = "GravityAssistTurningAngle"
	if err := requirePositive(fn, param{"rp", rp}, param{"mu", mu}); err != nil {
		return 0, err
	}
	if err := requireNonNegative(fn, param{"vInfinity", vInf}); err != nil {
		return 0, err
	}
	x := 1 / (1 + rp*vInf*vInf/mu)
	return 2 * math.Asin(math.Min(1, math.Max(0, x))), nil
}

// OberthEnergyGain returns the first-order specific energy gain v·Δv of a
// burn performed at speed v.
func OberthEnergyGain(v, dv float64) (float64, error) {
	if err := requireNonNegative("OberthEnergyGain", param{"v", v}, param{"dv", dv}); err != nil {
		return 0, err
	}
	return v * dv, nil
}
