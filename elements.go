package kepler

import (
	"math"
	"time"
)

// Elements is a classical Keplerian element set of a closed orbit.
// Distances are in km, angles in radians and μ in km³/s².
type Elements struct {
	Name          string    `json:"name,omitempty"`
	SemiMajorAxis float64   `json:"semi_major_axis"`
	Eccentricity  float64   `json:"eccentricity"`
	Inclination   float64   `json:"inclination"`
	RAAN          float64   `json:"raan"`           // right ascension of the ascending node
	ArgOfPerigee  float64   `json:"arg_of_perigee"` // argument of periapsis
	MeanAnomaly   float64   `json:"mean_anomaly"`   // at Epoch
	Epoch         time.Time `json:"epoch"`
	Mu            float64   `json:"mu"`

	// When both are set, StateAt applies secular J2 drift to RAAN and
	// ArgOfPerigee.
	J2         float64 `json:"j2,omitempty"`
	BodyRadius float64 `json:"body_radius,omitempty"`
}

// Validate checks the element set describes a closed orbit.
func (el *Elements) Validate() error {
	const fn = "Elements"
	if err := requirePositive(fn, param{"a", el.SemiMajorAxis}, param{"mu", el.Mu}); err != nil {
		return err
	}
	if err := requireElliptic(fn, el.Eccentricity); err != nil {
		return err
	}
	if err := requireFinite(fn,
		param{"i", el.Inclination},
		param{"raan", el.RAAN},
		param{"argp", el.ArgOfPerigee},
		param{"M", el.MeanAnomaly},
		param{"J2", el.J2},
	); err != nil {
		return err
	}
	return requireNonNegative(fn, param{"bodyRadius", el.BodyRadius})
}

// Period returns the orbital period in seconds.
func (el *Elements) Period() (float64, error) {
	return KeplerPeriod(el.SemiMajorAxis, el.Mu)
}

// StateAt propagates the element set to t along the two-body orbit and
// returns the inertial position (km) and velocity (km/s).
func (el *Elements) StateAt(t time.Time, cfg *SolverConfig) (StateVector, error) {
	if err := el.Validate(); err != nil {
		return StateVector{}, err
	}

	a, e := el.SemiMajorAxis, el.Eccentricity
	dt := t.Sub(el.Epoch).Seconds()

	period, err := el.Period()
	if err != nil {
		return StateVector{}, err
	}
	M, err := MeanAnomalyAt(el.MeanAnomaly, period, dt)
	if err != nil {
		return StateVector{}, err
	}

	raan, argp := el.RAAN, el.ArgOfPerigee
	if el.J2 != 0 && el.BodyRadius > 0 {
		n := twoPi / period
		dRAAN, err := J2NodalPrecessionRate(el.J2, n, el.BodyRadius, a, el.Inclination, e)
		if err != nil {
			return StateVector{}, err
		}
		dArgp, err := J2ArgumentOfPerigeeRate(el.J2, n, el.BodyRadius, a, el.Inclination, e)
		if err != nil {
			return StateVector{}, err
		}
		raan = NormalizeAngle(raan + dRAAN*dt)
		argp = NormalizeAngle(argp + dArgp*dt)
	}

	E, err := Solve(M, e, cfg)
	if err != nil {
		return StateVector{}, err
	}

	// Perifocal frame: x toward periapsis, z along the angular momentum.
	sinE, cosE := math.Sincos(E)
	b := math.Sqrt(1 - e*e)
	r := a * (1 - e*cosE)
	k := math.Sqrt(el.Mu*a) / r

	pos := Vector{X: a * (cosE - e), Y: a * b * sinE}
	vel := Vector{X: -k * sinE, Y: k * b * cosE}

	rot := Rot3(raan).Mul(Rot1(el.Inclination)).Mul(Rot3(argp))
	return StateVector{Position: rot.Apply(pos), Velocity: rot.Apply(vel)}, nil
}
