package kepler

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)

func TestStateAtCircularEquatorial(t *testing.T) {
	el := Elements{SemiMajorAxis: 7000, Mu: MuEarth, Epoch: testEpoch}
	period, err := el.Period()
	require.NoError(t, err)

	v := math.Sqrt(MuEarth / 7000)

	at0, err := el.StateAt(testEpoch, nil)
	require.NoError(t, err)
	assert.InDelta(t, 7000, at0.Position.X, 1e-9)
	assert.InDelta(t, 0, at0.Position.Y, 1e-9)
	assert.InDelta(t, v, at0.Velocity.Y, 1e-12)

	quarter := testEpoch.Add(time.Duration(period / 4 * float64(time.Second)))
	at1, err := el.StateAt(quarter, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, at1.Position.X, 1e-3)
	assert.InDelta(t, 7000, at1.Position.Y, 1e-3)
	assert.InDelta(t, -v, at1.Velocity.X, 1e-6)
}

func TestStateAtConservesIntegrals(t *testing.T) {
	el := Elements{
		SemiMajorAxis: 12000,
		Eccentricity:  0.3,
		Inclination:   0.9,
		RAAN:          1.2,
		ArgOfPerigee:  2.1,
		MeanAnomaly:   0.4,
		Epoch:         testEpoch,
		Mu:            MuEarth,
	}
	wantEnergy := -MuEarth / (2 * el.SemiMajorAxis)
	wantH, err := SpecificAngularMomentumFromElements(el.SemiMajorAxis, el.Eccentricity, el.Mu)
	require.NoError(t, err)

	for _, dt := range []time.Duration{0, 17 * time.Minute, 3 * time.Hour, -5 * time.Hour, 240 * time.Hour} {
		sv, err := el.StateAt(testEpoch.Add(dt), nil)
		require.NoError(t, err)

		energy, err := SpecificMechanicalEnergy(sv.Velocity.Norm(), sv.Position.Norm(), el.Mu)
		require.NoError(t, err)
		assert.InDelta(t, wantEnergy, energy, 1e-9, "dt=%v", dt)

		h, err := SpecificAngularMomentum(sv.Position, sv.Velocity)
		require.NoError(t, err)
		assert.InDelta(t, wantH, h, 1e-6, "dt=%v", dt)

		r := sv.Position.Norm()
		assert.GreaterOrEqual(t, r, el.SemiMajorAxis*(1-el.Eccentricity)-1e-6)
		assert.LessOrEqual(t, r, el.SemiMajorAxis*(1+el.Eccentricity)+1e-6)
	}
}

func TestStateAtOrbitPlane(t *testing.T) {
	el := Elements{
		SemiMajorAxis: 8000,
		Eccentricity:  0.1,
		Inclination:   0.5,
		RAAN:          0.7,
		Mu:            MuEarth,
		Epoch:         testEpoch,
	}
	sinI, cosI := math.Sincos(el.Inclination)
	sinO, cosO := math.Sincos(el.RAAN)
	normal := Vector{X: sinI * sinO, Y: -sinI * cosO, Z: cosI}

	sv, err := el.StateAt(testEpoch.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, sv.Position.Dot(normal), 1e-9)
	assert.InDelta(t, 0, sv.Velocity.Dot(normal), 1e-12)
}

func TestStateAtJ2Drift(t *testing.T) {
	el := Elements{
		SemiMajorAxis: 7000,
		Inclination:   Radians(98),
		Mu:            MuEarth,
		Epoch:         testEpoch,
	}
	withJ2 := el
	withJ2.J2 = EarthJ2
	withJ2.BodyRadius = EarthRadius

	at := testEpoch.Add(24 * time.Hour)
	plain, err := el.StateAt(at, nil)
	require.NoError(t, err)
	drifted, err := withJ2.StateAt(at, nil)
	require.NoError(t, err)

	assert.InDelta(t, plain.Position.Norm(), drifted.Position.Norm(), 1e-6)
	assert.Greater(t, plain.Position.Sub(drifted.Position).Norm(), 1.0)
}

func TestElementsValidate(t *testing.T) {
	tests := []struct {
		name string
		el   Elements
		kind error
	}{
		{"hyperbolic", Elements{SemiMajorAxis: 7000, Eccentricity: 1.2, Mu: MuEarth}, ErrOutOfRange},
		{"no mu", Elements{SemiMajorAxis: 7000}, ErrOutOfRange},
		{"NaN inclination", Elements{SemiMajorAxis: 7000, Mu: MuEarth, Inclination: math.NaN()}, ErrNotFinite},
		{"negative radius", Elements{SemiMajorAxis: 7000, Mu: MuEarth, BodyRadius: -1}, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.el.StateAt(testEpoch, nil)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}
