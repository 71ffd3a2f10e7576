package kepler

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHohmannTransfer(t *testing.T) {
	h, err := HohmannTransfer(1, 4, 1)
	require.NoError(t, err)

	assert.Equal(t, 2.5, h.SemiMajorAxis)
	assert.InDelta(t, math.Sqrt(1.6)-1, h.DeltaV1, 1e-15)
	assert.InDelta(t, 0.5-math.Sqrt(0.1), h.DeltaV2, 1e-15)
	assert.InDelta(t, h.DeltaV1+h.DeltaV2, h.DeltaVTotal, 1e-15)
	assert.InDelta(t, math.Pi*math.Sqrt(2.5*2.5*2.5), h.TransferTime, 1e-12)
	assert.Equal(t, Prograde, h.Direction1)
	assert.Equal(t, Prograde, h.Direction2)

	down, err := HohmannTransfer(4, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, Retrograde, down.Direction1)
	assert.Equal(t, Retrograde, down.Direction2)
	assert.InDelta(t, h.DeltaVTotal, down.DeltaVTotal, 1e-15)

	same, err := HohmannTransfer(1, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, same.DeltaVTotal)
	assert.Equal(t, NoBurn, same.Direction1)
	assert.Equal(t, NoBurn, same.Direction2)

	_, err = HohmannTransfer(0, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPlaneChangeDeltaV(t *testing.T) {
	dv, err := PlaneChangeDeltaV(7.8, math.Pi/3)
	require.NoError(t, err)
	assert.InDelta(t, 7.8, dv, 1e-12)

	_, err = PlaneChangeDeltaV(1, 4)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ReasonAngleOutOfHalfTurn, de.Reason)
}

func TestCombineBurnsDeltaV(t *testing.T) {
	dv, err := CombineBurnsDeltaV(3, 4, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 5, dv, 1e-12)

	dv, err = CombineBurnsDeltaV(1, 1, 0)
	require.NoError(t, err)
	assert.Zero(t, dv)

	dv, err = CombineBurnsDeltaV(2, 3, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 5, dv, 1e-12)
}

func TestRocketEquation(t *testing.T) {
	dv, err := RocketDeltaVFromVe(1, math.E, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, dv, 1e-15)

	dv, err = RocketDeltaVFromIsp(300, 100, 50)
	require.NoError(t, err)
	assert.InDelta(t, StandardGravity*300*math.Ln2, dv, 1e-9)

	_, err = RocketDeltaVFromVe(3000, 50, 50)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ReasonFinalMassTooLarge, de.Reason)

	_, err = RocketDeltaVFromIsp(0, 100, 50)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestGravityAssistTurningAngle(t *testing.T) {
	delta, err := GravityAssistTurningAngle(1, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/3, delta, 1e-12)

	delta, err = GravityAssistTurningAngle(1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, delta, 1e-12)
}

func TestOberthEnergyGain(t *testing.T) {
	gain, err := OberthEnergyGain(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 14.0, gain)

	_, err = OberthEnergyGain(-1, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
