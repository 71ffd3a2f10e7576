package kepler

import (
	"errors"
	"math"
	"testing"
)

func TestTrueToMeanAnomaly(t *testing.T) {
	tests := []struct {
		name  string
		nu, e float64
		want  float64
	}{
		{"periapsis", 0, 0.3, 0},
		{"apoapsis", math.Pi, 0.5, math.Pi},
		{"circular is identity", 1.2, 0, 1.2},
		{"negative true anomaly", -math.Pi / 3, 0, -math.Pi / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrueToMeanAnomaly(tt.nu, tt.e)
			if err != nil {
				t.Fatalf("TrueToMeanAnomaly() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("TrueToMeanAnomaly(%v, %v) = %v, want %v", tt.nu, tt.e, got, tt.want)
			}
		})
	}
}

func TestAnomalyRoundTrip(t *testing.T) {
	for _, e := range []float64{0.05, 0.3, 0.7, 0.95} {
		for _, nu := range []float64{0.2, 1, 2.5, 3} {
			M, err := TrueToMeanAnomaly(nu, e)
			if err != nil {
				t.Fatalf("TrueToMeanAnomaly(%v, %v) error = %v", nu, e, err)
			}
			got, err := TrueAnomalyFromMean(M, e, nil)
			if err != nil {
				t.Fatalf("TrueAnomalyFromMean(%v, %v) error = %v", M, e, err)
			}
			if math.Abs(got-nu) > 1e-7 {
				t.Errorf("e=%v: ν=%v → M=%v → ν=%v", e, nu, M, got)
			}
		}
	}
}

func TestTrueAnomalyFromMeanRange(t *testing.T) {
	for _, e := range []float64{0, 0.2, 0.6, 0.95} {
		for i := -8; i <= 8; i++ {
			M := float64(i) * 0.8
			nu, err := TrueAnomalyFromMean(M, e, nil)
			if err != nil {
				t.Fatalf("TrueAnomalyFromMean(%v, %v) error = %v", M, e, err)
			}
			if nu < 0 || nu >= twoPi {
				t.Errorf("TrueAnomalyFromMean(%v, %v) = %v, outside [0, 2π)", M, e, nu)
			}
			// Past apoapsis the true anomaly stays in the second half turn.
			if m := NormalizeAngle(M); m > math.Pi+1e-9 && nu <= math.Pi {
				t.Errorf("TrueAnomalyFromMean(%v, %v) = %v, want > π", M, e, nu)
			}
		}
	}
}

func TestEccentricToTrueAnomaly(t *testing.T) {
	tests := []struct {
		name string
		E, e float64
		want float64
	}{
		{"circular", 1.1, 0, 1.1},
		{"parabolic", 2, 1, math.Pi / 2},
		{"apoapsis guard", math.Pi, 0.5, math.Pi},
		{"quarter turn", math.Pi / 2, 0.6, 2 * math.Atan2(math.Sqrt(1.6), math.Sqrt(0.4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EccentricToTrueAnomaly(tt.E, tt.e)
			if err != nil {
				t.Fatalf("EccentricToTrueAnomaly() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EccentricToTrueAnomaly(%v, %v) = %v, want %v", tt.E, tt.e, got, tt.want)
			}
		})
	}

	if _, err := EccentricToTrueAnomaly(1, 1.2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("hyperbolic e: err = %v, want ErrOutOfRange", err)
	}
	if _, err := EccentricToTrueAnomaly(math.NaN(), 0.2); !errors.Is(err, ErrNotFinite) {
		t.Errorf("NaN E: err = %v, want ErrNotFinite", err)
	}
}

func TestEccentricToMeanAnomaly(t *testing.T) {
	got, err := EccentricToMeanAnomaly(math.Pi/2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Pi/2 - 0.5; math.Abs(got-want) > 1e-15 {
		t.Errorf("EccentricToMeanAnomaly(π/2, 0.5) = %v, want %v", got, want)
	}

	// Inverse of the solver.
	E, err := Solve(2, 0.4, nil)
	if err != nil {
		t.Fatal(err)
	}
	M, err := EccentricToMeanAnomaly(E, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(M-2) > 1e-9 {
		t.Errorf("EccentricToMeanAnomaly(Solve(2)) = %v, want 2", M)
	}
}

func TestMeanAnomalyAt(t *testing.T) {
	tests := []struct {
		M0, period, dt float64
		want           float64
	}{
		{0, 100, 25, math.Pi / 2},
		{0, 100, 125, math.Pi / 2},
		{1, 100, -25, 1 - math.Pi/2 + 2*math.Pi},
		{0.5, 3600, 3600 * 1e6, 0.5},
	}
	for _, tt := range tests {
		got, err := MeanAnomalyAt(tt.M0, tt.period, tt.dt)
		if err != nil {
			t.Fatalf("MeanAnomalyAt() error = %v", err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MeanAnomalyAt(%v, %v, %v) = %v, want %v", tt.M0, tt.period, tt.dt, got, tt.want)
		}
	}

	if _, err := MeanAnomalyAt(0, 0, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("zero period: err = %v, want ErrOutOfRange", err)
	}
}
