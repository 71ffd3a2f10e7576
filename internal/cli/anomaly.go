package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhenakh/kepler"
)

// AnomalyOutput traces a true anomaly through the mean anomaly and back.
type AnomalyOutput struct {
	TrueAnomaly      float64 `json:"true_anomaly"`
	Eccentricity     float64 `json:"eccentricity"`
	EccentricAnomaly float64 `json:"eccentric_anomaly"`
	MeanAnomaly      float64 `json:"mean_anomaly"`
	RecoveredTrue    float64 `json:"recovered_true_anomaly"`
}

func (o AnomalyOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "true anomaly:      %.10f rad\n", o.TrueAnomaly)
	fmt.Fprintf(&b, "eccentric anomaly: %.10f rad\n", o.EccentricAnomaly)
	fmt.Fprintf(&b, "mean anomaly:      %.10f rad\n", o.MeanAnomaly)
	fmt.Fprintf(&b, "recovered true:    %.10f rad\n", o.RecoveredTrue)
	return b.String()
}

// NewAnomalyCommand creates the anomaly command.
func NewAnomalyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "anomaly <true-anomaly> <eccentricity>",
		Short: "Convert a true anomaly to mean and eccentric anomalies and back",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnomaly(cmd, rootOpts, args)
		},
	}
}

func runAnomaly(cmd *cobra.Command, opts *RootOptions, args []string) error {
	f := opts.formatter(cmd)

	nu, err := parseFloatArg("true anomaly", args[0])
	if err != nil {
		return err
	}
	e, err := parseFloatArg("eccentricity", args[1])
	if err != nil {
		return err
	}

	M, err := kepler.TrueToMeanAnomaly(nu, e)
	if err != nil {
		return f.fail(err)
	}
	cfg := opts.Config.Solver
	E, err := kepler.Solve(M, e, &cfg)
	if err != nil {
		return f.fail(err)
	}
	back, err := kepler.EccentricToTrueAnomaly(E, e)
	if err != nil {
		return f.fail(err)
	}

	return f.Success(AnomalyOutput{
		TrueAnomaly:      nu,
		Eccentricity:     e,
		EccentricAnomaly: E,
		MeanAnomaly:      M,
		RecoveredTrue:    back,
	})
}
