package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhenakh/kepler/internal/api"
)

// SolveOutput is the result of the solve command.
type SolveOutput struct {
	MeanAnomaly  float64 `json:"mean_anomaly"`
	Eccentricity float64 `json:"eccentricity"`
	api.SolveResponse
}

func (o SolveOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "eccentric anomaly: %.10f rad\n", o.E)
	fmt.Fprintf(&b, "method:            %s\n", o.Method)
	fmt.Fprintf(&b, "iterations:        %d\n", o.Iterations)
	fmt.Fprintf(&b, "fallback:          %t\n", o.Fallback)
	fmt.Fprintf(&b, "converged:         %t\n", o.Converged)
	return b.String()
}

type solveFlags struct {
	method    string
	maxIter   int
	tolerance float64
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve <mean-anomaly> <eccentricity>",
		Short: "Solve Kepler's equation for the eccentric anomaly",
		Long: `Solve M = E - e·sin(E) for E, with M in radians.

The auto method picks Newton-Raphson, or the high-eccentricity solver above
e = 0.9, and falls back to bisection when either does not converge. The high-ecc method also accepts
hyperbolic orbits (e >= 1) and then returns the hyperbolic anomaly.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, rootOpts, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.method, "method", "m", api.MethodAuto, "solver (auto|newton|bisection|high-ecc)")
	cmd.Flags().IntVar(&flags.maxIter, "max-iter", 0, "iteration budget (default from config)")
	cmd.Flags().Float64Var(&flags.tolerance, "tolerance", 0, "convergence tolerance in radians (default from config)")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *RootOptions, flags *solveFlags, args []string) error {
	f := opts.formatter(cmd)

	M, err := parseFloatArg("mean anomaly", args[0])
	if err != nil {
		return err
	}
	e, err := parseFloatArg("eccentricity", args[1])
	if err != nil {
		return err
	}

	solveOpts := api.SolveOptions{Method: flags.method, MaxIter: flags.maxIter, Tolerance: flags.tolerance}
	f.VerboseLog("solving M=%g e=%g with method %s", M, e, flags.method)

	resp, err := api.Solve(M, e, solveOpts, opts.Config.Solver, nil)
	if err != nil {
		return f.fail(err)
	}
	opts.Logger.Debug("solved", "method", resp.Method, "iterations", resp.Iterations)

	return f.Success(SolveOutput{MeanAnomaly: M, Eccentricity: e, SolveResponse: resp})
}
