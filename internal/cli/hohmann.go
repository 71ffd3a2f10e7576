package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhenakh/kepler"
)

// HohmannOutput wraps a transfer for text rendering.
type HohmannOutput struct {
	kepler.Hohmann
}

func (o HohmannOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "transfer semi-major axis: %.6f km\n", o.SemiMajorAxis)
	fmt.Fprintf(&b, "departure burn:           %.6f km/s %s\n", o.DeltaV1, o.Direction1)
	fmt.Fprintf(&b, "arrival burn:             %.6f km/s %s\n", o.DeltaV2, o.Direction2)
	fmt.Fprintf(&b, "total delta-v:            %.6f km/s\n", o.DeltaVTotal)
	fmt.Fprintf(&b, "transfer time:            %.3f s\n", o.TransferTime)
	return b.String()
}

// NewHohmannCommand creates the hohmann command.
func NewHohmannCommand(rootOpts *RootOptions) *cobra.Command {
	var mu float64

	cmd := &cobra.Command{
		Use:   "hohmann <r1> <r2>",
		Short: "Size a Hohmann transfer between two circular orbits",
		Long: `Compute the burns and flight time of a Hohmann transfer between circular
orbits of radius r1 and r2 (km) around a body with gravitational parameter
mu (km³/s², Earth by default).`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			r1, err := parseFloatArg("r1", args[0])
			if err != nil {
				return err
			}
			r2, err := parseFloatArg("r2", args[1])
			if err != nil {
				return err
			}

			h, err := kepler.HohmannTransfer(r1, r2, mu)
			if err != nil {
				return f.fail(err)
			}
			return f.Success(HohmannOutput{h})
		},
	}

	cmd.Flags().Float64Var(&mu, "mu", kepler.MuEarth, "gravitational parameter in km³/s²")

	return cmd
}
