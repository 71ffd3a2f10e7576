package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhenakh/kepler"
)

// SatelliteState is the two-body state of one element set at a given time.
type SatelliteState struct {
	Name     string          `json:"name"`
	Epoch    time.Time       `json:"epoch"`
	At       time.Time       `json:"at"`
	Position kepler.Vector   `json:"position"` // km, inertial
	Velocity kepler.Vector   `json:"velocity"` // km/s, inertial
	SubPoint kepler.Geodetic `json:"sub_point"`
}

// StateOutput lists the propagated element sets in file order.
type StateOutput struct {
	Satellites []SatelliteState `json:"satellites"`
}

func (o StateOutput) String() string {
	var b strings.Builder
	for _, s := range o.Satellites {
		fmt.Fprintf(&b, "%s\n", s.Name)
		fmt.Fprintf(&b, "  epoch:     %s\n", s.Epoch.Format(time.RFC3339))
		fmt.Fprintf(&b, "  at:        %s\n", s.At.Format(time.RFC3339))
		fmt.Fprintf(&b, "  position:  %.3f %.3f %.3f km\n", s.Position.X, s.Position.Y, s.Position.Z)
		fmt.Fprintf(&b, "  velocity:  %.6f %.6f %.6f km/s\n", s.Velocity.X, s.Velocity.Y, s.Velocity.Z)
		fmt.Fprintf(&b, "  sub-point: %.4f° %.4f° %.3f km\n", s.SubPoint.Latitude, s.SubPoint.Longitude, s.SubPoint.Altitude)
	}
	return b.String()
}

// NewStateCommand creates the state command.
func NewStateCommand(rootOpts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "state <element-file>",
		Short: "Propagate element sets with two-body motion",
		Long: `Read two-line element sets, or a JSON array of OMM records, and print the
inertial position and velocity at --at (now by default) together with the
sub-satellite point.

Propagation is Keplerian with secular J2 drift of the node and perigee; it is
not SGP4 and drifts from published ephemerides within days.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runState(cmd, rootOpts, args[0], at)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "RFC3339 propagation time (default now)")

	return cmd
}

func runState(cmd *cobra.Command, opts *RootOptions, path, atFlag string) error {
	f := opts.formatter(cmd)

	at := time.Now().UTC()
	if atFlag != "" {
		t, err := time.Parse(time.RFC3339, atFlag)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --at %q", atFlag), err)
		}
		at = t.UTC()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f.report(ErrCodeInput, ExitCommandError, "read element file", err)
	}

	sets, err := loadElements(data)
	if err != nil {
		return f.fail(err)
	}
	f.VerboseLog("loaded %d element set(s) from %s", len(sets), path)

	cfg := opts.Config.Solver
	out := StateOutput{Satellites: make([]SatelliteState, 0, len(sets))}
	for _, el := range sets {
		sv, err := el.StateAt(at, &cfg)
		if err != nil {
			return f.fail(fmt.Errorf("%s: %w", el.Name, err))
		}
		sub, err := kepler.SubPoint(sv.Position, at)
		if err != nil {
			return f.fail(fmt.Errorf("%s: %w", el.Name, err))
		}
		opts.Logger.Debug("propagated", "name", el.Name, "since_epoch", at.Sub(el.Epoch).String())
		out.Satellites = append(out.Satellites, SatelliteState{
			Name:     el.Name,
			Epoch:    el.Epoch,
			At:       at,
			Position: sv.Position,
			Velocity: sv.Velocity,
			SubPoint: sub,
		})
	}

	return f.Success(out)
}

// loadElements decodes an OMM JSON array or a file of TLEs.
func loadElements(data []byte) ([]kepler.Elements, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		omms, err := kepler.ParseOMMs(trimmed)
		if err != nil {
			return nil, err
		}
		sets := make([]kepler.Elements, 0, len(omms))
		for _, o := range omms {
			el, err := o.Elements()
			if err != nil {
				return nil, err
			}
			sets = append(sets, el)
		}
		return sets, nil
	}

	chunks, err := splitTLEs(string(data))
	if err != nil {
		return nil, err
	}
	sets := make([]kepler.Elements, 0, len(chunks))
	for _, chunk := range chunks {
		tle, err := kepler.ParseTLE(chunk)
		if err != nil {
			return nil, err
		}
		el, err := tle.Elements()
		if err != nil {
			return nil, err
		}
		if el.Name == "" {
			el.Name = strconv.Itoa(tle.SatelliteNumber)
		}
		sets = append(sets, el)
	}
	return sets, nil
}

// splitTLEs groups the lines of a TLE file into ParseTLE inputs, keeping an
// optional name line in front of each pair.
func splitTLEs(text string) ([]string, error) {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimRight(l, " \t"))
		}
	}

	var chunks []string
	for i := 0; i < len(lines); {
		name := ""
		if !strings.HasPrefix(lines[i], "1 ") {
			name = lines[i]
			i++
		}
		if i+1 >= len(lines) || !strings.HasPrefix(lines[i], "1 ") || !strings.HasPrefix(lines[i+1], "2 ") {
			return nil, fmt.Errorf("%w: incomplete element set near line %d", kepler.ErrInvalidElementSet, i+1)
		}
		chunk := lines[i] + "\n" + lines[i+1]
		if name != "" {
			chunk = name + "\n" + chunk
		}
		chunks = append(chunks, chunk)
		i += 2
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no element sets found", kepler.ErrInvalidElementSet)
	}
	return chunks, nil
}
