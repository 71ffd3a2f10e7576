package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// To regenerate the fixtures, run:
//
//	go test ./internal/cli -run TestGoldenOutput -update
func TestGoldenOutput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantExit int
	}{
		{"solve_text", []string{"solve", "3.141592653589793", "0.5"}, ExitSuccess},
		{"solve_json", []string{"--format", "json", "solve", "3.141592653589793", "0.5"}, ExitSuccess},
		{"solve_circular", []string{"solve", "1.25", "0"}, ExitSuccess},
		{"anomaly_text", []string{"anomaly", "1.5707963267948966", "0.5"}, ExitSuccess},
		{"hohmann_text", []string{"hohmann", "6678", "42164"}, ExitSuccess},
		{"solve_domain_error", []string{"solve", "1", "1.5"}, ExitFailure},
		{"solve_domain_error_json", []string{"--format", "json", "solve", "1", "1.5"}, ExitFailure},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			assert.Equal(t, tt.wantExit, GetExitCode(err), "err = %v", err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}
