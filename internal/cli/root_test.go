package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/kepler/internal/config"
)

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.AddrEnv, "")

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "kepler", cmd.Use)
	assert.Contains(t, cmd.Long, "Kepler's equation")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"solve", "anomaly", "hohmann", "state", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	cfg := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "c", cfg.Shorthand)
}

func TestSolveFlags(t *testing.T) {
	cmd := NewRootCommand()
	solve, _, err := cmd.Find([]string{"solve"})
	require.NoError(t, err)

	method := solve.Flags().Lookup("method")
	require.NotNil(t, method)
	assert.Equal(t, "auto", method.DefValue)
	assert.NotNil(t, solve.Flags().Lookup("max-iter"))
	assert.NotNil(t, solve.Flags().Lookup("tolerance"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "solve", "1", "0.1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBadArguments(t *testing.T) {
	tests := [][]string{
		{"solve", "one", "0.1"},
		{"solve", "1", "e"},
		{"solve", "1"},
		{"solve", "1", "0.1", "--method", "magic"},
		{"hohmann", "7000", "x"},
		{"anomaly", "1"},
		{"--config", "/does/not/exist.yaml", "solve", "1", "0.1"},
	}
	for _, args := range tests {
		_, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, ExitCommandError, GetExitCode(err), "%v: %v", args, err)
	}
}

func TestSolveMethods(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"solve", "1", "0.3", "--method", "bisection", "--tolerance", "1e-12", "--max-iter", "200"}, "method:            bisection"},
		{[]string{"solve", "1", "0.3", "--method", "newton"}, "method:            newton-raphson"},
		{[]string{"solve", "1", "1.2", "--method", "high-ecc"}, "method:            high-eccentricity"},
		{[]string{"solve", "1", "0.95"}, "method:            high-eccentricity"},
	}
	for _, tt := range tests {
		out, _, err := execute(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Contains(t, out, tt.want)
		assert.Contains(t, out, "converged:         true")
	}

	out, _, err := execute(t, "solve", "1", "0.5", "--method", "newton", "--max-iter", "1", "--tolerance", "1e-15")
	assert.Equal(t, ExitFailure, GetExitCode(err), "err = %v", err)
	assert.Contains(t, out, "Error [E002]")
}

func TestVerboseGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "-v", "--format", "json", "solve", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, errOut, "solving M=1 e=0")
	assert.NotContains(t, out, "solving")
}

func TestErrorsReportedOnce(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "solve", "1", "1.5")
	require.Error(t, err)
	assert.True(t, IsReported(err), "formatter already wrote %q", out)
	assert.Equal(t, 1, strings.Count(out, `"status":"error"`))

	_, _, err = execute(t, "state", "testdata/does-not-exist.tle")
	require.Error(t, err)
	assert.True(t, IsReported(err))

	_, _, err = execute(t, "solve", "1")
	require.Error(t, err)
	assert.False(t, IsReported(err), "cobra argument errors still need printing")

	assert.False(t, IsReported(assert.AnError))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := WrapExitError(ExitFailure, "outer", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "outer: "+assert.AnError.Error(), wrapped.Error())
}
