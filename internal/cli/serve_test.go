package cli

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/kepler/internal/config"
)

func testRootOptions() *RootOptions {
	return &RootOptions{
		Format: "text",
		Config: config.Default(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunServeStopsOnCancel(t *testing.T) {
	opts := testRootOptions()
	cfg := opts.Config.Server
	cfg.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cfg, opts) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("runServe did not return after cancellation")
	}
}

func TestRunServeListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	opts := testRootOptions()
	cfg := opts.Config.Server
	cfg.Addr = ln.Addr().String()

	err = runServe(context.Background(), cfg, opts)
	assert.Error(t, err)
}

func TestServeFlags(t *testing.T) {
	cmd := NewRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addr := serve.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, "", addr.DefValue)

	_, _, err = execute(t, "serve", "extra")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
