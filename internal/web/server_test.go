package web

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort grabs an ephemeral port and releases it for the server to bind.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestServerLifecycle(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	cfg := DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = freePort(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(handler, cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// The listener comes up asynchronously; poll until it answers.
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get("http://" + server.Addr())
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	require.NoError(t, server.Shutdown(context.Background()))

	select {
	case err := <-errCh:
		assert.NoError(t, err, "Start should return cleanly after Shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}

	// The port is released once Start returns.
	_, err = http.Get("http://" + server.Addr())
	assert.Error(t, err)
}
