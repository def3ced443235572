package httptransport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	server := NewServer(ServerConfig{
		Address:         "127.0.0.1:0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}, http.NewServeMux(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	// Give the listener a moment to come up before requesting shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	server := NewServer(ServerConfig{
		Address:         "256.0.0.1:bad",
		ShutdownTimeout: time.Second,
	}, http.NewServeMux(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := server.Run(context.Background())
	require.Error(t, err)
}
