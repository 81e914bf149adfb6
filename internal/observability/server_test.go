// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package observability

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startServer starts s and registers a cleanup that stops it.
func startServer(t *testing.T, s *Server) <-chan error {
	t.Helper()
	errCh, err := s.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	})
	return errCh
}

func get(t *testing.T, s *Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get("http://" + s.Addr() + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_Metrics(t *testing.T) {
	server := NewServer("127.0.0.1:0", func() bool { return true }, quietLogger())
	startServer(t, server)
	require.NotEmpty(t, server.Addr())

	server.Metrics().SessionsTotal.Inc()
	RecordOutputFailure("login")

	status, body := get(t, server, "/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "# HELP")
	assert.Contains(t, body, "# TYPE")
	assert.Contains(t, body, "go_")
	assert.Contains(t, body, "process_")
	assert.Contains(t, body, "holoauth_shell_sessions_total 1")
	assert.Contains(t, body, `holoauth_shell_output_failures_total{command="login"}`)
}

func TestServer_ExternalCollectors(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil, quietLogger())
	ops := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holoauth_test_ops_total",
		Help: "test counter",
	})
	server.Registerer().MustRegister(ops)
	ops.Add(3)

	startServer(t, server)

	_, body := get(t, server, "/metrics")
	assert.Contains(t, body, "holoauth_test_ops_total 3")
}

func TestServer_SizeGauges(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil, quietLogger())
	users, tokens := 2, 5
	server.RegisterSizeGauges(func() int { return users }, func() int { return tokens })
	startServer(t, server)

	_, body := get(t, server, "/metrics")
	assert.Contains(t, body, "holoauth_users 2")
	assert.Contains(t, body, "holoauth_issued_tokens 5")

	users = 3
	_, body = get(t, server, "/metrics")
	assert.Contains(t, body, "holoauth_users 3")
}

func TestServer_SizeGaugesNilSkipped(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil, quietLogger())
	server.RegisterSizeGauges(nil, func() int { return 1 })
	startServer(t, server)

	_, body := get(t, server, "/metrics")
	assert.NotContains(t, body, "holoauth_users ")
	assert.Contains(t, body, "holoauth_issued_tokens 1")
}

func TestServer_Probes(t *testing.T) {
	tests := []struct {
		name       string
		ready      ReadinessChecker
		path       string
		wantStatus int
		wantBody   string
	}{
		{"liveness", nil, "/healthz/liveness", http.StatusOK, "ok"},
		{"readiness when ready", func() bool { return true }, "/healthz/readiness", http.StatusOK, "ok"},
		{"readiness when not ready", func() bool { return false }, "/healthz/readiness", http.StatusServiceUnavailable, "not ready"},
		{"readiness with nil checker", nil, "/healthz/readiness", http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer("127.0.0.1:0", tt.ready, quietLogger())
			startServer(t, server)

			status, body := get(t, server, tt.path)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(body))
		})
	}
}

func TestServer_DoubleStartFails(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil, quietLogger())
	startServer(t, server)

	_, err := server.Start()
	assert.Error(t, err)
}

func TestServer_StartFailsOnBadAddr(t *testing.T) {
	server := NewServer("256.0.0.1:http-nope", nil, quietLogger())

	_, err := server.Start()
	require.Error(t, err)
	assert.False(t, server.running.Load())
}

func TestServer_StopIdempotent(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil, quietLogger())

	ctx := context.Background()
	assert.NoError(t, server.Stop(ctx))
	assert.NoError(t, server.Stop(ctx))
}

func TestServer_ErrorChannelReportsServeErrors(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil, quietLogger())
	errCh := startServer(t, server)

	require.NotNil(t, server.listener)
	_ = server.listener.Close()

	select {
	case serveErr := <-errCh:
		assert.Error(t, serveErr)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error on error channel")
	}
}

func TestServer_ErrorChannelClosesOnNormalShutdown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server := NewServer("127.0.0.1:0", nil, quietLogger())
	errCh, err := server.Start()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Stop(ctx))

	select {
	case err, ok := <-errCh:
		if ok {
			assert.NoError(t, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error channel to close")
	}
}
