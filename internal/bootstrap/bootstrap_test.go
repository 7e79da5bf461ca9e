package bootstrap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-salary/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLifecycleLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := bootstrap.NewZapLifecycleLogger(zap.New(core))

	l.Log(context.Background(), bootstrap.LifecycleEvent{
		Action:  bootstrap.ActionServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "interrupt"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "lifecycle", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, bootstrap.ActionServerShutdown, fields["action"])
	assert.Equal(t, "Server is shutting down", fields["message"])
}

func TestNewHTTPServer(t *testing.T) {
	cfg := bootstrap.DefaultServerConfig("8080")
	srv := bootstrap.NewHTTPServer(http.NotFoundHandler(), cfg)

	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.IdleTimeout)
}

func TestShutdown_IdleServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	assert.NoError(t, bootstrap.Shutdown(ts.Config, time.Second))
}
