package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core)
	return &ZapLogger{Logger: l}, logs
}

func TestNewZapLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "guild.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "guild-test"})
	require.NoError(t, err)

	zl.Info("hello", String("character", "Rin"))
	require.NoError(t, zl.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"hello"`)
	assert.Contains(t, string(content), `"character":"Rin"`)
	assert.Contains(t, string(content), `"service":"guild-test"`)
	assert.Equal(t, path, zl.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"})
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zap.DebugLevel))
	assert.True(t, zl.Core().Enabled(zap.InfoLevel))
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		err    error
		level  string
		msg    string
	}{
		{name: "ok", status: http.StatusOK, level: "info", msg: "Request processed"},
		{name: "client error", status: http.StatusUnauthorized, level: "warn", msg: "Client error"},
		{name: "server error", status: http.StatusInternalServerError, err: errors.New("db down"), level: "error", msg: "Server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			zl, logs := observedLogger()
			zl.LogHTTPRequest(http.MethodGet, "/scores/list", "127.0.0.1", "7", "req-1", tc.status, 5*time.Millisecond, tc.err)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.level, entries[0].Level.String())
			assert.Equal(t, tc.msg, entries[0].Message)
			fields := entries[0].ContextMap()
			assert.Equal(t, int64(tc.status), fields["status"])
			assert.Equal(t, "req-1", fields["request_id"])
			assert.Equal(t, "7", fields["user_id"])
			assert.Equal(t, http.MethodGet, fields["method"])
			assert.Equal(t, "/scores/list", fields["path"])
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := observedLogger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/characters?x=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("guildmember_id", int64(42))

	handler := ZapEchoMiddleware(zl)(func(c echo.Context) error {
		return c.JSON(http.StatusTeapot, map[string]string{"status": "tea"})
	})

	require.NoError(t, handler(c))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/characters?x=1", fields["path"])
	assert.Equal(t, "42", fields["user_id"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}

func TestGlobalLogger(t *testing.T) {
	zl, logs := observedLogger()
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Warn("cleanup failed", Err(errors.New("timeout")))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "cleanup failed", logs.All()[0].Message)
	assert.Same(t, zl, GetGlobalLogger())
}

func TestGlobalLogger_ReportsCallerLocation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core, zap.AddCaller())
	SetGlobalLogger(&ZapLogger{Logger: l})
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Info("score saved")
	Error("score failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.True(t, entry.Caller.Defined)
		assert.True(t, strings.HasSuffix(entry.Caller.File, "zap_logger_test.go"), entry.Caller.File)
	}
}
