package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := bufferedLogger(&logBuffer)

	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
		setupContext func(c echo.Context)
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("test error panic"),
			expectInLogs: []string{
				"test error panic",
				"*errors.errorString",
			},
		},
		{
			name:         "panic with member context",
			panicValue:   "member context panic",
			expectInLogs: []string{"member context panic", "\"user_id\":\"42\""},
			setupContext: func(c echo.Context) {
				c.Set(ContextKeyGuildMemberID, int64(42))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuffer.Reset()

			e := echo.New()
			handler := PanicRecoveryMiddleware(zapLogger)(func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "Internal server error", response["error"])

			logOutput := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logOutput, expected)
			}
			assert.Contains(t, logOutput, "/test")
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	var logBuffer bytes.Buffer
	e := echo.New()

	handler := PanicRecoveryMiddleware(bufferedLogger(&logBuffer))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuffer.String())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryMiddleware(nil) })
}
