package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	handler := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, handler(c))

		_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
		assert.NoError(t, err)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, handler(c))

		assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	})
}
