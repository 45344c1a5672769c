package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and answers 500
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	userID := "anonymous"
	if uid := c.Get(ContextKeyGuildMemberID); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", userID),
		logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
	)

	if c.Response().Committed {
		return nil
	}
	return utils.InternalServerErrorResponse(c, "")
}
