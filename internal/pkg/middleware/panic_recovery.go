package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/danapr/tumpangan/internal/pkg/logger"
	"github.com/danapr/tumpangan/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs them with a
// stack trace and returns a 500 to the client
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					stack := string(debug.Stack())

					zapLogger.Error("panic recovered",
						logger.Any("panic", r),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("remote_ip", c.RealIP()),
						logger.String("stack", stack),
					)

					err := fmt.Errorf("internal server error")
					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
					}
				}
			}()

			return next(c)
		}
	}
}
