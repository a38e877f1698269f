package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// Middleware bundles the middlewares that need configuration
type Middleware struct {
	cfg *models.Config
}

// NewMiddleware creates a configured middleware set
func NewMiddleware(cfg *models.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// APIKeyHandler validates the API key for service-to-service communication
func (m *Middleware) APIKeyHandler(allowedKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, allowed := range allowedKeys {
				if allowed != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(allowed)) == 1 {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
