package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/danapr/tumpangan/internal/pkg/jwt"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/internal/utils"
)

// Context keys set by the JWT middleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
// It extracts the requester id and role for downstream ownership checks;
// token issuance is the identity service's concern.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := claims["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequesterID returns the authenticated user id placed in the context by
// JWTAuthMiddleware
func RequesterID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

// RequesterIsAdmin reports whether the authenticated user carries the admin role
func RequesterIsAdmin(c echo.Context) bool {
	role, _ := c.Get(ContextUserRole).(string)
	return role == models.RoleAdmin
}
