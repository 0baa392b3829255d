package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userportal/registration-system/internal/api/metrics"
	"github.com/userportal/registration-system/internal/core/ports"
)

// Context keys under which the Auth middleware stores the verified identity.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth is the access gate: it extracts the bearer token, verifies it, and
// injects the decoded identity into the request context.
//
// A missing token is rejected with 401; a token that fails verification is
// rejected with 403. Expired and otherwise-invalid tokens get the same
// response so a caller cannot tell which case occurred.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			c.Set(ContextUserID, identity.ID)
			c.Set(ContextUsername, identity.Username)
			c.Set(ContextRole, identity.Role)

			return next(c)
		}
	}
}
