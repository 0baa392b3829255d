package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userportal/registration-system/internal/api/metrics"
	"github.com/userportal/registration-system/internal/core/domain"
)

// RequireRole enforces role-based access after the Auth middleware has run.
// The role check is deliberately separate from the access gate so the gate
// stays reusable for any authenticated endpoint.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, forbiddenMessage(allowedRoles))
			}
			return next(c)
		}
	}
}

func forbiddenMessage(roles []string) string {
	if len(roles) == 1 && roles[0] == domain.RoleAdmin {
		return "Admin access required"
	}
	return "Insufficient role"
}
