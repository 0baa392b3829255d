package middleware

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userportal/registration-system/internal/core/domain"
)

func TestRequireRole_Allows(t *testing.T) {
	c, _ := newRequestContext(t, "")
	c.Set(ContextRole, domain.RoleAdmin)

	called := false
	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	c, _ := newRequestContext(t, "")
	c.Set(ContextRole, "user")

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("next handler should not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if he.Message != "Admin access required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRequireRole_RejectsMissingRole(t *testing.T) {
	c, _ := newRequestContext(t, "")

	err := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("next handler should not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
