package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userportal/registration-system/internal/api/handler"
	"github.com/userportal/registration-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	code, body := renderError(t, &handler.ValidationError{Details: []handler.FieldDetail{
		{Field: "email", Message: "email must be a valid email"},
	}})

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["error"] != "Invalid input data" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("expected one detail, got %+v", body["details"])
	}
	detail, _ := details[0].(map[string]any)
	if detail["field"] != "email" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "Username or email already exists"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"expired token", domain.ErrTokenExpired, http.StatusForbidden, "Invalid token"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusForbidden, "Invalid token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body["error"] != tc.msg {
				t.Fatalf("expected %q, got %v", tc.msg, body["error"])
			}
			if _, present := body["details"]; present {
				t.Fatalf("details must only appear on validation errors")
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection refused"))

	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "Internal server error" {
		t.Fatalf("internal detail leaked: %v", body["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Access token required"))

	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["error"] != "Access token required" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}
