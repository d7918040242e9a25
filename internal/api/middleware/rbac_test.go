package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

func TestRBAC_AllowedRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newContext(req)
	c.Set(UserContextKey, &domain.User{ID: "user-1", Role: domain.RoleProvider})

	called := false
	handler := RBAC(domain.RoleProvider)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected next to run, called=%v code=%d", called, rec.Code)
	}
}

func TestRBAC_DisallowedRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newContext(req)
	c.Set(UserContextKey, &domain.User{ID: "user-1", Role: domain.RoleCustomer})

	handler := RBAC(domain.RoleProvider)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_MissingUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newContext(req)

	handler := RBAC(domain.RoleProvider)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
