package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayudabesh/marketplace-api/internal/api/middleware"
	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

// CurrentUser extracts the user resolved by the authorization gate. Its
// presence proves the gate ran; a protected route reached without it is a
// wiring bug surfaced as 401 rather than a panic.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
