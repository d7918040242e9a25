package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ayudabesh/marketplace-api/internal/api/metrics"
	"github.com/ayudabesh/marketplace-api/internal/core/domain"
	"github.com/ayudabesh/marketplace-api/internal/core/ports"
)

// ResponseMode selects how the gate rejects unauthenticated callers. Each
// route names its mode explicitly; nothing is inferred from the path.
type ResponseMode int

const (
	// RespondJSON rejects with a 401 JSON error envelope.
	RespondJSON ResponseMode = iota
	// RespondRedirect sends browser traffic to the login page instead.
	RespondRedirect
)

const (
	// TokenCookie is the cookie carrying the session token for browsers.
	TokenCookie = "token"

	// UserContextKey holds the resolved *domain.User on the echo context.
	UserContextKey = "current_user"

	bearerPrefix = "Bearer "
	loginPath    = "/login"
)

// Auth is the authorization gate. It extracts a token (Authorization header
// first, cookie second), resolves the live user record for its subject, and
// attaches it to the context. Protected routes opt in per registration.
func Auth(resolver ports.IdentityResolver, mode ResponseMode) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := ExtractToken(c)
			if !ok {
				return reject(c, mode, "token_missing", "token missing")
			}

			user, err := resolver.ResolveUser(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidToken) {
					return reject(c, mode, "invalid_token", "invalid token")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// ExtractToken returns the session token from the request, header taking
// precedence over cookie. Only the literal "Bearer " prefix is honoured.
func ExtractToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return header[len(bearerPrefix):], true
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

func reject(c echo.Context, mode ResponseMode, reason, message string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	if mode == RespondRedirect {
		return c.Redirect(http.StatusSeeOther, loginPath)
	}
	return echo.NewHTTPError(http.StatusUnauthorized, message)
}
