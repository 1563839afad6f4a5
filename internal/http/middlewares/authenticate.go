package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/auth"
	apperrors "task-manager.com/task-manager/internal/errors"
)

const claimsContextKey = "auth.claims"

// Authenticate extracts the bearer token, validates it against the
// token authority (signature, expiry, revocation) and stores the
// claims in the request context. Requests without valid credentials
// never reach any role check.
func Authenticate(authority *auth.TokenAuthority) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := authority.Validate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the validated claims stored by Authenticate, or
// nil when the request was not authenticated.
func ClaimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}
