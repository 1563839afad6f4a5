package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
)

// RequireRole permits the request only when the authenticated role
// equals the required one exactly; there is no role hierarchy. A
// mismatch is a 403, distinct from the 401 Authenticate produces.
func RequireRole(required constants.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			if claims.Role != required {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions or role")
			}

			return next(c)
		}
	}
}
