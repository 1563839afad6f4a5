package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if !strings.Contains(email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "email is not valid")
	}
	if password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}
