package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ValidateCreateTaskRequest(title *string) error {
	if title == nil || *title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	return nil
}
