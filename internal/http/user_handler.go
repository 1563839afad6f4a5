package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	err := h.userService.Update(c.Request().Context(), c.Param("id"), services.UserUpdate{
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "user updated successfully"})
}

func (h *UserHandler) Delete(c echo.Context) error {
	if _, err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
