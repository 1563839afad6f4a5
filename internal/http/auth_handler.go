package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-manager.com/task-manager/internal/errors"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCredentials(req.Email, req.Password); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCredentials(req.Email, req.Password); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        user,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	if err := h.authService.Logout(c.Request().Context(), claims.ID); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}
