package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/auth"
	"task-manager.com/task-manager/internal/constants"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
)

// Register wires the route table. Authentication always runs before
// any role check; the admin-only user management group layers
// RequireRole on top of Authenticate.
func Register(
	e *echo.Echo,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	taskHandler *TaskHandler,
	authority *auth.TokenAuthority,
	rateLimitPerMinute int,
) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.Authenticate(authority))
	authed.POST("/auth/logout", authHandler.Logout)

	users := authed.Group("/users", middleware.RequireRole(constants.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	tasks := authed.Group("/tasks")
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
}
