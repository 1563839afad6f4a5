package http

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-manager.com/task-manager/internal/errors"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// fspParams are the query parameters the listing endpoint forwards to
// the query builder.
var fspParams = []string{
	"page", "limit", "status", "priority", "due_date_max", "assigned_to", "sort",
}

// Create accepts either a multipart form (fields + "attachments"
// files) or a plain JSON body without attachments.
func (h *TaskHandler) Create(c echo.Context) error {
	var (
		req   TaskRequest
		files []*multipart.FileHeader
	)

	if form, err := c.MultipartForm(); err == nil {
		req = taskRequestFromForm(c)
		files = form.File["attachments"]
	} else if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request payload")
	}

	if err := validators.ValidateCreateTaskRequest(req.Title); err != nil {
		return err
	}

	claims := middleware.ClaimsFrom(c)

	task, err := h.taskService.Create(c.Request().Context(), claims.Subject, taskInput(req), files)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) List(c echo.Context) error {
	params := map[string]string{}
	for _, name := range fspParams {
		if c.QueryParams().Has(name) {
			params[name] = c.QueryParam(name)
		}
	}

	tasks, err := h.taskService.List(c.Request().Context(), params)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.taskService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	claims := middleware.ClaimsFrom(c)

	task, err := h.taskService.Update(c.Request().Context(), claims, c.Param("id"), taskInput(req))
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	if err := h.taskService.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func taskRequestFromForm(c echo.Context) TaskRequest {
	var req TaskRequest
	set := func(dst **string, name string) {
		if v := c.FormValue(name); v != "" {
			*dst = &v
		}
	}

	set(&req.Title, "title")
	set(&req.Description, "description")
	set(&req.Status, "status")
	set(&req.Priority, "priority")
	set(&req.DueDate, "due_date")
	set(&req.AssignedTo, "assigned_to")
	return req
}

func taskInput(req TaskRequest) services.TaskInput {
	return services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	}
}
