package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tasklog/core/internal/infrastructure/logger"
	"github.com/tasklog/core/internal/ports"
)

// TaskHandler handles task requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks handles GET /api/tasks
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "Error fetching tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Title is required"))
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err, "Error creating task")
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /api/tasks/:id
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid task ID"))
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Error fetching task")
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid task ID"))
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid request body"))
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.logger, err, "Error updating task")
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id. Deleting a task removes its time
// entries with it.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid task ID"))
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err, "Error deleting task")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task and associated time entries deleted successfully"})
}
