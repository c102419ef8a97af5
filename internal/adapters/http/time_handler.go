package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tasklog/core/internal/infrastructure/logger"
	"github.com/tasklog/core/internal/ports"
)

// TimeEntryHandler handles time tracking requests
type TimeEntryHandler struct {
	timeService ports.TimeEntryService
	logger      *logger.Logger
}

// NewTimeEntryHandler creates a new time entry handler
func NewTimeEntryHandler(timeService ports.TimeEntryService, logger *logger.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeService: timeService,
		logger:      logger,
	}
}

// CreateTimeEntry handles POST /api/time-entries
func (h *TimeEntryHandler) CreateTimeEntry(c echo.Context) error {
	var req ports.CreateTimeEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid request body"))
	}
	if req.TaskID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Task ID is required"))
	}
	if req.StartTime.IsZero() {
		return c.JSON(http.StatusBadRequest, validationResponse("Start time is required"))
	}

	entry, err := h.timeService.CreateTimeEntry(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.logger, err, "Error creating time entry")
	}

	return c.JSON(http.StatusCreated, entry)
}

// ListTaskEntries handles GET /api/time-entries/task/:taskId
func (h *TimeEntryHandler) ListTaskEntries(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid Task ID"))
	}

	entries, err := h.timeService.ListTaskEntries(c.Request().Context(), taskID)
	if err != nil {
		return respondError(c, h.logger, err, "Error fetching time entries")
	}

	return c.JSON(http.StatusOK, entries)
}

// UpdateTimeEntry handles PUT /api/time-entries/:id
func (h *TimeEntryHandler) UpdateTimeEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid time entry ID"))
	}

	var req ports.UpdateTimeEntryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid request body"))
	}

	entry, err := h.timeService.UpdateTimeEntry(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, h.logger, err, "Error updating time entry")
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteTimeEntry handles DELETE /api/time-entries/:id
func (h *TimeEntryHandler) DeleteTimeEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse("Invalid time entry ID"))
	}

	if err := h.timeService.DeleteTimeEntry(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err, "Error deleting time entry")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Time entry deleted successfully"})
}
