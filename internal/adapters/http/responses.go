package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/infrastructure/logger"
)

// Wire shapes. Validation failures carry itemized messages; everything else
// uses the message/error pair.

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type ValidationErrorItem struct {
	Msg string `json:"msg"`
}

type ValidationErrorResponse struct {
	Errors []ValidationErrorItem `json:"errors"`
}

func validationResponse(messages ...string) ValidationErrorResponse {
	items := make([]ValidationErrorItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, ValidationErrorItem{Msg: msg})
	}
	return ValidationErrorResponse{Errors: items}
}

// respondError maps a service error onto the wire taxonomy: validation
// errors and missing records are client errors; anything else is a server
// error with the detail kept out of the response body.
func respondError(c echo.Context, log *logger.Logger, err error, fallback string) error {
	if ve, ok := entities.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, validationResponse(ve.Messages...))
	}

	switch {
	case errors.Is(err, entities.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Task not found"})
	case errors.Is(err, entities.ErrTimeEntryNotFound):
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Time entry not found"})
	case errors.Is(err, entities.ErrStoreUnavailable):
		log.Errorw(fallback, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: fallback, Error: "storage unavailable"})
	default:
		log.Errorw(fallback, "error", err)
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: fallback})
	}
}
