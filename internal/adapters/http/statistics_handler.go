package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklog/core/internal/infrastructure/logger"
	"github.com/tasklog/core/internal/ports"
)

// StatisticsHandler serves the aggregate reporting view
type StatisticsHandler struct {
	statsService ports.StatisticsService
	logger       *logger.Logger
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statsService ports.StatisticsService, logger *logger.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetStatistics handles GET /api/statistics. The aggregate either comes back
// whole or not at all; partial statistics are never served.
func (h *StatisticsHandler) GetStatistics(c echo.Context) error {
	stats, err := h.statsService.GetStatistics(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err, "Error fetching statistics")
	}

	return c.JSON(http.StatusOK, stats)
}
