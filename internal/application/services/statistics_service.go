package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/infrastructure/logger"
	"github.com/tasklog/core/internal/ports"
)

// StatisticsService computes the read-only aggregate view over both stores.
// Results are computed on demand; nothing is cached or maintained
// incrementally. If either store fails the whole call fails, so callers
// never see partial statistics.
type StatisticsService struct {
	taskRepo ports.TaskRepository
	timeRepo ports.TimeEntryRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(taskRepo ports.TaskRepository, timeRepo ports.TimeEntryRepository, logger *logger.Logger) *StatisticsService {
	return &StatisticsService{
		taskRepo: taskRepo,
		timeRepo: timeRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// GetStatistics assembles the aggregate object served by /api/statistics.
func (s *StatisticsService) GetStatistics(ctx context.Context) (*ports.Statistics, error) {
	counts, err := s.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, unavailable("count tasks", err)
	}

	totalTracked, err := s.timeRepo.SumDurations(ctx)
	if err != nil {
		return nil, unavailable("sum durations", err)
	}

	rollups, err := s.timeRepo.SumDurationsByTask(ctx)
	if err != nil {
		return nil, unavailable("roll up time per task", err)
	}
	if rollups == nil {
		rollups = []ports.TaskTimeRollup{}
	}

	weekStart, weekEnd := weekBounds(s.now())
	completedThisWeek, err := s.taskRepo.CountCompletedBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, unavailable("count completions this week", err)
	}

	return &ports.Statistics{
		TotalTasks:              counts.Total,
		CompletedTasks:          counts.Done,
		TodoTasks:               counts.Todo,
		InProgressTasks:         counts.InProgress,
		TotalTimeTrackedMinutes: totalTracked,
		TimePerTask:             rollups,
		TasksCompletedThisWeek:  completedThisWeek,
	}, nil
}

// weekBounds returns the calendar week containing now in now's location:
// Monday 00:00 inclusive to the following Monday 00:00 exclusive (ISO week).
func weekBounds(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", entities.ErrStoreUnavailable, op, err)
}
