package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tasklog/core/internal/domain/entities"
)

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	// DeleteWithEntries removes the task and every time entry that
	// references it as one transaction.
	DeleteWithEntries(ctx context.Context, id uuid.UUID) error
	// List returns all tasks in creation order.
	List(ctx context.Context) ([]*entities.Task, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	// CountCompletedBetween counts done tasks whose updated_at falls in
	// [start, end).
	CountCompletedBetween(ctx context.Context, start, end time.Time) (int, error)
}

// TimeEntryRepository defines the interface for time entry data operations
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *entities.TimeEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TimeEntry, error)
	Update(ctx context.Context, entry *entities.TimeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListForTask returns a task's entries sorted by start time descending.
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]*entities.TimeEntry, error)
	// SumDurations totals the derived durations; open entries contribute 0.
	SumDurations(ctx context.Context) (int, error)
	// SumDurationsByTask rolls up tracked minutes per task, highest total
	// first. Tasks without entries do not appear.
	SumDurationsByTask(ctx context.Context) ([]TaskTimeRollup, error)
}

// StatusCounts holds per-status task counts
type StatusCounts struct {
	Total      int `db:"total"`
	Todo       int `db:"todo"`
	InProgress int `db:"in_progress"`
	Done       int `db:"done"`
}

// TaskTimeRollup is one row of the time-per-task aggregate
type TaskTimeRollup struct {
	TaskID        uuid.UUID `json:"taskId" db:"task_id"`
	TaskTitle     string    `json:"taskTitle" db:"task_title"`
	TotalDuration int       `json:"totalDuration" db:"total_duration"`
}
