package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tasklog/core/internal/domain/entities"
)

// TaskService interface for task store operations
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListTasks(ctx context.Context) ([]*entities.Task, error)
}

// TimeEntryService interface for the time entry lifecycle
type TimeEntryService interface {
	CreateTimeEntry(ctx context.Context, req CreateTimeEntryRequest) (*entities.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, id uuid.UUID, req UpdateTimeEntryRequest) (*entities.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id uuid.UUID) error
	ListTaskEntries(ctx context.Context, taskID uuid.UUID) ([]*entities.TimeEntry, error)
}

// StatisticsService interface for the read-only aggregate view
type StatisticsService interface {
	GetStatistics(ctx context.Context) (*Statistics, error)
}

// Request/Response Types

// Task related types
type CreateTaskRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description *string              `json:"description"`
	Status      *entities.TaskStatus `json:"status"`
	DueDate     *time.Time           `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *entities.TaskStatus `json:"status"`
	DueDate     *time.Time           `json:"dueDate"`
}

// Time tracking related types
type CreateTimeEntryRequest struct {
	TaskID    uuid.UUID  `json:"taskId" validate:"required"`
	StartTime time.Time  `json:"startTime" validate:"required"`
	EndTime   *time.Time `json:"endTime"`
	Notes     *string    `json:"notes"`
}

type UpdateTimeEntryRequest struct {
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Notes     *string    `json:"notes"`
}

// Statistics is the aggregate reporting view. It is computed on demand and
// never persisted.
type Statistics struct {
	TotalTasks              int              `json:"totalTasks"`
	CompletedTasks          int              `json:"completedTasks"`
	TodoTasks               int              `json:"todoTasks"`
	InProgressTasks         int              `json:"inProgressTasks"`
	TotalTimeTrackedMinutes int              `json:"totalTimeTrackedMinutes"`
	TimePerTask             []TaskTimeRollup `json:"timePerTask"`
	TasksCompletedThisWeek  int              `json:"tasksCompletedThisWeek"`
}
