package entities

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrStoreUnavailable  = errors.New("storage unavailable")
)

// ValidationError carries the itemized messages surfaced to the client.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError creates a validation error from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Enums and types
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Task represents a unit of work with a status and optional due date
type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Status      TaskStatus `json:"status" db:"status"`
	DueDate     *time.Time `json:"dueDate" db:"due_date"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// TimeEntry represents a recorded (or open) time interval for a task
type TimeEntry struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	TaskID          uuid.UUID  `json:"taskId" db:"task_id"`
	StartTime       time.Time  `json:"startTime" db:"start_time"`
	EndTime         *time.Time `json:"endTime" db:"end_time"`
	DurationMinutes *int       `json:"duration" db:"duration_minutes"`
	Notes           *string    `json:"notes" db:"notes"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// Business logic methods for Task
func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && t.Status != TaskStatusDone
}

// Business logic methods for TimeEntry

// IsOpen reports whether the entry is an unfinished timer.
func (te *TimeEntry) IsOpen() bool {
	return te.EndTime == nil
}

// DurationBetween returns the interval length in whole minutes, rounded.
func DurationBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// RecomputeDuration derives DurationMinutes from the current start and end
// times. Open entries get no duration. Caller-supplied values are discarded.
func (te *TimeEntry) RecomputeDuration() {
	if te.EndTime == nil {
		te.DurationMinutes = nil
		return
	}
	minutes := DurationBetween(te.StartTime, *te.EndTime)
	te.DurationMinutes = &minutes
}

// ValidateInterval checks the end-after-start invariant.
func (te *TimeEntry) ValidateInterval() error {
	if te.EndTime != nil && !te.EndTime.After(te.StartTime) {
		return NewValidationError("End time must be after start time")
	}
	return nil
}
