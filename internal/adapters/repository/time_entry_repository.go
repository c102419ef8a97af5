package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/infrastructure/database"
	"github.com/tasklog/core/internal/ports"
)

// TimeEntryRepository implements the time entry repository interface on Postgres
type TimeEntryRepository struct {
	db *database.DB
}

// NewTimeEntryRepository creates a new time entry repository
func NewTimeEntryRepository(db *database.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Create inserts a new time entry
func (r *TimeEntryRepository) Create(ctx context.Context, entry *entities.TimeEntry) error {
	query := `
		INSERT INTO time_entries (id, task_id, start_time, end_time, duration_minutes, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		entry.ID,
		entry.TaskID,
		entry.StartTime,
		entry.EndTime,
		entry.DurationMinutes,
		entry.Notes,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}

	return nil
}

// GetByID retrieves a time entry by ID
func (r *TimeEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TimeEntry, error) {
	query := `
		SELECT id, task_id, start_time, end_time, duration_minutes, notes, created_at, updated_at
		FROM time_entries WHERE id = $1
	`

	var entry entities.TimeEntry
	if err := r.db.DB.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	return &entry, nil
}

// Update persists a time entry's mutable fields
func (r *TimeEntryRepository) Update(ctx context.Context, entry *entities.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET start_time = $2, end_time = $3, duration_minutes = $4, notes = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		entry.ID,
		entry.StartTime,
		entry.EndTime,
		entry.DurationMinutes,
		entry.Notes,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTimeEntryNotFound
	}

	return nil
}

// Delete removes a single time entry
func (r *TimeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTimeEntryNotFound
	}

	return nil
}

// ListForTask returns a task's entries, most recent start first
func (r *TimeEntryRepository) ListForTask(ctx context.Context, taskID uuid.UUID) ([]*entities.TimeEntry, error) {
	query := `
		SELECT id, task_id, start_time, end_time, duration_minutes, notes, created_at, updated_at
		FROM time_entries
		WHERE task_id = $1
		ORDER BY start_time DESC
	`

	entries := make([]*entities.TimeEntry, 0)
	if err := r.db.DB.SelectContext(ctx, &entries, query, taskID); err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return entries, nil
}

// SumDurations totals every derived duration. Open entries carry NULL and
// drop out of the sum.
func (r *TimeEntryRepository) SumDurations(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(duration_minutes), 0) FROM time_entries`

	var total int
	if err := r.db.DB.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to sum durations: %w", err)
	}

	return total, nil
}

// SumDurationsByTask rolls up tracked minutes per task. A task with only
// open entries still appears, with a zero total. The task id tie-break keeps
// equal totals in a stable order.
func (r *TimeEntryRepository) SumDurationsByTask(ctx context.Context) ([]ports.TaskTimeRollup, error) {
	query := `
		SELECT te.task_id, t.title AS task_title, COALESCE(SUM(te.duration_minutes), 0) AS total_duration
		FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		GROUP BY te.task_id, t.id, t.title
		ORDER BY total_duration DESC, t.id ASC
	`

	rollups := make([]ports.TaskTimeRollup, 0)
	if err := r.db.DB.SelectContext(ctx, &rollups, query); err != nil {
		return nil, fmt.Errorf("failed to sum durations by task: %w", err)
	}

	return rollups, nil
}
