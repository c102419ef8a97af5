package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/infrastructure/database"
	"github.com/tasklog/core/internal/ports"
)

// TaskRepository implements the task repository interface on Postgres
type TaskRepository struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.DB.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	query := `
		SELECT id, title, description, status, due_date, created_at, updated_at
		FROM tasks WHERE id = $1
	`

	var task entities.Task
	if err := r.db.DB.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// Update persists a task's mutable fields
func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, due_date = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

// DeleteWithEntries removes a task and all its time entries in one
// transaction, so a successful delete never leaves orphaned entries.
func (r *TaskRepository) DeleteWithEntries(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM time_entries WHERE task_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete task time entries: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return entities.ErrTaskNotFound
		}

		return nil
	})
}

// List returns all tasks in creation order
func (r *TaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	query := `
		SELECT id, title, description, status, due_date, created_at, updated_at
		FROM tasks
		ORDER BY created_at ASC, id ASC
	`

	tasks := make([]*entities.Task, 0)
	if err := r.db.DB.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// CountByStatus counts tasks per status in a single scan
func (r *TaskRepository) CountByStatus(ctx context.Context) (ports.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'todo') AS todo,
			COUNT(*) FILTER (WHERE status = 'in-progress') AS in_progress,
			COUNT(*) FILTER (WHERE status = 'done') AS done
		FROM tasks
	`

	var counts ports.StatusCounts
	if err := r.db.DB.GetContext(ctx, &counts, query); err != nil {
		return ports.StatusCounts{}, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	return counts, nil
}

// CountCompletedBetween counts done tasks updated in [start, end)
func (r *TaskRepository) CountCompletedBetween(ctx context.Context, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM tasks
		WHERE status = 'done' AND updated_at >= $1 AND updated_at < $2
	`

	var count int
	if err := r.db.DB.GetContext(ctx, &count, query, start, end); err != nil {
		return 0, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	return count, nil
}
