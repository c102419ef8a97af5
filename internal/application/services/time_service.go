package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/infrastructure/logger"
	"github.com/tasklog/core/internal/ports"
)

// TimeEntryService validates and normalizes time entry writes before they
// reach the store. Duration is always derived here, never taken from input.
type TimeEntryService struct {
	timeRepo ports.TimeEntryRepository
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTimeEntryService creates a new time entry service
func NewTimeEntryService(timeRepo ports.TimeEntryRepository, taskRepo ports.TaskRepository, logger *logger.Logger) *TimeEntryService {
	return &TimeEntryService{
		timeRepo: timeRepo,
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTimeEntry creates a new time entry against an existing task. An entry
// without an end time is a valid open timer.
func (s *TimeEntryService) CreateTimeEntry(ctx context.Context, req ports.CreateTimeEntryRequest) (*entities.TimeEntry, error) {
	if _, err := s.taskRepo.GetByID(ctx, req.TaskID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entities.TimeEntry{
		ID:        uuid.New(),
		TaskID:    req.TaskID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     trimmed(req.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := entry.ValidateInterval(); err != nil {
		return nil, err
	}
	entry.RecomputeDuration()

	if err := s.timeRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	s.logger.Info("Time entry created", "entry_id", entry.ID, "task_id", entry.TaskID, "open", entry.IsOpen())

	return entry, nil
}

// UpdateTimeEntry merges the supplied fields into an existing entry. The
// ordering invariant is checked against the merged start and end times, and
// the duration is recomputed from them.
func (s *TimeEntryService) UpdateTimeEntry(ctx context.Context, id uuid.UUID, req ports.UpdateTimeEntryRequest) (*entities.TimeEntry, error) {
	entry, err := s.timeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = req.EndTime
	}
	if req.Notes != nil {
		entry.Notes = trimmed(req.Notes)
	}

	if err := entry.ValidateInterval(); err != nil {
		return nil, err
	}
	entry.RecomputeDuration()

	entry.UpdatedAt = time.Now()

	if err := s.timeRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	s.logger.Info("Time entry updated", "entry_id", entry.ID)

	return entry, nil
}

// DeleteTimeEntry deletes a single entry. The owning task is untouched.
func (s *TimeEntryService) DeleteTimeEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.timeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.timeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	s.logger.Info("Time entry deleted", "entry_id", id)

	return nil
}

// ListTaskEntries returns a task's entries, most recent start first. A task
// with no entries yields an empty list, not an error.
func (s *TimeEntryService) ListTaskEntries(ctx context.Context, taskID uuid.UUID) ([]*entities.TimeEntry, error) {
	entries, err := s.timeRepo.ListForTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return entries, nil
}
