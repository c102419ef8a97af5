package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/ports"
)

// In-memory repositories backing the service tests. The task repo holds a
// reference to the time repo so the cascade delete behaves like the real
// transactional implementation.

var errRepoDown = errors.New("repository down")

type fakeTimeRepo struct {
	entries map[uuid.UUID]*entities.TimeEntry
	order   []uuid.UUID
	taskFor func(uuid.UUID) (*entities.Task, bool)
	fail    bool
}

type fakeTaskRepo struct {
	tasks    map[uuid.UUID]*entities.Task
	order    []uuid.UUID
	timeRepo *fakeTimeRepo
	fail     bool
}

func newFakeRepos() (*fakeTaskRepo, *fakeTimeRepo) {
	taskRepo := &fakeTaskRepo{tasks: make(map[uuid.UUID]*entities.Task)}
	timeRepo := &fakeTimeRepo{entries: make(map[uuid.UUID]*entities.TimeEntry)}
	taskRepo.timeRepo = timeRepo
	timeRepo.taskFor = func(id uuid.UUID) (*entities.Task, bool) {
		t, ok := taskRepo.tasks[id]
		return t, ok
	}
	return taskRepo, timeRepo
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	if r.fail {
		return errRepoDown
	}
	copied := *task
	r.tasks[task.ID] = &copied
	r.order = append(r.order, task.ID)
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Task, error) {
	if r.fail {
		return nil, errRepoDown
	}
	task, ok := r.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entities.Task) error {
	if r.fail {
		return errRepoDown
	}
	if _, ok := r.tasks[task.ID]; !ok {
		return entities.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) DeleteWithEntries(_ context.Context, id uuid.UUID) error {
	if r.fail {
		return errRepoDown
	}
	if _, ok := r.tasks[id]; !ok {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	for entryID, entry := range r.timeRepo.entries {
		if entry.TaskID == id {
			delete(r.timeRepo.entries, entryID)
		}
	}
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context) ([]*entities.Task, error) {
	if r.fail {
		return nil, errRepoDown
	}
	tasks := make([]*entities.Task, 0, len(r.tasks))
	for _, id := range r.order {
		if task, ok := r.tasks[id]; ok {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) CountByStatus(_ context.Context) (ports.StatusCounts, error) {
	if r.fail {
		return ports.StatusCounts{}, errRepoDown
	}
	var counts ports.StatusCounts
	for _, task := range r.tasks {
		counts.Total++
		switch task.Status {
		case entities.TaskStatusTodo:
			counts.Todo++
		case entities.TaskStatusInProgress:
			counts.InProgress++
		case entities.TaskStatusDone:
			counts.Done++
		}
	}
	return counts, nil
}

func (r *fakeTaskRepo) CountCompletedBetween(_ context.Context, start, end time.Time) (int, error) {
	if r.fail {
		return 0, errRepoDown
	}
	count := 0
	for _, task := range r.tasks {
		if task.Status == entities.TaskStatusDone &&
			!task.UpdatedAt.Before(start) && task.UpdatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (r *fakeTimeRepo) Create(_ context.Context, entry *entities.TimeEntry) error {
	if r.fail {
		return errRepoDown
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *fakeTimeRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.TimeEntry, error) {
	if r.fail {
		return nil, errRepoDown
	}
	entry, ok := r.entries[id]
	if !ok {
		return nil, entities.ErrTimeEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeTimeRepo) Update(_ context.Context, entry *entities.TimeEntry) error {
	if r.fail {
		return errRepoDown
	}
	if _, ok := r.entries[entry.ID]; !ok {
		return entities.ErrTimeEntryNotFound
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeTimeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.fail {
		return errRepoDown
	}
	if _, ok := r.entries[id]; !ok {
		return entities.ErrTimeEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeTimeRepo) ListForTask(_ context.Context, taskID uuid.UUID) ([]*entities.TimeEntry, error) {
	if r.fail {
		return nil, errRepoDown
	}
	entries := make([]*entities.TimeEntry, 0)
	for _, id := range r.order {
		entry, ok := r.entries[id]
		if !ok || entry.TaskID != taskID {
			continue
		}
		copied := *entry
		entries = append(entries, &copied)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.After(entries[j].StartTime)
	})
	return entries, nil
}

func (r *fakeTimeRepo) SumDurations(_ context.Context) (int, error) {
	if r.fail {
		return 0, errRepoDown
	}
	total := 0
	for _, entry := range r.entries {
		if entry.DurationMinutes != nil {
			total += *entry.DurationMinutes
		}
	}
	return total, nil
}

func (r *fakeTimeRepo) SumDurationsByTask(_ context.Context) ([]ports.TaskTimeRollup, error) {
	if r.fail {
		return nil, errRepoDown
	}
	totals := make(map[uuid.UUID]int)
	seen := make([]uuid.UUID, 0)
	for _, id := range r.order {
		entry, ok := r.entries[id]
		if !ok {
			continue
		}
		if _, tracked := totals[entry.TaskID]; !tracked {
			seen = append(seen, entry.TaskID)
			totals[entry.TaskID] = 0
		}
		if entry.DurationMinutes != nil {
			totals[entry.TaskID] += *entry.DurationMinutes
		}
	}

	rollups := make([]ports.TaskTimeRollup, 0, len(seen))
	for _, taskID := range seen {
		title := ""
		if task, ok := r.taskFor(taskID); ok {
			title = task.Title
		}
		rollups = append(rollups, ports.TaskTimeRollup{
			TaskID:        taskID,
			TaskTitle:     title,
			TotalDuration: totals[taskID],
		})
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalDuration > rollups[j].TotalDuration
	})
	return rollups, nil
}
