package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/infrastructure/logger"
	"github.com/tasklog/core/internal/ports"
)

// Stub services returning canned results, so the handler tests cover only
// binding, routing params and response shapes.

type echoValidator struct {
	validate *validator.Validate
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &echoValidator{validate: validator.New()}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubTaskService struct {
	task  *entities.Task
	tasks []*entities.Task
	err   error

	createdWith *ports.CreateTaskRequest
	updatedWith *ports.UpdateTaskRequest
	deletedID   uuid.UUID
}

func (s *stubTaskService) CreateTask(_ context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	s.createdWith = &req
	return s.task, s.err
}

func (s *stubTaskService) GetTask(_ context.Context, _ uuid.UUID) (*entities.Task, error) {
	return s.task, s.err
}

func (s *stubTaskService) UpdateTask(_ context.Context, _ uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	s.updatedWith = &req
	return s.task, s.err
}

func (s *stubTaskService) DeleteTask(_ context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

func (s *stubTaskService) ListTasks(_ context.Context) ([]*entities.Task, error) {
	return s.tasks, s.err
}

type stubTimeService struct {
	entry   *entities.TimeEntry
	entries []*entities.TimeEntry
	err     error

	createdWith *ports.CreateTimeEntryRequest
	listedTask  uuid.UUID
}

func (s *stubTimeService) CreateTimeEntry(_ context.Context, req ports.CreateTimeEntryRequest) (*entities.TimeEntry, error) {
	s.createdWith = &req
	return s.entry, s.err
}

func (s *stubTimeService) UpdateTimeEntry(_ context.Context, _ uuid.UUID, _ ports.UpdateTimeEntryRequest) (*entities.TimeEntry, error) {
	return s.entry, s.err
}

func (s *stubTimeService) DeleteTimeEntry(_ context.Context, _ uuid.UUID) error {
	return s.err
}

func (s *stubTimeService) ListTaskEntries(_ context.Context, taskID uuid.UUID) ([]*entities.TimeEntry, error) {
	s.listedTask = taskID
	return s.entries, s.err
}

type stubStatsService struct {
	stats *ports.Statistics
	err   error
}

func (s *stubStatsService) GetStatistics(_ context.Context) (*ports.Statistics, error) {
	return s.stats, s.err
}

func noplog() *logger.Logger {
	return logger.NewNop()
}
