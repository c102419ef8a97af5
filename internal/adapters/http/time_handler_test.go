package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklog/core/internal/domain/entities"
	"github.com/tasklog/core/internal/ports"
)

func sampleEntry(taskID uuid.UUID) *entities.TimeEntry {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	duration := 90
	return &entities.TimeEntry{
		ID:              uuid.New(),
		TaskID:          taskID,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: &duration,
		CreatedAt:       start,
		UpdatedAt:       start,
	}
}

func TestCreateTimeEntryReturns201WithDuration(t *testing.T) {
	taskID := uuid.New()
	svc := &stubTimeService{entry: sampleEntry(taskID)}
	h := NewTimeEntryHandler(svc, noplog())

	payload := `{"taskId":"` + taskID.String() + `","startTime":"2024-03-04T09:00:00Z","endTime":"2024-03-04T10:30:00Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/time-entries", payload)
	require.NoError(t, h.CreateTimeEntry(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.createdWith)
	assert.Equal(t, taskID, svc.createdWith.TaskID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(90), body["duration"])
	assert.Equal(t, taskID.String(), body["taskId"])
}

func TestCreateTimeEntryMissingTaskID(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{}, noplog())

	c, rec := newTestContext(t, http.MethodPost, "/api/time-entries", `{"startTime":"2024-03-04T09:00:00Z"}`)
	require.NoError(t, h.CreateTimeEntry(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Task ID is required", body.Errors[0].Msg)
}

func TestCreateTimeEntryMissingStartTime(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{}, noplog())

	c, rec := newTestContext(t, http.MethodPost, "/api/time-entries", `{"taskId":"`+uuid.NewString()+`"}`)
	require.NoError(t, h.CreateTimeEntry(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Start time is required", body.Errors[0].Msg)
}

func TestCreateTimeEntryUnknownTask(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{err: entities.ErrTaskNotFound}, noplog())

	payload := `{"taskId":"` + uuid.NewString() + `","startTime":"2024-03-04T09:00:00Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/time-entries", payload)
	require.NoError(t, h.CreateTimeEntry(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Task not found", body.Message)
}

func TestCreateTimeEntryEndBeforeStart(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{
		err: entities.NewValidationError("End time must be after start time"),
	}, noplog())

	payload := `{"taskId":"` + uuid.NewString() + `","startTime":"2024-03-04T10:00:00Z","endTime":"2024-03-04T09:00:00Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/time-entries", payload)
	require.NoError(t, h.CreateTimeEntry(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "End time must be after start time", body.Errors[0].Msg)
}

func TestListTaskEntriesInvalidTaskID(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{}, noplog())

	c, rec := newTestContext(t, http.MethodGet, "/api/time-entries/task/x", "")
	c.SetParamNames("taskId")
	c.SetParamValues("nope")
	require.NoError(t, h.ListTaskEntries(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Invalid Task ID", body.Errors[0].Msg)
}

func TestListTaskEntriesEmpty(t *testing.T) {
	svc := &stubTimeService{entries: []*entities.TimeEntry{}}
	h := NewTimeEntryHandler(svc, noplog())

	taskID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/api/time-entries/task/x", "")
	c.SetParamNames("taskId")
	c.SetParamValues(taskID.String())
	require.NoError(t, h.ListTaskEntries(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, taskID, svc.listedTask)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateTimeEntryNotFound(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{err: entities.ErrTimeEntryNotFound}, noplog())

	c, rec := newTestContext(t, http.MethodPut, "/api/time-entries/x", `{"notes":"late edit"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	require.NoError(t, h.UpdateTimeEntry(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Time entry not found", body.Message)
}

func TestDeleteTimeEntryConfirms(t *testing.T) {
	h := NewTimeEntryHandler(&stubTimeService{}, noplog())

	c, rec := newTestContext(t, http.MethodDelete, "/api/time-entries/x", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	require.NoError(t, h.DeleteTimeEntry(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Time entry deleted successfully", body.Message)
}

var _ ports.TimeEntryService = (*stubTimeService)(nil)
