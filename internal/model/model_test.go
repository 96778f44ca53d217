package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTask() *Task {
	now := time.Now().UTC().Truncate(time.Second)
	return &Task{ID: 1, Title: "Test", Status: StatusTodo, CreatedAt: now, UpdatedAt: now}
}

func TestParseStatus_Valid(t *testing.T) {
	for _, s := range []string{"todo", "in-progress", "done"} {
		got, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := ParseStatus("bogus-status")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseStatus_CaseSensitive(t *testing.T) {
	_, err := ParseStatus("Done")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseFilter_All(t *testing.T) {
	f, err := ParseFilter("all")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, f)
}

func TestParseFilter_Status(t *testing.T) {
	f, err := ParseFilter("in-progress")
	assert.NoError(t, err)
	assert.Equal(t, Filter(StatusInProgress), f)
}

func TestParseFilter_Invalid(t *testing.T) {
	_, err := ParseFilter("open")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFilter_Matches(t *testing.T) {
	task := validTask()
	assert.True(t, FilterAll.Matches(task))
	assert.True(t, Filter(StatusTodo).Matches(task))
	assert.False(t, Filter(StatusDone).Matches(task))
}

func TestTask_Validate_Valid(t *testing.T) {
	assert.NoError(t, validTask().Validate())
}

func TestTask_Validate_MissingTitle(t *testing.T) {
	task := validTask()
	task.Title = ""
	assert.ErrorIs(t, task.Validate(), ErrInvalid)
}

func TestTask_Validate_NonPositiveID(t *testing.T) {
	task := validTask()
	task.ID = 0
	assert.ErrorIs(t, task.Validate(), ErrInvalid)
}

func TestTask_Validate_InvalidStatus(t *testing.T) {
	task := validTask()
	task.Status = "archived"
	assert.ErrorIs(t, task.Validate(), ErrInvalid)
}

func TestTask_Validate_UpdatedBeforeCreated(t *testing.T) {
	task := validTask()
	task.UpdatedAt = task.CreatedAt.Add(-time.Hour)
	assert.ErrorIs(t, task.Validate(), ErrInvalid)
}
