package taskfile

import (
	"bytes"
	"testing"
	"time"

	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTask() *model.Task {
	now := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	return &model.Task{
		ID:          3,
		Title:       "Buy milk",
		Description: "Lactose-free",
		Status:      model.StatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMarshal_Parse_RoundTrip(t *testing.T) {
	task := sampleTask()
	data, err := Marshal(task)
	require.NoError(t, err)

	got, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, task.Status, got.Status)
	assert.Equal(t, task.Description, got.Description)
	assert.True(t, task.CreatedAt.Equal(got.CreatedAt))
}

func TestMarshal_EmptyDescription_NoBody(t *testing.T) {
	task := sampleTask()
	task.Description = ""
	data, err := Marshal(task)
	require.NoError(t, err)

	got, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, got.Description)
}

func TestParse_BodyBecomesDescription(t *testing.T) {
	in := "---\nid: 1\ntitle: Task\nstatus: todo\n---\n\nSome notes here.\n"
	got, err := Parse(bytes.NewReader([]byte(in)))
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Some notes here.", got.Description)
}

func TestParse_Malformed(t *testing.T) {
	in := "---\nid: [unclosed\n---\n"
	_, err := Parse(bytes.NewReader([]byte(in)))
	assert.Error(t, err)
}
