package ui

import (
	"testing"

	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderTaskTable_Empty(t *testing.T) {
	assert.Equal(t, "No tasks found.", RenderTaskTable(nil))
}

func TestRenderTaskTable_Rows(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "Buy milk", Status: model.StatusTodo},
		{ID: 2, Title: "Walk dog", Status: model.StatusDone},
	}
	out := RenderTaskTable(tasks)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Walk dog")
	assert.Contains(t, out, "done")
}

func TestRenderField(t *testing.T) {
	assert.Contains(t, RenderField("ID", "1"), "ID:")
}

func TestRenderTaskHeader(t *testing.T) {
	out := RenderTaskHeader("Buy milk", []string{RenderField("ID", "1")})
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "ID:")
}
