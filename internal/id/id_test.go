package id

import (
	"testing"

	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	n, err := Parse("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestParse_Rejects(t *testing.T) {
	for _, s := range []string{"0", "-1", "abc", "1.5", ""} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, model.ErrInvalid, "input %q", s)
	}
}

func TestNext_Empty(t *testing.T) {
	assert.Equal(t, 1, Next(nil))
}

func TestNext_MaxBased(t *testing.T) {
	tasks := []model.Task{{ID: 3}, {ID: 1}, {ID: 7}}
	assert.Equal(t, 8, Next(tasks))
}
