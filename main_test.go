package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/nmorgan/tasktrack/internal/store"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: title must not be empty", model.ErrInvalid), 2},
		{fmt.Errorf("%w: #99", store.ErrNotFound), 3},
		{fmt.Errorf("%w: tasks.json", store.ErrCorrupt), 4},
		{fmt.Errorf("%w: writing tasks.json.tmp", store.ErrIO), 5},
		{errors.New("accepts between 1 and 2 arg(s)"), 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, exitCode(c.err), "error %v", c.err)
	}
}
