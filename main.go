package main

import (
	"errors"
	"os"

	"github.com/nmorgan/tasktrack/cmd"
	"github.com/nmorgan/tasktrack/internal/model"
	"github.com/nmorgan/tasktrack/internal/store"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to distinct codes: validation 2, not
// found 3, corrupt data file 4, file i/o 5, and 1 for everything else
// including usage errors from the argument parser.
func exitCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalid):
		return 2
	case errors.Is(err, store.ErrNotFound):
		return 3
	case errors.Is(err, store.ErrCorrupt):
		return 4
	case errors.Is(err, store.ErrIO):
		return 5
	}
	return 1
}
