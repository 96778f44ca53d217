package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid marks validation failures: empty titles, malformed ids,
// unrecognized statuses or filters.
var ErrInvalid = errors.New("invalid task")

// Task is a single trackable unit of work. The JSON tags define the
// persisted file layout; the YAML tags define the frontmatter layout
// used by export/import, where the description travels as the
// markdown body instead.
type Task struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"-"`
	Status      Status    `json:"status" yaml:"status"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

func (t *Task) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("%w: id must be a positive integer", ErrInvalid)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalid)
	}
	if err := ValidateStatus(t.Status); err != nil {
		return err
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("%w: updated_at precedes created_at", ErrInvalid)
	}
	return nil
}
