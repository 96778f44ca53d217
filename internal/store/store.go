package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nmorgan/tasktrack/internal/id"
	"github.com/nmorgan/tasktrack/internal/model"
)

var (
	// ErrNotFound reports a lookup for an id not present in the collection.
	ErrNotFound = errors.New("task not found")
	// ErrCorrupt reports a data file that exists but cannot be parsed.
	ErrCorrupt = errors.New("task file is corrupt")
	// ErrIO reports a read or write failure on the data file.
	ErrIO = errors.New("task file error")
)

// FileStore persists the whole task collection in a single JSON file.
// Every mutation is a full load-modify-save cycle. Concurrent
// invocations racing on the same file are undefined; there is no
// locking discipline.
type FileStore struct {
	Path string
}

func New(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the collection. A missing file is an empty collection.
func (s *FileStore) Load() ([]model.Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, s.Path, err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.Path, err)
	}
	return tasks, nil
}

// Save rewrites the collection. The write goes to a temporary file in
// the same directory and is renamed over the target, so an interrupted
// process never leaves a truncated file behind.
func (s *FileStore) Save(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tasks: %w", err)
	}
	data = append(data, '\n')

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replacing %s: %v", ErrIO, s.Path, err)
	}
	return nil
}

// TaskUpdate is a patch: nil fields keep their current value. An
// omitted description is preserved, never cleared.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *model.Status
}

// Add appends a new task with the next id, status todo, and matching
// creation and update timestamps.
func (s *FileStore) Add(title, description string) (*model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	now := now()
	t := model.Task{
		ID:          id.Next(tasks),
		Title:       title,
		Description: description,
		Status:      model.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	tasks = append(tasks, t)
	if err := s.Save(tasks); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *FileStore) Get(taskID int) (*model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	i := indexOf(tasks, taskID)
	if i < 0 {
		return nil, fmt.Errorf("%w: #%d", ErrNotFound, taskID)
	}
	t := tasks[i]
	return &t, nil
}

// Update applies a patch to the task with the given id and refreshes
// its update timestamp. The patched task is validated before anything
// is written, so a bad status leaves the file untouched.
func (s *FileStore) Update(taskID int, upd TaskUpdate) (*model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	i := indexOf(tasks, taskID)
	if i < 0 {
		return nil, fmt.Errorf("%w: #%d", ErrNotFound, taskID)
	}

	t := tasks[i]
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	t.UpdatedAt = now()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	tasks[i] = t
	if err := s.Save(tasks); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the task permanently. There is no tombstone.
func (s *FileStore) Delete(taskID int) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}
	i := indexOf(tasks, taskID)
	if i < 0 {
		return fmt.Errorf("%w: #%d", ErrNotFound, taskID)
	}
	tasks = append(tasks[:i], tasks[i+1:]...)
	return s.Save(tasks)
}

// List returns tasks matching the filter in insertion order. Read-only.
func (s *FileStore) List(filter model.Filter) ([]model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	if filter == model.FilterAll {
		return tasks, nil
	}
	var out []model.Task
	for i := range tasks {
		if filter.Matches(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out, nil
}

func indexOf(tasks []model.Task, taskID int) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
