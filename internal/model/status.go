package model

import "fmt"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

var validStatuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParseStatus converts user input to a Status.
func ParseStatus(s string) (Status, error) {
	for _, v := range validStatuses {
		if Status(s) == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: status %q must be one of todo, in-progress, done", ErrInvalid, s)
}

func ValidateStatus(s Status) error {
	_, err := ParseStatus(string(s))
	return err
}

// Filter narrows a list query to one status. FilterAll matches every task.
type Filter string

const FilterAll Filter = "all"

func ParseFilter(s string) (Filter, error) {
	if Filter(s) == FilterAll {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("%w: filter %q must be one of all, todo, in-progress, done", ErrInvalid, s)
	}
	return Filter(st), nil
}

func (f Filter) Matches(t *Task) bool {
	return f == FilterAll || Status(f) == t.Status
}
