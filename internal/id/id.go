// Package id handles task identifier parsing and allocation. Ids are
// positive integers assigned sequentially from the highest id present
// in the collection.
package id

import (
	"fmt"
	"strconv"

	"github.com/nmorgan/tasktrack/internal/model"
)

// Parse converts a CLI id argument to a positive integer.
func Parse(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: id %q must be a positive integer", model.ErrInvalid, s)
	}
	return n, nil
}

// Next allocates the id for a new task: one past the highest id in the
// collection, or 1 when the collection is empty.
func Next(tasks []model.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
