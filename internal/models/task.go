package models

import (
	"errors"
	"strings"
)

// Task represents a single to-do entry.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if t.ID == "" {
		return errors.New("id is required")
	}

	if strings.TrimSpace(t.Text) == "" {
		return errors.New("text is required")
	}

	return nil
}
