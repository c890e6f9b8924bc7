package tasklist

import (
	"github.com/google/uuid"

	"devsite/internal/models"
)

// Apply maps (current list, action) to a new list. It is total and
// deterministic apart from id generation: toggling or deleting an absent
// id is a no-op, and an unknown action kind returns the input unchanged.
//
// Apply never mutates its input. Every transition returns a fresh slice,
// so a snapshot taken before a dispatch stays valid while derived views
// are computed from it.
func Apply(tasks []models.Task, action Action) []models.Task {
	switch a := action.(type) {
	case Add:
		next := make([]models.Task, len(tasks)+1)
		copy(next, tasks)
		next[len(tasks)] = models.Task{
			ID:   uuid.NewString(),
			Text: a.Text,
		}
		return next

	case Toggle:
		next := make([]models.Task, len(tasks))
		copy(next, tasks)
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Completed = !next[i].Completed
			}
		}
		return next

	case Delete:
		next := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != a.ID {
				next = append(next, t)
			}
		}
		return next

	case ClearCompleted:
		next := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.Completed {
				next = append(next, t)
			}
		}
		return next

	default:
		return tasks
	}
}
