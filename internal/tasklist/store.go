package tasklist

import (
	"log/slog"
	"sync"

	"devsite/internal/models"
	"devsite/internal/storage"
)

// Store owns the current task list. It is seeded from storage at
// construction and writes every committed list back through the
// persistence bridge. All access is serialized by a mutex; the reducer's
// copy-on-write transitions mean a snapshot handed out by Tasks or
// Filtered stays valid while later dispatches run.
type Store struct {
	mu    sync.Mutex
	state *storage.Persisted[[]models.Task]
}

// NewStore creates a Store persisting under key in kv. Storage failures
// during the initial load are logged and the list starts empty.
func NewStore(kv storage.KV, key string, logger *slog.Logger) *Store {
	return &Store{
		state: storage.NewPersisted(kv, key, []models.Task{}, logger),
	}
}

// Dispatch applies the action and returns the new list. The in-memory
// commit always succeeds; persistence happens after it and never rolls
// it back.
func (s *Store) Dispatch(action Action) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Update(func(tasks []models.Task) []models.Task {
		return Apply(tasks, action)
	})
}

// Tasks returns the current list snapshot.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Get()
}

// Filtered returns the tasks matching the filter, in list order. The
// underlying list is not modified.
func (s *Store) Filtered(filter models.Filter) []models.Task {
	tasks := s.Tasks()

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Match(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Remaining returns the number of active (not completed) tasks.
func (s *Store) Remaining() int {
	count := 0
	for _, t := range s.Tasks() {
		if !t.Completed {
			count++
		}
	}
	return count
}

// HasCompleted reports whether any task is completed.
func (s *Store) HasCompleted() bool {
	for _, t := range s.Tasks() {
		if t.Completed {
			return true
		}
	}
	return false
}
