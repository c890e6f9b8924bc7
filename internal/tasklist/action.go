// Package tasklist holds the to-do list state machine: a small set of
// actions applied by a pure reducer, and a Store that owns the current
// list and writes it through to storage after every change.
package tasklist

// Action is one of the four list mutations. Implementations are plain
// value types so actions can be constructed inline at dispatch sites.
type Action interface {
	isAction()
}

// Add appends a new task with the given text.
// Callers trim the text and reject empty input before dispatching.
type Add struct {
	Text string
}

// Toggle flips the completed flag of the task with the given id.
type Toggle struct {
	ID string
}

// Delete removes the task with the given id.
type Delete struct {
	ID string
}

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

func (Add) isAction()            {}
func (Toggle) isAction()         {}
func (Delete) isAction()         {}
func (ClearCompleted) isAction() {}
