package tasklist

import (
	"testing"

	"devsite/internal/models"
)

func sampleList() []models.Task {
	return []models.Task{
		{ID: "a", Text: "one", Completed: false},
		{ID: "b", Text: "two", Completed: true},
		{ID: "c", Text: "three", Completed: false},
	}
}

func TestApply_Add(t *testing.T) {
	list := sampleList()
	next := Apply(list, Add{Text: "four"})

	if len(next) != len(list)+1 {
		t.Fatalf("expected length %d, got %d", len(list)+1, len(next))
	}

	added := next[len(next)-1]
	if added.Text != "four" {
		t.Errorf("expected text %q, got %q", "four", added.Text)
	}
	if added.Completed {
		t.Error("new task must not be completed")
	}
	if added.ID == "" {
		t.Error("new task must have an id")
	}
	for _, existing := range list {
		if existing.ID == added.ID {
			t.Errorf("new id %q collides with existing task", added.ID)
		}
	}
}

func TestApply_AddGeneratesUniqueIDs(t *testing.T) {
	var list []models.Task
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		list = Apply(list, Add{Text: "task"})
		id := list[len(list)-1].ID
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestApply_Toggle(t *testing.T) {
	list := sampleList()
	next := Apply(list, Toggle{ID: "a"})

	if len(next) != len(list) {
		t.Fatalf("expected length %d, got %d", len(list), len(next))
	}
	if !next[0].Completed {
		t.Error("expected task a to be completed")
	}
	if next[0].ID != "a" || next[0].Text != "one" {
		t.Error("toggle must not change other fields")
	}
	if next[1].Completed != true || next[2].Completed != false {
		t.Error("toggle must not affect other tasks")
	}
}

func TestApply_ToggleTwiceRestoresOriginal(t *testing.T) {
	list := sampleList()
	next := Apply(Apply(list, Toggle{ID: "b"}), Toggle{ID: "b"})

	if len(next) != len(list) {
		t.Fatalf("expected length %d, got %d", len(list), len(next))
	}
	for i := range list {
		if next[i] != list[i] {
			t.Errorf("task %d changed after double toggle: %+v != %+v", i, next[i], list[i])
		}
	}
}

func TestApply_ToggleUnknownIDIsNoop(t *testing.T) {
	list := sampleList()
	next := Apply(list, Toggle{ID: "nope"})

	if len(next) != len(list) {
		t.Fatalf("expected length %d, got %d", len(list), len(next))
	}
	for i := range list {
		if next[i] != list[i] {
			t.Errorf("task %d changed: %+v", i, next[i])
		}
	}
}

func TestApply_Delete(t *testing.T) {
	list := sampleList()
	next := Apply(list, Delete{ID: "b"})

	if len(next) != len(list)-1 {
		t.Fatalf("expected length %d, got %d", len(list)-1, len(next))
	}
	for _, task := range next {
		if task.ID == "b" {
			t.Error("deleted task still present")
		}
	}
	if next[0].ID != "a" || next[1].ID != "c" {
		t.Error("delete must preserve the order of remaining tasks")
	}
}

func TestApply_DeleteUnknownIDIsNoop(t *testing.T) {
	list := sampleList()
	next := Apply(list, Delete{ID: "nope"})

	if len(next) != len(list) {
		t.Fatalf("expected length %d, got %d", len(list), len(next))
	}
}

func TestApply_ClearCompleted(t *testing.T) {
	list := []models.Task{
		{ID: "a", Text: "one", Completed: true},
		{ID: "b", Text: "two", Completed: false},
		{ID: "c", Text: "three", Completed: true},
		{ID: "d", Text: "four", Completed: false},
	}

	next := Apply(list, ClearCompleted{})

	if len(next) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(next))
	}
	if next[0].ID != "b" || next[1].ID != "d" {
		t.Errorf("expected remaining tasks b, d in order, got %+v", next)
	}
}

func TestApply_UnknownActionIsNoop(t *testing.T) {
	list := sampleList()
	next := Apply(list, nil)

	if len(next) != len(list) {
		t.Fatalf("expected length %d, got %d", len(list), len(next))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	list := sampleList()

	Apply(list, Toggle{ID: "a"})
	Apply(list, Delete{ID: "b"})
	Apply(list, Add{Text: "four"})
	Apply(list, ClearCompleted{})

	want := sampleList()
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("input list mutated at %d: %+v", i, list[i])
		}
	}
}

func TestApply_Scenario(t *testing.T) {
	var list []models.Task

	list = Apply(list, Add{Text: "Buy milk"})
	if len(list) != 1 || list[0].Text != "Buy milk" || list[0].Completed {
		t.Fatalf("unexpected list after add: %+v", list)
	}

	list = Apply(list, Toggle{ID: list[0].ID})
	if !list[0].Completed {
		t.Fatalf("expected task to be completed: %+v", list)
	}

	list = Apply(list, ClearCompleted{})
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}
