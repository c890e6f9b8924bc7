package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"devsite/internal/models"
	"devsite/internal/tasklist"
)

// respondList answers a mutation: htmx callers get the re-rendered list
// partial for their current filter, plain form posts get a redirect back
// to the page.
func (h *Handlers) respondList(w http.ResponseWriter, r *http.Request, filter models.Filter) {
	if isPartialRequest(r) {
		h.render(w, "task_list.html", h.todosData(r, filter))
		return
	}
	http.Redirect(w, r, "/todos?filter="+string(filter), http.StatusSeeOther)
}

// mutationFilter returns the filter the caller is currently viewing so
// the response can re-render the same view.
func mutationFilter(r *http.Request) models.Filter {
	if v := r.FormValue("filter"); v != "" {
		return models.ParseFilter(v)
	}
	return models.ParseFilter(r.URL.Query().Get("filter"))
}

// CreateTask adds a new task. Input is trimmed here; empty or
// whitespace-only text is rejected before anything is dispatched.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	h.tasks.Dispatch(tasklist.Add{Text: text})
	h.respondList(w, r, mutationFilter(r))
}

// ToggleTask flips the completion flag of a task. An unknown id is a
// no-op; the response is the unchanged list.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	h.tasks.Dispatch(tasklist.Toggle{ID: id})
	h.respondList(w, r, mutationFilter(r))
}

// DeleteTask removes a task. An unknown id is a no-op.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	h.tasks.Dispatch(tasklist.Delete{ID: id})
	h.respondList(w, r, mutationFilter(r))
}

// ClearCompleted removes every completed task.
func (h *Handlers) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	h.tasks.Dispatch(tasklist.ClearCompleted{})
	h.respondList(w, r, mutationFilter(r))
}
