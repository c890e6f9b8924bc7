package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"devsite/internal/site"
	"devsite/internal/tasklist"
)

const themeCookie = "theme"

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	tasks     *tasklist.Store
	site      *site.Config
	templates *template.Template
	logger    *slog.Logger
}

// New creates a new Handlers instance.
func New(tasks *tasklist.Store, cfg *site.Config, tmpl *template.Template, logger *slog.Logger) *Handlers {
	return &Handlers{
		tasks:     tasks,
		site:      cfg,
		templates: tmpl,
		logger:    logger,
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("failed to render template", "template", name, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// theme returns the visitor's theme from the cookie, falling back to the
// site default.
func (h *Handlers) theme(r *http.Request) string {
	c, err := r.Cookie(themeCookie)
	if err != nil || (c.Value != "light" && c.Value != "dark") {
		return h.site.DefaultTheme
	}
	return c.Value
}

// isPartialRequest reports whether the client asked for an HTML fragment
// (htmx sets HX-Request on every request it issues).
func isPartialRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
