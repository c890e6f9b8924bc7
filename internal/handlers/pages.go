package handlers

import (
	"net/http"

	"devsite/internal/models"
	"devsite/internal/site"
)

// HomeData holds data for the home page template.
type HomeData struct {
	Title   string
	Theme   string
	Active  string
	Owner   string
	Tagline string
	About   string
	Nav     []site.NavLink
	Social  []models.SocialLink
}

// Home renders the portfolio page: about section, social-links table,
// and navigation.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := HomeData{
		Title:   h.site.Owner,
		Theme:   h.theme(r),
		Active:  "/",
		Owner:   h.site.Owner,
		Tagline: h.site.Tagline,
		About:   h.site.About,
		Nav:     h.site.Nav,
		Social:  h.site.Social,
	}

	h.render(w, "home.html", data)
}

// TodosData holds data for the to-do page and its list partial.
type TodosData struct {
	Title        string
	Theme        string
	Active       string
	Owner        string
	Nav          []site.NavLink
	Tasks        []models.Task
	Filter       models.Filter
	Remaining    int
	HasCompleted bool
}

func (h *Handlers) todosData(r *http.Request, filter models.Filter) TodosData {
	return TodosData{
		Title:        "To-Do Demo",
		Theme:        h.theme(r),
		Active:       "/todos",
		Owner:        h.site.Owner,
		Nav:          h.site.Nav,
		Tasks:        h.tasks.Filtered(filter),
		Filter:       filter,
		Remaining:    h.tasks.Remaining(),
		HasCompleted: h.tasks.HasCompleted(),
	}
}

// Todos renders the to-do demo page. The filter query parameter selects
// the view; unknown values fall back to "all".
func (h *Handlers) Todos(w http.ResponseWriter, r *http.Request) {
	filter := models.ParseFilter(r.URL.Query().Get("filter"))
	h.render(w, "todos.html", h.todosData(r, filter))
}

// ToggleTheme flips the theme cookie between light and dark and sends
// the visitor back to the page they came from.
func (h *Handlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := "dark"
	if h.theme(r) == "dark" {
		next = "light"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	back := r.Header.Get("Referer")
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
