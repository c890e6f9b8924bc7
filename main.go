package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"

	"devsite/internal/handlers"
	"devsite/internal/logging"
	"devsite/internal/site"
	"devsite/internal/storage"
	"devsite/internal/tasklist"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

func main() {
	// Configuration
	port := getEnv("PORT", "8080")
	tasksKey := getEnv("TASKS_KEY", "tasks")

	logger := logging.New(logging.ParseLevel(os.Getenv("LOG_LEVEL")))

	// Site content
	cfg, err := loadSiteConfig()
	if err != nil {
		logger.Error("failed to load site config", "error", err)
		os.Exit(1)
	}

	// Initialize storage
	kv, err := openStorage()
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	// Task store, seeded from storage
	tasks := tasklist.NewStore(kv, tasksKey, logger)

	// Parse templates
	tmpl, err := parseTemplates()
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	h := handlers.New(tasks, cfg, tmpl, logger)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files
	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Page routes
	r.Get("/", h.Home)
	r.Get("/todos", h.Todos)
	r.Post("/theme", h.ToggleTheme)

	// To-do API routes
	r.Post("/api/todos", h.CreateTask)
	r.Post("/api/todos/{id}/toggle", h.ToggleTask)
	r.Delete("/api/todos/{id}", h.DeleteTask)
	r.Post("/api/todos/{id}/delete", h.DeleteTask) // non-htmx form fallback
	r.Post("/api/todos/clear-completed", h.ClearCompleted)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting server", "addr", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// loadSiteConfig loads SITE_CONFIG if set, else the embedded default.
func loadSiteConfig() (*site.Config, error) {
	if path := os.Getenv("SITE_CONFIG"); path != "" {
		return site.Load(path)
	}
	return site.Default()
}

// openStorage picks the kv backend from the STORAGE env var:
// "sqlite" (default), "file", or "memory".
func openStorage() (storage.KV, error) {
	switch backend := getEnv("STORAGE", "sqlite"); backend {
	case "sqlite":
		dbPath := getEnv("DB_PATH", "./data/devsite.db")
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return storage.NewSQLite(dbPath)
	case "file":
		return storage.NewFile(getEnv("DATA_DIR", "./data"))
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	// Parse all templates
	patterns := []string{
		"templates/*.html",
		"templates/partials/*.html",
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(templatesFS, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			content, err := templatesFS.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", match, err)
			}

			name := filepath.Base(match)
			_, err = tmpl.New(name).Parse(string(content))
			if err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
	}

	return tmpl, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
