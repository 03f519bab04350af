// Package server exposes the notebook builder over a JSON HTTP API.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/michel-adelino/fitness-notebook/internal/export"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	builder  *notebook.Builder
	exporter *export.Exporter
	log      *slog.Logger
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(builder *notebook.Builder, exporter *export.Exporter, log *slog.Logger) *Server {
	s := &Server{
		builder:  builder,
		exporter: exporter,
		log:      log,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read-only catalog
	s.router.Get("/api/v1/catalog/exercises", s.handleCatalogExercises)
	s.router.Get("/api/v1/catalog/templates", s.handleCatalogTemplates)
	s.router.Get("/api/v1/catalog/categories", s.handleCatalogCategories)

	// Document editing
	s.router.Route("/api/v1/document", func(r chi.Router) {
		r.Get("/", s.handleGetDocument)
		r.Post("/template", s.handleSelectTemplate)
		r.Post("/reset", s.handleReset)
		r.Post("/exercises", s.handleAddExercise)
		r.Post("/exercises/reorder", s.handleReorderExercises)
		r.Delete("/exercises/{id}", s.handleRemoveExercise)
		r.Patch("/exercises/{id}", s.handleUpdateExercise)
		r.Patch("/colors", s.handleUpdateColors)
		r.Patch("/personalization", s.handleUpdatePersonalization)
	})

	// Derived views
	s.router.Get("/api/v1/preview", s.handlePreview)
	s.router.Get("/api/v1/summary", s.handleSummary)
	s.router.Post("/api/v1/export", s.handleExport)
}

// SetMCP mounts an MCP transport handler under /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
