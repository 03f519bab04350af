// Package mcp exposes the notebook builder's operations as MCP tools, so an
// agent can assemble and export a notebook the same way the HTTP API does.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/michel-adelino/fitness-notebook/internal/export"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
)

// New creates an MCP server with all tools and resources registered.
func New(builder *notebook.Builder, exporter *export.Exporter, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Fitness Notebook", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Fitness notebook builder. Assemble a custom notebook page from the exercise catalog, customize colors and personalization, preview the layout, and export a print-ready PDF."),
	)

	h := &handlers{builder: builder, exporter: exporter, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetDocument, Handler: h.getDocument},
		server.ServerTool{Tool: toolSelectTemplate, Handler: h.selectTemplate},
		server.ServerTool{Tool: toolAddExercise, Handler: h.addExercise},
		server.ServerTool{Tool: toolRemoveExercise, Handler: h.removeExercise},
		server.ServerTool{Tool: toolUpdateExercise, Handler: h.updateExercise},
		server.ServerTool{Tool: toolReorderExercises, Handler: h.reorderExercises},
		server.ServerTool{Tool: toolUpdateColors, Handler: h.updateColors},
		server.ServerTool{Tool: toolUpdatePersonalization, Handler: h.updatePersonalization},
		server.ServerTool{Tool: toolResetDocument, Handler: h.resetDocument},
		server.ServerTool{Tool: toolGetPreview, Handler: h.getPreview},
		server.ServerTool{Tool: toolGetPriceSummary, Handler: h.getPriceSummary},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
		server.ServerResource{Resource: resDocument, Handler: h.documentResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	builder  *notebook.Builder
	exporter *export.Exporter
	log      *slog.Logger
}
