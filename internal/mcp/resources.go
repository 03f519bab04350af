package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
)

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"fitnote://catalog",
	"Exercise and Template Catalog",
	mcp.WithResourceDescription("The full read-only catalog: exercises with categories and defaults, templates, and the default page size"),
	mcp.WithMIMEType("application/json"),
)

var resDocument = mcp.NewResource(
	"fitnote://document",
	"Current Notebook Document",
	mcp.WithResourceDescription("The in-progress notebook document: template, ordered exercises, colors, personalization"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	payload := map[string]any{
		"exercises":  catalog.Exercises,
		"categories": catalog.Categories,
		"templates":  catalog.Templates,
		"pageSize":   catalog.DefaultPageSize,
	}
	return jsonResource(req.Params.URI, payload)
}

func (h *handlers) documentResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.builder.Document())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
