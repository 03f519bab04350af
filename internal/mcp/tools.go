package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
	"github.com/michel-adelino/fitness-notebook/internal/render"
)

// --- Tool definitions ---

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List all notebook templates with their layout kind, sections, and table columns."),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog, optionally filtered by category."),
	mcp.WithString("category", mcp.Description("Filter by category"), mcp.Enum("strength", "cardio", "flexibility", "custom")),
)

var toolGetDocument = mcp.NewTool("get_document",
	mcp.WithDescription("Get the current notebook document: selected template, ordered exercise list, colors, and personalization."),
)

var toolSelectTemplate = mcp.NewTool("select_template",
	mcp.WithDescription("Switch the notebook to a different template."),
	mcp.WithString("template_id", mcp.Required(), mcp.Description("Template id (e.g. 'table', 'weekly', 'split')")),
)

var toolAddExercise = mcp.NewTool("add_exercise",
	mcp.WithDescription("Append an exercise to the notebook page. Pass exercise_id for a catalog exercise, or name for a custom one."),
	mcp.WithString("exercise_id", mcp.Description("Catalog exercise id (e.g. 'bench-press')")),
	mcp.WithString("name", mcp.Description("Name for a custom exercise, used when exercise_id is not set")),
)

var toolRemoveExercise = mcp.NewTool("remove_exercise",
	mcp.WithDescription("Remove an exercise entry from the page by its entry id. Remaining entries are renumbered."),
	mcp.WithString("entry_id", mcp.Required(), mcp.Description("Page entry id as returned by add_exercise or get_document")),
)

var toolUpdateExercise = mcp.NewTool("update_exercise",
	mcp.WithDescription("Update sets, reps, weight, or notes of a page entry. Omitted fields are left unchanged."),
	mcp.WithString("entry_id", mcp.Required(), mcp.Description("Page entry id")),
	mcp.WithNumber("sets", mcp.Description("Number of sets")),
	mcp.WithNumber("reps", mcp.Description("Number of reps")),
	mcp.WithNumber("weight", mcp.Description("Weight in kg")),
	mcp.WithString("notes", mcp.Description("Free-text notes; for cardio this is the duration/distance line")),
)

var toolReorderExercises = mcp.NewTool("reorder_exercises",
	mcp.WithDescription("Move the exercise at position 'from' to position 'to'. Positions are zero-based; out-of-range values are clamped."),
	mcp.WithNumber("from", mcp.Required(), mcp.Description("Current zero-based position")),
	mcp.WithNumber("to", mcp.Required(), mcp.Description("Target zero-based position")),
)

var toolUpdateColors = mcp.NewTool("update_colors",
	mcp.WithDescription("Update the color scheme. Omitted colors are left unchanged."),
	mcp.WithString("line_color", mcp.Description("Line color (hex, e.g. #000000)")),
	mcp.WithString("heading_color", mcp.Description("Heading color (hex)")),
	mcp.WithString("accent_color", mcp.Description("Accent color (hex)")),
)

var toolUpdatePersonalization = mcp.NewTool("update_personalization",
	mcp.WithDescription("Update the personalization block. Omitted fields are left unchanged; initials are upper-cased."),
	mcp.WithString("name", mcp.Description("Owner name (max 50 chars)")),
	mcp.WithString("initials", mcp.Description("Initials (max 5 chars)")),
	mcp.WithString("quote", mcp.Description("Motivational quote (max 200 chars)")),
)

var toolResetDocument = mcp.NewTool("reset_document",
	mcp.WithDescription("Discard the notebook and start over from defaults."),
)

var toolGetPreview = mcp.NewTool("get_preview",
	mcp.WithDescription("Render the current document to its structured visual surface (header, content blocks, quote footer)."),
)

var toolGetPriceSummary = mcp.NewTool("get_price_summary",
	mcp.WithDescription("Get the checkout price breakdown for the current notebook."),
)

// --- Tool handlers ---

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(catalog.Templates)
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")
	if category == "" {
		return jsonResult(catalog.Exercises)
	}
	var filtered []catalog.Exercise
	for _, e := range catalog.Exercises {
		if string(e.Category) == category {
			filtered = append(filtered, e)
		}
	}
	return jsonResult(filtered)
}

func (h *handlers) getDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.builder.Document())
}

func (h *handlers) selectTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("template_id")
	if err != nil {
		return mcp.NewToolResultError("template_id parameter is required"), nil
	}
	if !h.builder.SelectTemplate(ctx, id) {
		return mcp.NewToolResultError("unknown template: " + id), nil
	}
	return jsonResult(h.builder.Document())
}

func (h *handlers) addExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID := req.GetString("exercise_id", "")
	name := req.GetString("name", "")

	var entry notebook.Entry
	switch {
	case exerciseID != "":
		ex, ok := catalog.ExerciseByID(exerciseID)
		if !ok {
			return mcp.NewToolResultError("unknown exercise: " + exerciseID), nil
		}
		entry = h.builder.AddExercise(ctx, ex)
	case name != "":
		entry = h.builder.AddCustomExercise(ctx, name)
	default:
		return mcp.NewToolResultError("exercise_id or name is required"), nil
	}
	return jsonResult(entry)
}

func (h *handlers) removeExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("entry_id")
	if err != nil {
		return mcp.NewToolResultError("entry_id parameter is required"), nil
	}
	h.builder.RemoveExercise(ctx, id)
	return jsonResult(h.builder.Document())
}

func (h *handlers) updateExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("entry_id")
	if err != nil {
		return mcp.NewToolResultError("entry_id parameter is required"), nil
	}

	args := req.GetArguments()
	var upd notebook.EntryUpdate
	if v, ok := args["sets"].(float64); ok {
		sets := int(v)
		upd.Sets = &sets
	}
	if v, ok := args["reps"].(float64); ok {
		reps := int(v)
		upd.Reps = &reps
	}
	if v, ok := args["weight"].(float64); ok {
		upd.Weight = &v
	}
	if v, ok := args["notes"].(string); ok {
		upd.Notes = &v
	}

	h.builder.UpdateExercise(ctx, id, upd)
	return jsonResult(h.builder.Document())
}

func (h *handlers) reorderExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from, err := req.RequireInt("from")
	if err != nil {
		return mcp.NewToolResultError("from parameter is required"), nil
	}
	to, err := req.RequireInt("to")
	if err != nil {
		return mcp.NewToolResultError("to parameter is required"), nil
	}
	h.builder.ReorderExercises(ctx, from, to)
	return jsonResult(h.builder.Document())
}

func (h *handlers) updateColors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var upd notebook.ColorUpdate
	if v, ok := args["line_color"].(string); ok {
		upd.LineColor = &v
	}
	if v, ok := args["heading_color"].(string); ok {
		upd.HeadingColor = &v
	}
	if v, ok := args["accent_color"].(string); ok {
		upd.AccentColor = &v
	}
	h.builder.UpdateColors(ctx, upd)
	return jsonResult(h.builder.Document())
}

func (h *handlers) updatePersonalization(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var upd notebook.PersonalizationUpdate
	if v, ok := args["name"].(string); ok {
		upd.Name = &v
	}
	if v, ok := args["initials"].(string); ok {
		upd.Initials = &v
	}
	if v, ok := args["quote"].(string); ok {
		upd.Quote = &v
	}
	h.builder.UpdatePersonalization(ctx, upd)
	return jsonResult(h.builder.Document())
}

func (h *handlers) resetDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.builder.Reset(ctx)
	return jsonResult(h.builder.Document())
}

func (h *handlers) getPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	surface := render.Render(h.builder.Document(), h.builder.Template(), time.Now())
	return jsonResult(surface)
}

func (h *handlers) getPriceSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(notebook.Summarize(h.builder.Document()))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
