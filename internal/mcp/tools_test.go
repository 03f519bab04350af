package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/export"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
	"github.com/michel-adelino/fitness-notebook/internal/storage"
)

// memStore is an in-memory slot store for handler tests.
type memStore struct {
	slots map[string][]byte
}

func (m *memStore) Put(_ context.Context, slot string, data []byte) error {
	m.slots[slot] = data
	return nil
}

func (m *memStore) Get(_ context.Context, slot string) ([]byte, error) {
	data, ok := m.slots[slot]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Close() error { return nil }

func newTestHandlers(t *testing.T) *handlers {
	t.Helper()
	store := &memStore{slots: make(map[string][]byte)}
	builder := notebook.NewBuilder(context.Background(), store, notebook.DefaultSlot, slog.Default())
	return &handlers{
		builder:  builder,
		exporter: export.New(export.NewSurfaceRasterizer(), slog.Default()),
		log:      slog.Default(),
	}
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText extracts the text payload of a successful tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool returned error result: %+v", res.Content)
	}
	if len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is not text: %T", res.Content[0])
	}
	return text.Text
}

func decodeResult(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(resultText(t, res)), v); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
}

func TestListTemplates(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.listTemplates(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	var templates []catalog.Template
	decodeResult(t, res, &templates)
	if len(templates) != 8 {
		t.Errorf("templates = %d, want 8", len(templates))
	}
}

func TestListExercisesFiltered(t *testing.T) {
	h := newTestHandlers(t)

	res, err := h.listExercises(context.Background(), callReq(map[string]any{"category": "cardio"}))
	if err != nil {
		t.Fatalf("listExercises() error = %v", err)
	}
	var exercises []catalog.Exercise
	decodeResult(t, res, &exercises)
	if len(exercises) != 6 {
		t.Errorf("cardio exercises = %d, want 6", len(exercises))
	}
	for _, e := range exercises {
		if e.Category != catalog.CategoryCardio {
			t.Errorf("exercise %s category = %q", e.ID, e.Category)
		}
	}
}

func TestSelectTemplateTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, err := h.selectTemplate(ctx, callReq(map[string]any{"template_id": "weekly"}))
	if err != nil {
		t.Fatalf("selectTemplate() error = %v", err)
	}
	var doc notebook.Document
	decodeResult(t, res, &doc)
	if doc.TemplateID != "weekly" {
		t.Errorf("templateId = %q, want weekly", doc.TemplateID)
	}

	res, err = h.selectTemplate(ctx, callReq(map[string]any{"template_id": "bogus"}))
	if err != nil {
		t.Fatalf("selectTemplate(bogus) error = %v", err)
	}
	if !res.IsError {
		t.Error("unknown template: want error result")
	}

	res, err = h.selectTemplate(ctx, callReq(nil))
	if err != nil {
		t.Fatalf("selectTemplate(no args) error = %v", err)
	}
	if !res.IsError {
		t.Error("missing template_id: want error result")
	}
}

func TestAddExerciseTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, err := h.addExercise(ctx, callReq(map[string]any{"exercise_id": "squat"}))
	if err != nil {
		t.Fatalf("addExercise() error = %v", err)
	}
	var entry notebook.Entry
	decodeResult(t, res, &entry)
	if entry.Name != "Squat" || entry.Order != 0 {
		t.Errorf("entry = %+v", entry)
	}

	res, _ = h.addExercise(ctx, callReq(map[string]any{"exercise_id": "bogus"}))
	if !res.IsError {
		t.Error("unknown exercise: want error result")
	}

	res, _ = h.addExercise(ctx, callReq(map[string]any{"name": "Sled Push"}))
	decodeResult(t, res, &entry)
	if entry.Category != catalog.CategoryCustom {
		t.Errorf("custom category = %q", entry.Category)
	}

	res, _ = h.addExercise(ctx, callReq(nil))
	if !res.IsError {
		t.Error("no arguments: want error result")
	}
}

func TestUpdateExerciseTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	added := h.builder.AddExercise(ctx, catalog.Exercises[0])

	res, err := h.updateExercise(ctx, callReq(map[string]any{
		"entry_id": added.ID,
		"weight":   77.5,
		"notes":    "slow negatives",
	}))
	if err != nil {
		t.Fatalf("updateExercise() error = %v", err)
	}
	var doc notebook.Document
	decodeResult(t, res, &doc)
	got := doc.Exercises[0]
	if got.Weight != 77.5 || got.Notes != "slow negatives" {
		t.Errorf("entry = %+v", got)
	}
	if got.Sets != added.Sets {
		t.Errorf("sets changed: %d, want %d", got.Sets, added.Sets)
	}
}

func TestReorderExercisesTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	for _, id := range []string{"squat", "bench-press", "deadlift", "running"} {
		ex, _ := catalog.ExerciseByID(id)
		h.builder.AddExercise(ctx, ex)
	}

	res, err := h.reorderExercises(ctx, callReq(map[string]any{"from": 0, "to": 2}))
	if err != nil {
		t.Fatalf("reorderExercises() error = %v", err)
	}
	var doc notebook.Document
	decodeResult(t, res, &doc)
	want := []string{"Bench Press", "Deadlift", "Squat", "Running"}
	for i, name := range want {
		if doc.Exercises[i].Name != name {
			t.Errorf("exercise[%d] = %q, want %q", i, doc.Exercises[i].Name, name)
		}
	}

	res, _ = h.reorderExercises(ctx, callReq(map[string]any{"from": 1}))
	if !res.IsError {
		t.Error("missing to: want error result")
	}
}

func TestUpdateColorsAndPersonalizationTools(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	res, err := h.updateColors(ctx, callReq(map[string]any{"accent_color": "#f97316"}))
	if err != nil {
		t.Fatalf("updateColors() error = %v", err)
	}
	var doc notebook.Document
	decodeResult(t, res, &doc)
	if doc.Colors.AccentColor != "#f97316" {
		t.Errorf("accent = %q", doc.Colors.AccentColor)
	}
	if doc.Colors.LineColor != "#000000" {
		t.Errorf("line = %q, want default", doc.Colors.LineColor)
	}

	res, err = h.updatePersonalization(ctx, callReq(map[string]any{"initials": "jd"}))
	if err != nil {
		t.Fatalf("updatePersonalization() error = %v", err)
	}
	decodeResult(t, res, &doc)
	if doc.Personalization.Initials != "JD" {
		t.Errorf("initials = %q, want JD", doc.Personalization.Initials)
	}
}

func TestResetDocumentTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	h.builder.AddExercise(ctx, catalog.Exercises[0])
	h.builder.SelectTemplate(ctx, "split")

	res, err := h.resetDocument(ctx, callReq(nil))
	if err != nil {
		t.Fatalf("resetDocument() error = %v", err)
	}
	var doc notebook.Document
	decodeResult(t, res, &doc)
	if doc.TemplateID != "table" || len(doc.Exercises) != 0 {
		t.Errorf("doc after reset = %+v", doc)
	}
}

func TestGetPreviewTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	ex, _ := catalog.ExerciseByID("running")
	h.builder.AddExercise(ctx, ex)

	res, err := h.getPreview(ctx, callReq(nil))
	if err != nil {
		t.Fatalf("getPreview() error = %v", err)
	}
	var surface struct {
		Header  struct{ ExerciseCount int }
		Content struct{ Kind string }
	}
	decodeResult(t, res, &surface)
	if surface.Header.ExerciseCount != 1 {
		t.Errorf("exerciseCount = %d, want 1", surface.Header.ExerciseCount)
	}
	if surface.Content.Kind != "table" {
		t.Errorf("kind = %q, want table", surface.Content.Kind)
	}
}

func TestGetPriceSummaryTool(t *testing.T) {
	h := newTestHandlers(t)
	ctx := context.Background()

	for _, id := range []string{"squat", "bench-press"} {
		ex, _ := catalog.ExerciseByID(id)
		h.builder.AddExercise(ctx, ex)
	}

	res, err := h.getPriceSummary(ctx, callReq(nil))
	if err != nil {
		t.Fatalf("getPriceSummary() error = %v", err)
	}
	var summary notebook.PriceSummary
	decodeResult(t, res, &summary)
	if summary.ExerciseCount != 2 {
		t.Errorf("exerciseCount = %d, want 2", summary.ExerciseCount)
	}
	if summary.ExerciseTotal != 1 {
		t.Errorf("exerciseTotal = %v, want 1", summary.ExerciseTotal)
	}
}

func TestCatalogResource(t *testing.T) {
	h := newTestHandlers(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = "fitnote://catalog"

	contents, err := h.catalogResource(context.Background(), req)
	if err != nil {
		t.Fatalf("catalogResource() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	var payload struct {
		Exercises []catalog.Exercise `json:"exercises"`
		Templates []catalog.Template `json:"templates"`
	}
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if len(payload.Exercises) != 20 || len(payload.Templates) != 8 {
		t.Errorf("catalog = %d exercises, %d templates", len(payload.Exercises), len(payload.Templates))
	}
}
