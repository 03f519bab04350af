package notebook

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

// TestPersistRoundTrip verifies a document written by one builder is fully
// restored by the next one sharing the store.
func TestPersistRoundTrip(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	b := NewBuilder(ctx, store, DefaultSlot, slog.Default())
	b.SelectTemplate(ctx, "tracker")
	entry := b.AddExercise(ctx, mustExercise(t, "deadlift"))
	weight := 120.0
	b.UpdateExercise(ctx, entry.ID, EntryUpdate{Weight: &weight})
	accent := "#22c55e"
	b.UpdateColors(ctx, ColorUpdate{AccentColor: &accent})
	name := "Sam"
	b.UpdatePersonalization(ctx, PersonalizationUpdate{Name: &name})

	restored := NewBuilder(ctx, store, DefaultSlot, slog.Default()).Document()

	if restored.TemplateID != "tracker" {
		t.Errorf("templateId = %q, want tracker", restored.TemplateID)
	}
	if len(restored.Exercises) != 1 {
		t.Fatalf("exercises = %d, want 1", len(restored.Exercises))
	}
	got := restored.Exercises[0]
	if got.ID != entry.ID || got.Weight != 120 || got.Name != "Deadlift" {
		t.Errorf("entry = %+v", got)
	}
	if restored.Colors.AccentColor != "#22c55e" {
		t.Errorf("accent = %q, want #22c55e", restored.Colors.AccentColor)
	}
	if restored.Personalization.Name != "Sam" {
		t.Errorf("name = %q, want Sam", restored.Personalization.Name)
	}
}

// TestPersistedShape pins the stored JSON field names.
func TestPersistedShape(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	b := NewBuilder(ctx, store, DefaultSlot, slog.Default())
	b.AddExercise(ctx, mustExercise(t, "squat"))

	raw, ok := store.slots[DefaultSlot]
	if !ok {
		t.Fatal("nothing written under the default slot")
	}
	var state map[string]json.RawMessage
	if err := json.Unmarshal(raw, &state); err != nil {
		t.Fatalf("stored state is not valid JSON: %v", err)
	}
	for _, key := range []string{"templateId", "exercises", "colors", "personalization"} {
		if _, ok := state[key]; !ok {
			t.Errorf("stored state missing %q", key)
		}
	}
	if _, ok := state["pageSize"]; ok {
		t.Error("pageSize should not be persisted")
	}
}

// TestLoadCorruptState verifies unparseable stored state degrades to the
// default document instead of failing.
func TestLoadCorruptState(t *testing.T) {
	store := newMemStore()
	store.slots[DefaultSlot] = []byte("{not json")

	doc := NewBuilder(context.Background(), store, DefaultSlot, slog.Default()).Document()

	if doc.TemplateID != DefaultDocument().TemplateID {
		t.Errorf("templateId = %q, want default", doc.TemplateID)
	}
	if len(doc.Exercises) != 0 {
		t.Errorf("exercises = %d, want 0", len(doc.Exercises))
	}
}

// TestLoadUnknownTemplate verifies a stored template id that no longer
// resolves falls back to the default template while keeping the exercises.
func TestLoadUnknownTemplate(t *testing.T) {
	store := newMemStore()
	store.slots[DefaultSlot] = []byte(`{
		"templateId": "retired-template",
		"exercises": [
			{"id": "e1", "exerciseId": "squat", "name": "Squat", "category": "strength", "sets": 3, "reps": 10, "order": 0}
		],
		"colors": {"lineColor": "#111111", "headingColor": "#222222", "accentColor": "#333333"},
		"personalization": {"name": "", "initials": "", "quote": ""}
	}`)

	doc := NewBuilder(context.Background(), store, DefaultSlot, slog.Default()).Document()

	if doc.TemplateID != DefaultDocument().TemplateID {
		t.Errorf("templateId = %q, want default", doc.TemplateID)
	}
	if len(doc.Exercises) != 1 || doc.Exercises[0].Name != "Squat" {
		t.Errorf("exercises = %+v, want the stored squat entry", doc.Exercises)
	}
	if doc.Colors.LineColor != "#111111" {
		t.Errorf("lineColor = %q, want #111111", doc.Colors.LineColor)
	}
}

// TestLoadPartialState verifies missing colors and personalization fall back
// to defaults rather than zero values.
func TestLoadPartialState(t *testing.T) {
	store := newMemStore()
	store.slots[DefaultSlot] = []byte(`{"templateId": "split", "exercises": []}`)

	doc := NewBuilder(context.Background(), store, DefaultSlot, slog.Default()).Document()

	if doc.TemplateID != "split" {
		t.Errorf("templateId = %q, want split", doc.TemplateID)
	}
	if doc.Colors != DefaultColors() {
		t.Errorf("colors = %+v, want defaults", doc.Colors)
	}
	if doc.PageSize.Width != 210 || doc.PageSize.Height != 297 {
		t.Errorf("pageSize = %+v, want A4", doc.PageSize)
	}
}

// failingStore rejects every write.
type failingStore struct{ memStore }

func (f *failingStore) Put(context.Context, string, []byte) error {
	return context.DeadlineExceeded
}

// TestPersistFailureKeepsState verifies a broken store never corrupts or
// blocks the in-memory document.
func TestPersistFailureKeepsState(t *testing.T) {
	store := &failingStore{memStore{slots: make(map[string][]byte)}}
	b := NewBuilder(context.Background(), store, DefaultSlot, slog.Default())

	b.AddExercise(context.Background(), mustExercise(t, "squat"))

	if n := len(b.Document().Exercises); n != 1 {
		t.Errorf("exercises = %d, want 1", n)
	}
}
