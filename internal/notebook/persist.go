package notebook

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/storage"
)

// DefaultSlot is the slot name the builder state lives under.
const DefaultSlot = "fitness-notebook-builder-state"

// persistedState is the wire shape of the stored document. The page size is
// a constant and is deliberately not persisted. Colors and personalization
// are pointers so a missing field falls back to defaults instead of zero
// values.
type persistedState struct {
	TemplateID      string           `json:"templateId"`
	Exercises       []Entry          `json:"exercises"`
	Colors          *ColorScheme     `json:"colors"`
	Personalization *Personalization `json:"personalization"`
}

// persist writes the document through to the slot store. Failures are logged
// and swallowed: a full or broken store must never corrupt in-memory state
// or surface to the caller.
func (b *Builder) persist(ctx context.Context) {
	state := persistedState{
		TemplateID:      b.doc.TemplateID,
		Exercises:       b.doc.Exercises,
		Colors:          &b.doc.Colors,
		Personalization: &b.doc.Personalization,
	}
	data, err := json.Marshal(state)
	if err != nil {
		b.log.Error("serializing notebook state", "error", err)
		return
	}
	if err := b.store.Put(ctx, b.slot, data); err != nil {
		b.log.Error("saving notebook state", "slot", b.slot, "error", err)
	}
}

// loadDocument restores a document from the slot store. Any failure mode
// (missing slot, unreadable store, malformed JSON, unknown template id)
// degrades to the default document rather than an error.
func loadDocument(ctx context.Context, store storage.Store, slot string, log *slog.Logger) Document {
	data, err := store.Get(ctx, slot)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Error("loading notebook state", "slot", slot, "error", err)
		}
		return DefaultDocument()
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Error("parsing notebook state, starting fresh", "slot", slot, "error", err)
		return DefaultDocument()
	}

	doc := DefaultDocument()
	if _, ok := catalog.TemplateByID(state.TemplateID); ok {
		doc.TemplateID = state.TemplateID
	}
	if state.Exercises != nil {
		doc.Exercises = state.Exercises
	}
	if state.Colors != nil {
		doc.Colors = *state.Colors
	}
	if state.Personalization != nil {
		doc.Personalization = *state.Personalization
	}
	return doc
}
