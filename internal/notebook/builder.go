package notebook

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/storage"
)

// Builder owns a single notebook document and exposes its mutation
// operations. Every mutation is written through to the slot store; a failed
// write is logged and never propagated, so in-memory state stays the source
// of truth.
//
// The editing model is a single logical writer. The mutex only serializes
// concurrent transport goroutines onto that model; there is no finer-grained
// locking.
type Builder struct {
	mu    sync.Mutex
	doc   Document
	store storage.Store
	slot  string
	log   *slog.Logger
}

// NewBuilder restores the document from the slot store, falling back to the
// default document when the slot is absent or unreadable, and re-validating
// the template id against the catalog.
func NewBuilder(ctx context.Context, store storage.Store, slot string, log *slog.Logger) *Builder {
	b := &Builder{
		store: store,
		slot:  slot,
		log:   log,
	}
	b.doc = loadDocument(ctx, store, slot, log)

	// Second validation pass: tolerate a catalog that changed since the
	// state was written, even if load already substituted a template.
	if _, ok := catalog.TemplateByID(b.doc.TemplateID); !ok {
		b.doc.TemplateID = catalog.DefaultTemplate().ID
	}
	return b
}

// Document returns a deep copy of the current document.
func (b *Builder) Document() Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.clone()
}

// Template resolves the currently selected template, falling back to the
// first catalog template if the stored id no longer resolves.
func (b *Builder) Template() catalog.Template {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := catalog.TemplateByID(b.doc.TemplateID); ok {
		return t
	}
	return catalog.DefaultTemplate()
}

// SelectTemplate switches the active template. An unknown id is a silent
// no-op; ok reports whether the id resolved.
func (b *Builder) SelectTemplate(ctx context.Context, templateID string) (ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := catalog.TemplateByID(templateID); !ok {
		return false
	}
	b.doc.TemplateID = templateID
	b.persist(ctx)
	return true
}

// AddExercise appends a page entry derived from a catalog exercise. Sets,
// reps and weight seed from the catalog defaults, falling back to 3/10/0.
// The entry gets a freshly minted id, so adding the same catalog exercise
// twice produces two independent entries.
func (b *Builder) AddExercise(ctx context.Context, ex catalog.Exercise) Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	sets := ex.DefaultSets
	if sets == 0 {
		sets = 3
	}
	reps := ex.DefaultReps
	if reps == 0 {
		reps = 10
	}

	entry := Entry{
		ID:         uuid.NewString(),
		ExerciseID: ex.ID,
		Name:       ex.Name,
		Category:   ex.Category,
		Sets:       sets,
		Reps:       reps,
		Weight:     ex.DefaultWeight,
		Order:      len(b.doc.Exercises),
	}
	b.doc.Exercises = append(b.doc.Exercises, entry)
	b.persist(ctx)
	return entry
}

// AddCustomExercise appends a user-defined exercise that exists only on this
// page, never in the catalog.
func (b *Builder) AddCustomExercise(ctx context.Context, name string) Entry {
	return b.AddExercise(ctx, catalog.Exercise{
		ID:       "custom-" + uuid.NewString(),
		Name:     name,
		Category: catalog.CategoryCustom,
	})
}

// RemoveExercise deletes the entry with the given id and renumbers the
// remaining entries to keep order dense. Unknown ids are a silent no-op.
func (b *Builder) RemoveExercise(ctx context.Context, entryID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.doc.Exercises[:0]
	removed := false
	for _, e := range b.doc.Exercises {
		if e.ID == entryID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return
	}
	b.doc.Exercises = kept
	b.renumber()
	b.persist(ctx)
}

// UpdateExercise merges a partial update into the entry with the given id.
// Unknown ids are a silent no-op.
func (b *Builder) UpdateExercise(ctx context.Context, entryID string, upd EntryUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.doc.Exercises {
		if b.doc.Exercises[i].ID == entryID {
			upd.apply(&b.doc.Exercises[i])
			b.persist(ctx)
			return
		}
	}
}

// ReorderExercises moves the entry at from to position to and renumbers the
// whole list. Out-of-range indices are clamped into [0, len-1]; an empty
// list is a no-op.
func (b *Builder) ReorderExercises(ctx context.Context, from, to int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.doc.Exercises)
	if n == 0 {
		return
	}
	from = clamp(from, 0, n-1)
	to = clamp(to, 0, n-1)
	if from == to {
		return
	}

	moved := b.doc.Exercises[from]
	rest := append(b.doc.Exercises[:from], b.doc.Exercises[from+1:]...)
	b.doc.Exercises = append(rest[:to], append([]Entry{moved}, rest[to:]...)...)
	b.renumber()
	b.persist(ctx)
}

// UpdateColors shallow-merges a partial color update.
func (b *Builder) UpdateColors(ctx context.Context, upd ColorUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	upd.apply(&b.doc.Colors)
	b.persist(ctx)
}

// UpdatePersonalization shallow-merges a partial personalization update.
func (b *Builder) UpdatePersonalization(ctx context.Context, upd PersonalizationUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	upd.apply(&b.doc.Personalization)
	b.persist(ctx)
}

// Reset discards the document and starts over from defaults.
func (b *Builder) Reset(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = DefaultDocument()
	b.persist(ctx)
}

// renumber assigns each entry its zero-based index as order. Callers must
// hold the mutex.
func (b *Builder) renumber() {
	for i := range b.doc.Exercises {
		b.doc.Exercises[i].Order = i
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
