// Package notebook holds the in-progress notebook document and the mutation
// operations that keep its exercise ordering, derived fields, and persisted
// state consistent.
package notebook

import (
	"github.com/michel-adelino/fitness-notebook/internal/catalog"
)

// Entry is one exercise placed on the notebook page. ID is minted fresh at
// add time so the same catalog exercise can appear multiple times without
// colliding; ExerciseID keeps the catalog provenance.
type Entry struct {
	ID         string           `json:"id"`
	ExerciseID string           `json:"exerciseId"`
	Name       string           `json:"name"`
	Category   catalog.Category `json:"category"`
	Sets       int              `json:"sets,omitempty"`
	Reps       int              `json:"reps,omitempty"`
	Weight     float64          `json:"weight,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	Order      int              `json:"order"`
}

// ColorScheme carries the three styling colors. Values are hex-like strings
// passed through as-is; there is no validation layer.
type ColorScheme struct {
	LineColor    string `json:"lineColor"`
	HeadingColor string `json:"headingColor"`
	AccentColor  string `json:"accentColor"`
}

// Personalization is the cosmetic owner block printed on the page.
type Personalization struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Quote    string `json:"quote"`
}

// Document is the aggregate root: the full editable state of one notebook
// page. Exercises are kept in order-dense form: sorting by Order always
// yields exactly {0..n-1}.
type Document struct {
	TemplateID      string           `json:"templateId"`
	Exercises       []Entry          `json:"exercises"`
	Colors          ColorScheme      `json:"colors"`
	Personalization Personalization  `json:"personalization"`
	PageSize        catalog.PageSize `json:"pageSize"`
}

// DefaultColors are the colors a fresh document starts with.
func DefaultColors() ColorScheme {
	return ColorScheme{
		LineColor:    "#000000",
		HeadingColor: "#1a1a1a",
		AccentColor:  "#3b82f6",
	}
}

// DefaultDocument is a fresh document: first catalog template, no exercises,
// default colors, empty personalization, A4 page.
func DefaultDocument() Document {
	return Document{
		TemplateID: catalog.DefaultTemplate().ID,
		Exercises:  []Entry{},
		Colors:     DefaultColors(),
		PageSize:   catalog.DefaultPageSize,
	}
}

// clone returns a deep copy so callers can never alias the builder's state.
func (d Document) clone() Document {
	out := d
	out.Exercises = make([]Entry, len(d.Exercises))
	copy(out.Exercises, d.Exercises)
	return out
}
