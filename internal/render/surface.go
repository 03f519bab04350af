// Package render maps a notebook document and its template to a structured
// visual surface. Rendering is pure: no I/O, no clock access (the caller
// passes the time), and the same inputs always produce the same surface.
package render

import (
	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
)

// ContentKind discriminates the body of a surface.
type ContentKind string

const (
	ContentTable    ContentKind = "table"
	ContentSections ContentKind = "sections"
	ContentCards    ContentKind = "cards"
	ContentEmpty    ContentKind = "empty"
)

// Surface is the rendered visual document: position- and size-independent
// content blocks plus the page dimensions and styling colors needed to draw
// them.
type Surface struct {
	PageWidthMM  float64              `json:"pageWidthMm"`
	PageHeightMM float64              `json:"pageHeightMm"`
	Colors       notebook.ColorScheme `json:"colors"`
	Header       Header               `json:"header"`
	SectionChips []string             `json:"sectionChips,omitempty"`
	Content      Content              `json:"content"`
	Quote        string               `json:"quote,omitempty"`
	Branding     string               `json:"branding"`
}

// Header is the document header block.
type Header struct {
	Title         string `json:"title"`
	TemplateName  string `json:"templateName"`
	MonthYear     string `json:"monthYear"`
	ExerciseCount int    `json:"exerciseCount"`
	Initials      string `json:"initials,omitempty"`
}

// Content is a tagged union over the three layout bodies plus the empty
// state.
type Content struct {
	Kind         ContentKind    `json:"kind"`
	Table        *TableBlock    `json:"table,omitempty"`
	Sections     []SectionBlock `json:"sections,omitempty"`
	Cards        []CardBlock    `json:"cards,omitempty"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
}

// TableBlock is a header row plus one row per exercise.
type TableBlock struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// TableRow is one rendered table row. Tinted marks the alternating
// background, a presentation detail carried for the rasterizer.
type TableRow struct {
	Cells  []string `json:"cells"`
	Tinted bool     `json:"tinted,omitempty"`
}

// SectionBlock is one labeled chunk of the sectioned layout.
type SectionBlock struct {
	Label string        `json:"label"`
	Items []SectionItem `json:"items"`
}

// SectionItem is one exercise line inside a section.
type SectionItem struct {
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Sets     int              `json:"sets,omitempty"`
	Reps     int              `json:"reps,omitempty"`
	Weight   float64          `json:"weight,omitempty"`
}

// CardBlock is one exercise card in the default layout.
type CardBlock struct {
	Name             string           `json:"name"`
	Category         catalog.Category `json:"category"`
	Sets             int              `json:"sets,omitempty"`
	Reps             int              `json:"reps,omitempty"`
	Weight           float64          `json:"weight,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	DurationDistance string           `json:"durationDistance,omitempty"`
	Tinted           bool             `json:"tinted,omitempty"`
}
