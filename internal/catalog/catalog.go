// Package catalog holds the fixed, read-only exercise and template
// definitions the builder works from. Everything in here is a process-wide
// constant; nothing is created or mutated at runtime.
package catalog

// Category classifies a catalog exercise.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryCustom      Category = "custom"
)

// Exercise is a catalog entry. Default sets/reps/weight seed the values a
// page entry starts with; zero means "no default".
type Exercise struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	DefaultSets   int      `json:"defaultSets,omitempty"`
	DefaultReps   int      `json:"defaultReps,omitempty"`
	DefaultWeight float64  `json:"defaultWeight,omitempty"`
}

// Template is a named layout policy: a table layout with column headers, a
// sectioned layout with labels, or a plain card list when neither applies.
type Template struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Layout       string   `json:"layout"`
	Sections     []string `json:"sections"`
	HasTable     bool     `json:"hasTable,omitempty"`
	TableColumns []string `json:"tableColumns,omitempty"`
}

// CategoryInfo is a display entry for the category list endpoint.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

// PageSize is a physical page size in millimeters.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultPageSize is A4.
var DefaultPageSize = PageSize{Width: 210, Height: 297}

// ExerciseByID looks up a catalog exercise.
func ExerciseByID(id string) (Exercise, bool) {
	for _, e := range Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// TemplateByID looks up a template.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// DefaultTemplate is the first catalog template, used as the fallback
// whenever a template id cannot be resolved.
func DefaultTemplate() Template {
	return Templates[0]
}
