package notebook

import "strings"

// Length caps applied to personalization input. Anything longer is truncated
// at the boundary; the rest of the core treats stored values as opaque.
const (
	maxNameLen     = 50
	maxInitialsLen = 5
	maxQuoteLen    = 200
)

// EntryUpdate is a partial update for a page entry. Nil fields are left
// untouched.
type EntryUpdate struct {
	Sets   *int     `json:"sets"`
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
	Notes  *string  `json:"notes"`
}

func (u EntryUpdate) apply(e *Entry) {
	if u.Sets != nil {
		e.Sets = *u.Sets
	}
	if u.Reps != nil {
		e.Reps = *u.Reps
	}
	if u.Weight != nil {
		e.Weight = *u.Weight
	}
	if u.Notes != nil {
		e.Notes = *u.Notes
	}
}

// ColorUpdate is a partial update for the color scheme.
type ColorUpdate struct {
	LineColor    *string `json:"lineColor"`
	HeadingColor *string `json:"headingColor"`
	AccentColor  *string `json:"accentColor"`
}

func (u ColorUpdate) apply(c *ColorScheme) {
	if u.LineColor != nil {
		c.LineColor = *u.LineColor
	}
	if u.HeadingColor != nil {
		c.HeadingColor = *u.HeadingColor
	}
	if u.AccentColor != nil {
		c.AccentColor = *u.AccentColor
	}
}

// PersonalizationUpdate is a partial update for the personalization block.
// Initials are upper-cased and all fields are clamped to their caps here,
// at the input boundary.
type PersonalizationUpdate struct {
	Name     *string `json:"name"`
	Initials *string `json:"initials"`
	Quote    *string `json:"quote"`
}

func (u PersonalizationUpdate) apply(p *Personalization) {
	if u.Name != nil {
		p.Name = truncate(*u.Name, maxNameLen)
	}
	if u.Initials != nil {
		p.Initials = strings.ToUpper(truncate(*u.Initials, maxInitialsLen))
	}
	if u.Quote != nil {
		p.Quote = truncate(*u.Quote, maxQuoteLen)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
