package render

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
)

const (
	emptyMessage = "No exercises added yet"
	brandingLine = "Fitness Notebook"
	genericTitle = "My Fitness"
)

// Weight increments the progressive overload template projects over the base
// weight for sets 2-4.
var progressiveIncrements = [3]float64{2.5, 5, 7.5}

// Render produces the visual surface for a document under the given
// template. now only feeds the month/year line in the header.
func Render(doc notebook.Document, tpl catalog.Template, now time.Time) Surface {
	sorted := sortedEntries(doc.Exercises)

	s := Surface{
		PageWidthMM:  doc.PageSize.Width,
		PageHeightMM: doc.PageSize.Height,
		Colors:       doc.Colors,
		Header: Header{
			Title:         headerTitle(doc.Personalization.Name),
			TemplateName:  tpl.Name,
			MonthYear:     now.Format("January 2006"),
			ExerciseCount: len(sorted),
			Initials:      doc.Personalization.Initials,
		},
		Quote:    doc.Personalization.Quote,
		Branding: brandingLine,
	}

	if !tpl.HasTable && len(tpl.Sections) > 0 {
		s.SectionChips = tpl.Sections
	}

	switch {
	case tpl.HasTable:
		s.Content = renderTable(sorted, tpl)
	case len(tpl.Sections) > 0 && isSectionedLayout(tpl.Layout):
		s.Content = renderSections(sorted, tpl)
	default:
		s.Content = renderCards(sorted)
	}
	return s
}

func headerTitle(name string) string {
	if name == "" {
		return genericTitle
	}
	return name + "'s"
}

func isSectionedLayout(layout string) bool {
	return layout == "log" || layout == "split" || layout == "fullbody"
}

// sortedEntries returns the entries sorted by order ascending. The sort is
// stable so entries with equal order keep their relative position.
func sortedEntries(entries []notebook.Entry) []notebook.Entry {
	out := make([]notebook.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func renderTable(entries []notebook.Entry, tpl catalog.Template) Content {
	if len(tpl.TableColumns) == 0 || len(entries) == 0 {
		return Content{Kind: ContentEmpty, EmptyMessage: emptyMessage}
	}

	block := &TableBlock{Columns: tpl.TableColumns}
	for i, e := range entries {
		block.Rows = append(block.Rows, TableRow{
			Cells:  tableCells(e, tpl, i),
			Tinted: i%2 == 1,
		})
	}
	return Content{Kind: ContentTable, Table: block}
}

// tableCells synthesizes the row content for one entry. Each table template
// fills its columns differently.
func tableCells(e notebook.Entry, tpl catalog.Template, idx int) []string {
	switch tpl.ID {
	case "table":
		return []string{e.Name, intCell(e.Sets), intCell(e.Reps), weightCell(e.Weight), textCell(e.Notes)}
	case "weekly":
		day := "-"
		if len(tpl.Sections) > 0 {
			day = tpl.Sections[idx%len(tpl.Sections)]
		}
		return []string{day, e.Name, intCell(e.Sets), intCell(e.Reps), weightCell(e.Weight)}
	case "tracker":
		// Placeholder trend: the current weight repeated across the week
		// columns, with a flat upward marker.
		w := weightCell(e.Weight)
		return []string{e.Name, w, w, w, w, "↗"}
	case "progressive":
		cells := []string{e.Name, weightCell(e.Weight)}
		for _, inc := range progressiveIncrements {
			if e.Weight > 0 {
				cells = append(cells, formatWeight(e.Weight+inc))
			} else {
				cells = append(cells, "-")
			}
		}
		return append(cells, volumeCell(e))
	default:
		cells := make([]string, len(tpl.TableColumns))
		cells[0] = e.Name
		for i := 1; i < len(cells); i++ {
			cells[i] = "-"
		}
		return cells
	}
}

func renderSections(entries []notebook.Entry, tpl catalog.Template) Content {
	if len(entries) == 0 {
		return Content{Kind: ContentEmpty, EmptyMessage: emptyMessage}
	}

	// Contiguous chunks of ceil(n/sections) entries, order preserved. Later
	// sections may run short or empty.
	perSection := (len(entries) + len(tpl.Sections) - 1) / len(tpl.Sections)

	blocks := make([]SectionBlock, 0, len(tpl.Sections))
	for i, label := range tpl.Sections {
		lo := i * perSection
		hi := min(lo+perSection, len(entries))
		block := SectionBlock{Label: label}
		if lo < len(entries) {
			for _, e := range entries[lo:hi] {
				block.Items = append(block.Items, SectionItem{
					Name:     e.Name,
					Category: e.Category,
					Sets:     e.Sets,
					Reps:     e.Reps,
					Weight:   e.Weight,
				})
			}
		}
		blocks = append(blocks, block)
	}
	return Content{Kind: ContentSections, Sections: blocks}
}

func renderCards(entries []notebook.Entry) Content {
	if len(entries) == 0 {
		return Content{Kind: ContentEmpty, EmptyMessage: emptyMessage}
	}

	cards := make([]CardBlock, 0, len(entries))
	for i, e := range entries {
		card := CardBlock{
			Name:     e.Name,
			Category: e.Category,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Notes:    e.Notes,
			Tinted:   i%2 == 1,
		}
		if e.Category == catalog.CategoryCardio && e.Notes != "" {
			card.DurationDistance = e.Notes
		}
		cards = append(cards, card)
	}
	return Content{Kind: ContentCards, Cards: cards}
}

func textCell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intCell(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

func weightCell(w float64) string {
	if w == 0 {
		return "-"
	}
	return formatWeight(w)
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + "kg"
}

func volumeCell(e notebook.Entry) string {
	if e.Sets == 0 || e.Reps == 0 || e.Weight == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fkg", float64(e.Sets)*float64(e.Reps)*e.Weight)
}
