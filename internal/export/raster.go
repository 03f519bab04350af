package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/michel-adelino/fitness-notebook/internal/render"
)

// PxPerMM converts millimeters to raster pixels at 96 DPI.
const PxPerMM = 3.779527559

// SurfaceRasterizer draws a surface to an RGBA raster, line by line, with a
// fixed bitmap face. It replaces the original capture-the-live-view approach
// with a headless renderer; anything fancier can swap in behind the
// Rasterizer interface.
type SurfaceRasterizer struct {
	// Scale is the supersampling factor. Note that basicfont has a single
	// glyph size, so scaling affects geometry only.
	Scale int
}

// NewSurfaceRasterizer returns a rasterizer at the default 2x supersampling.
func NewSurfaceRasterizer() *SurfaceRasterizer {
	return &SurfaceRasterizer{Scale: 2}
}

// rasterLine is one drawable line: text, its color, an optional full-width
// background fill, and an indent level.
type rasterLine struct {
	text   string
	color  color.RGBA
	bg     *color.RGBA
	indent int
}

// Rasterize draws the surface to a single tall image. The width follows the
// page width; the height grows with content but never falls short of one
// page.
func (r *SurfaceRasterizer) Rasterize(s render.Surface) (*image.RGBA, error) {
	scale := r.Scale
	if scale <= 0 {
		scale = 2
	}

	width := int(s.PageWidthMM * PxPerMM * float64(scale))
	minHeight := int(s.PageHeightMM * PxPerMM * float64(scale))
	if width <= 0 {
		return nil, ErrEmptySurface
	}

	lines := layoutLines(s)

	lineH := 18 * scale
	margin := 24 * scale
	height := len(lines)*lineH + 2*margin
	if height < minHeight {
		height = minHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	y := margin
	for _, ln := range lines {
		if ln.bg != nil {
			draw.Draw(img, image.Rect(0, y, width, y+lineH), image.NewUniform(*ln.bg), image.Point{}, draw.Src)
		}
		if ln.text != "" {
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(ln.color),
				Face: face,
				Dot:  fixed.P(margin+ln.indent*12*scale, y+lineH-5*scale),
			}
			d.DrawString(ln.text)
		}
		y += lineH
	}
	return img, nil
}

// layoutLines flattens the surface into a top-to-bottom line sequence.
func layoutLines(s render.Surface) []rasterLine {
	heading := parseHexColor(s.Colors.HeadingColor, color.RGBA{26, 26, 26, 255})
	accent := parseHexColor(s.Colors.AccentColor, color.RGBA{59, 130, 246, 255})
	tint := blendToWhite(accent, 0.92)
	headerBG := blendToWhite(accent, 0.85)

	var lines []rasterLine
	add := func(ln rasterLine) { lines = append(lines, ln) }

	// Header block on an accent-tinted background.
	add(rasterLine{text: s.Header.Title, color: heading, bg: &headerBG})
	add(rasterLine{text: s.Header.TemplateName, color: accent, bg: &headerBG})
	info := s.Header.MonthYear
	if s.Header.ExerciseCount > 0 {
		unit := "Exercises"
		if s.Header.ExerciseCount == 1 {
			unit = "Exercise"
		}
		info = fmt.Sprintf("%s · %d %s", info, s.Header.ExerciseCount, unit)
	}
	if s.Header.Initials != "" {
		info = fmt.Sprintf("%s · [%s]", info, s.Header.Initials)
	}
	add(rasterLine{text: info, color: heading, bg: &headerBG})
	add(rasterLine{})

	if len(s.SectionChips) > 0 {
		add(rasterLine{text: strings.Join(s.SectionChips, "  |  "), color: accent})
		add(rasterLine{})
	}

	switch s.Content.Kind {
	case render.ContentTable:
		add(rasterLine{text: strings.Join(s.Content.Table.Columns, " | "), color: heading, bg: &tint})
		for _, row := range s.Content.Table.Rows {
			ln := rasterLine{text: strings.Join(row.Cells, " | "), color: heading}
			if row.Tinted {
				ln.bg = &tint
			}
			add(ln)
		}
	case render.ContentSections:
		for _, sec := range s.Content.Sections {
			add(rasterLine{text: sec.Label, color: accent})
			for _, item := range sec.Items {
				add(rasterLine{text: sectionItemLine(item), color: heading, indent: 1})
			}
			add(rasterLine{})
		}
	case render.ContentCards:
		for _, card := range s.Content.Cards {
			ln := rasterLine{text: fmt.Sprintf("%s  (%s)", card.Name, card.Category), color: heading}
			if card.Tinted {
				ln.bg = &tint
			}
			add(ln)
			if stats := cardStatsLine(card); stats != "" {
				add(rasterLine{text: stats, color: heading, indent: 1})
			}
			if card.DurationDistance != "" {
				add(rasterLine{text: "Duration/Distance: " + card.DurationDistance, color: heading, indent: 1})
			}
		}
	case render.ContentEmpty:
		add(rasterLine{})
		add(rasterLine{text: s.Content.EmptyMessage, color: accent, indent: 2})
	}

	if s.Quote != "" {
		add(rasterLine{})
		add(rasterLine{text: "“" + s.Quote + "”", color: heading})
	}

	add(rasterLine{})
	add(rasterLine{text: s.Branding, color: accent})
	return lines
}

func sectionItemLine(item render.SectionItem) string {
	parts := []string{item.Name}
	if item.Sets > 0 {
		parts = append(parts, fmt.Sprintf("%d sets", item.Sets))
	}
	if item.Reps > 0 {
		parts = append(parts, fmt.Sprintf("%d reps", item.Reps))
	}
	if item.Weight > 0 {
		parts = append(parts, fmt.Sprintf("%gkg", item.Weight))
	}
	return strings.Join(parts, "  ")
}

func cardStatsLine(card render.CardBlock) string {
	var parts []string
	if card.Sets > 0 {
		parts = append(parts, fmt.Sprintf("Sets %d", card.Sets))
	}
	if card.Reps > 0 {
		parts = append(parts, fmt.Sprintf("Reps %d", card.Reps))
	}
	if card.Weight > 0 {
		parts = append(parts, fmt.Sprintf("Weight %gkg", card.Weight))
	}
	return strings.Join(parts, "  ")
}

// parseHexColor parses #rgb or #rrggbb. Color values carry no invariant, so
// anything unparsable falls back instead of failing the export.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return fallback
		}
		return color.RGBA{r * 17, g * 17, b * 17, 255}
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
		return color.RGBA{r, g, b, 255}
	default:
		return fallback
	}
}

// blendToWhite lightens a color, standing in for the alpha-suffixed accent
// tints of the on-screen styling.
func blendToWhite(c color.RGBA, amount float64) color.RGBA {
	blend := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.RGBA{blend(c.R), blend(c.G), blend(c.B), 255}
}
