// Package export turns a rendered surface into a paginated, downloadable PDF.
// The surface is rasterized to one tall image, sliced into page-height bands,
// and each band placed full-width on its own page.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"sync/atomic"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/michel-adelino/fitness-notebook/internal/render"
)

// PtPerMM converts millimeters to PDF points.
const PtPerMM = 2.83465

var (
	// ErrEmptySurface means the surface rasterized to zero size. This is a
	// hard failure: nothing is downloaded.
	ErrEmptySurface = errors.New("export: surface has zero size")

	// ErrInProgress means an export is already running. Exports are not
	// re-entrant; callers retry once the running one finishes.
	ErrInProgress = errors.New("export: another export is in progress")
)

// Rasterizer renders a surface to a single tall raster spanning all content.
// It is an interface so the capture step stays swappable.
type Rasterizer interface {
	Rasterize(s render.Surface) (*image.RGBA, error)
}

// Exporter assembles paginated PDFs from rendered surfaces. At most one
// export runs at a time; document mutations stay unblocked while one is in
// flight.
type Exporter struct {
	rast     Rasterizer
	log      *slog.Logger
	inFlight atomic.Bool
}

// New creates an Exporter using the given rasterizer.
func New(rast Rasterizer, log *slog.Logger) *Exporter {
	return &Exporter{rast: rast, log: log}
}

// Export produces the PDF bytes and a timestamped download filename. Any
// step failing aborts the whole export; no partial document is ever
// returned.
func (e *Exporter) Export(s render.Surface) ([]byte, string, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, "", ErrInProgress
	}
	defer e.inFlight.Store(false)

	data, err := e.build(s)
	if err != nil {
		e.log.Error("export failed", "error", err)
		return nil, "", err
	}

	filename := fmt.Sprintf("fitness-notebook-%d.pdf", time.Now().UnixMilli())
	return data, filename, nil
}

func (e *Exporter) build(s render.Surface) ([]byte, error) {
	raster, err := e.rast.Rasterize(s)
	if err != nil {
		return nil, err
	}
	bounds := raster.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptySurface
	}

	pageW := s.PageWidthMM * PtPerMM
	pageH := s.PageHeightMM * PtPerMM
	if pageW <= 0 || pageH <= 0 {
		return nil, ErrEmptySurface
	}

	orientation := "P"
	if pageW > pageH {
		orientation = "L"
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetAutoPageBreak(false, 0)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	for i, bd := range paginate(bounds.Dx(), bounds.Dy(), pageW, pageH) {
		slice := raster.SubImage(image.Rect(
			bounds.Min.X, bounds.Min.Y+bd.Y,
			bounds.Max.X, bounds.Min.Y+bd.Y+bd.H,
		))

		var buf bytes.Buffer
		if err := png.Encode(&buf, slice); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("band-%d", i)
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()

		// Full page width; height follows the band's aspect ratio, so the
		// last, clipped band only covers its share of the page.
		bandH := float64(bd.H) * pageW / float64(bounds.Dx())
		pdf.ImageOptions(name, 0, 0, pageW, bandH, false, opts, 0, "")

		if pdf.Err() {
			return nil, fmt.Errorf("assembling page %d: %w", i+1, pdf.Error())
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return out.Bytes(), nil
}
