package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/michel-adelino/fitness-notebook/internal/export"
	"github.com/michel-adelino/fitness-notebook/internal/render"
)

// handleExport renders the current document and streams it back as a
// paginated PDF download. Export failures surface as a single error message;
// no partial document is ever sent.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	surface := render.Render(s.builder.Document(), s.builder.Template(), time.Now())

	data, filename, err := s.exporter.Export(surface)
	switch {
	case errors.Is(err, export.ErrInProgress):
		writeError(w, http.StatusConflict, "an export is already in progress")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "export failed: "+err.Error())
		return
	}

	writePDF(w, filename, data)
}

// writePDF writes the PDF download headers and body. Headers are frozen once
// written.
func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
