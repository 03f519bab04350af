package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/michel-adelino/fitness-notebook/internal/catalog"
	"github.com/michel-adelino/fitness-notebook/internal/notebook"
	"github.com/michel-adelino/fitness-notebook/internal/render"
)

func (s *Server) handleCatalogExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Exercises)
}

func (s *Server) handleCatalogTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Templates)
}

func (s *Server) handleCatalogCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TemplateID string `json:"templateId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !s.builder.SelectTemplate(r.Context(), req.TemplateID) {
		writeError(w, http.StatusBadRequest, "unknown template: "+req.TemplateID)
		return
	}
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.builder.Reset(r.Context())
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExerciseID string `json:"exerciseId"`
		Name       string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	var entry notebook.Entry
	switch {
	case req.ExerciseID != "":
		ex, ok := catalog.ExerciseByID(req.ExerciseID)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown exercise: "+req.ExerciseID)
			return
		}
		entry = s.builder.AddExercise(r.Context(), ex)
	case req.Name != "":
		entry = s.builder.AddCustomExercise(r.Context(), req.Name)
	default:
		writeError(w, http.StatusBadRequest, "exerciseId or name required")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	s.builder.RemoveExercise(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var upd notebook.EntryUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.builder.UpdateExercise(r.Context(), chi.URLParam(r, "id"), upd)
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleReorderExercises(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.builder.ReorderExercises(r.Context(), req.From, req.To)
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleUpdateColors(w http.ResponseWriter, r *http.Request) {
	var upd notebook.ColorUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.builder.UpdateColors(r.Context(), upd)
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handleUpdatePersonalization(w http.ResponseWriter, r *http.Request) {
	var upd notebook.PersonalizationUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	s.builder.UpdatePersonalization(r.Context(), upd)
	writeJSON(w, http.StatusOK, s.builder.Document())
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	surface := render.Render(s.builder.Document(), s.builder.Template(), time.Now())
	writeJSON(w, http.StatusOK, surface)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notebook.Summarize(s.builder.Document()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
