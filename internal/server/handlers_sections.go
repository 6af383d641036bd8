package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleToggleSection flips a section's visibility. Hiding never discards the
// section's data.
func (s *Server) handleToggleSection(w http.ResponseWriter, r *http.Request) {
	sectionType := types.SectionType(r.PathValue("type"))

	if err := s.store.ToggleSection(sectionType); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "toggled"})
}

// handleRemoveSection hides an optional section. Core sections cannot be
// removed.
func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	sectionType := types.SectionType(r.PathValue("type"))

	if err := s.store.RemoveSection(sectionType); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ReorderSectionsRequest names the new display order by section type
type ReorderSectionsRequest struct {
	Order []types.SectionType `json:"order"`
}

// handleReorderSections rearranges the section registry
func (s *Server) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	var req ReorderSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.ReorderSections(req.Order); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reordered"})
}

// RenameSectionRequest carries a new section title
type RenameSectionRequest struct {
	Title string `json:"title"`
}

// handleRenameSection changes a section's display title
func (s *Server) handleRenameSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req RenameSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.RenameSection(id, req.Title); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "renamed"})
}

// handleTogglePageBreak flips the forced page break after a section
func (s *Server) handleTogglePageBreak(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.store.TogglePageBreak(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "toggled"})
}

// handleListTemplates returns the registered visual templates
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": rendering.Templates(),
		"default":   rendering.DefaultTemplateID,
	})
}

// handleUpdateStyle applies a partial style update. Out-of-range values
// reject the whole patch and leave the current settings untouched.
func (s *Server) handleUpdateStyle(w http.ResponseWriter, r *http.Request) {
	var patch types.StylePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if patch.TemplateID != nil {
		if _, err := rendering.GetTemplate(*patch.TemplateID); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	if err := s.store.UpdateStyleSettings(patch); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.Snapshot().StyleSettings)
}

// SetTemplateRequest selects a visual template
type SetTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

// handleSetTemplate switches the selected template
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req SetTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if _, err := rendering.GetTemplate(req.TemplateID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.SetTemplate(req.TemplateID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.Snapshot().StyleSettings)
}
