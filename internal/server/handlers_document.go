package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/docio"
	"github.com/jonathan/resume-builder/internal/types"
)

// DocumentResponse is the full working state of the editing session
type DocumentResponse struct {
	Document      types.Document      `json:"document"`
	Sections      []types.Section     `json:"sections"`
	StyleSettings types.StyleSettings `json:"styleSettings"`
	Dirty         bool                `json:"dirty"`
}

// ImportResponse reports the outcome of a document import
type ImportResponse struct {
	GeneratedIDs             int                 `json:"generatedIds"`
	OptionalSectionsWithData []types.SectionType `json:"optionalSectionsWithData,omitempty"`
}

// handleGetDocument returns the current document, registry, and styles
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	s.jsonResponse(w, http.StatusOK, DocumentResponse{
		Document:      snap.Document,
		Sections:      snap.Sections,
		StyleSettings: snap.StyleSettings,
		Dirty:         s.store.Dirty(),
	})
}

// handleImportDocument replaces the working document with an uploaded one.
// With ?derive=true the section registry is reset and optional sections are
// shown or hidden based on whether the document carries data for them.
func (s *Server) handleImportDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	result, err := docio.Import(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if r.URL.Query().Get("derive") == "true" {
		s.store.ImportDocumentWithDerivedVisibility(result.Document)
	} else {
		s.store.ImportDocument(result.Document)
	}

	s.jsonResponse(w, http.StatusOK, ImportResponse{
		GeneratedIDs:             result.GeneratedIDs,
		OptionalSectionsWithData: result.OptionalSectionsWithData,
	})
}

// handleExportDocument serves the document content as a JSON download
func (s *Server) handleExportDocument(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	data, err := docio.Export(snap.Document)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export document: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing export response: %v", err)
	}
}

// handleResetDocument restores the default empty document
func (s *Server) handleResetDocument(w http.ResponseWriter, _ *http.Request) {
	s.store.Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}

// handleUpdatePersonalDetails replaces the personal details block
func (s *Server) handleUpdatePersonalDetails(w http.ResponseWriter, r *http.Request) {
	var details types.PersonalDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.UpdatePersonalDetails(details)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// TextRequest carries a single free-text field
type TextRequest struct {
	Text string `json:"text"`
}

// handleUpdateProfile replaces the profile rich text
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.UpdateProfile(req.Text)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleUpdateFooter replaces the footer rich text
func (s *Server) handleUpdateFooter(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.UpdateFooter(req.Text)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}
