package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// handlePreview returns the interactive preview of the current state
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	blocks := layout.Resolve(snap.Document, snap.Sections)

	preview, err := rendering.RenderPreview(blocks, snap.StyleSettings)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, preview)
}

// handleExportHTML serves the print-ready HTML document for the current
// state. Clients use this directly with the browser's print dialog when the
// PDF pipeline is unavailable.
func (s *Server) handleExportHTML(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	html, err := s.exporter.StaticHTML(snap.Document, snap.Sections, snap.StyleSettings)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("Error writing HTML response: %v", err)
	}
}

// handleExportPDF renders the current state to PDF. When the browser
// pipeline fails, the response carries the print-ready HTML so the client can
// fall back to the native print dialog.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	s.servePDF(w, r, snap.Document, snap.Sections, snap.StyleSettings)
}

// RenderPDFRequest is a stateless render: the whole presentation state
// arrives in the request
type RenderPDFRequest struct {
	Document      *types.Document      `json:"document"`
	Sections      []types.Section      `json:"sections"`
	StyleSettings *types.StyleSettings `json:"styleSettings"`
}

// handleRenderPDF renders a caller-supplied document without touching the
// working state
func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	var req RenderPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Document == nil || req.Sections == nil || req.StyleSettings == nil {
		s.errorResponse(w, http.StatusBadRequest,
			"Missing required data: document, sections, or styleSettings")
		return
	}

	s.servePDF(w, r, *req.Document, req.Sections, *req.StyleSettings)
}

func (s *Server) servePDF(w http.ResponseWriter, r *http.Request, doc types.Document, sections []types.Section, styles types.StyleSettings) {
	result, err := s.exporter.Export(r.Context(), doc, sections, styles)
	if err != nil {
		var svcErr *export.RenderServiceError
		if errors.As(err, &svcErr) {
			s.pdfFallbackResponse(w, doc, sections, styles, err)
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// pdfFallbackResponse reports a render failure together with the print-ready
// HTML so the client can offer the print dialog instead.
func (s *Server) pdfFallbackResponse(w http.ResponseWriter, doc types.Document, sections []types.Section, styles types.StyleSettings, cause error) {
	log.Printf("PDF generation failed, offering print fallback: %v", cause)

	html, err := s.exporter.StaticHTML(doc, sections, styles)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusServiceUnavailable, map[string]any{
		"error":    "Failed to generate PDF",
		"fallback": true,
		"html":     html,
	})
}
