package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// decodeEntry decodes a request body into the concrete entry type of the
// collection. Unknown collections are rejected before any decoding happens.
func decodeEntry(c types.Collection, body io.Reader) (types.Entry, error) {
	var e types.Entry
	switch c {
	case types.CollectionEducation:
		e = &types.Education{}
	case types.CollectionEmployment:
		e = &types.Employment{}
	case types.CollectionSkills:
		e = &types.Skill{}
	case types.CollectionLanguages:
		e = &types.Language{}
	case types.CollectionCourses:
		e = &types.Course{}
	case types.CollectionInternships:
		e = &types.Internship{}
	case types.CollectionExtracurricularActivities:
		e = &types.ExtracurricularActivity{}
	case types.CollectionReferences:
		e = &types.Reference{}
	case types.CollectionQualities:
		e = &types.Quality{}
	case types.CollectionCertificates:
		e = &types.Certificate{}
	case types.CollectionAchievements:
		e = &types.Achievement{}
	default:
		return nil, &store.UnknownCollectionError{Name: string(c)}
	}

	if err := json.NewDecoder(body).Decode(e); err != nil {
		return nil, fmt.Errorf("invalid entry body: %w", err)
	}
	return e, nil
}

// handleAddEntry appends a new entry to a collection and returns its id
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	collection := types.Collection(r.PathValue("collection"))

	entry, err := decodeEntry(collection, r.Body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.store.AddEntry(collection, entry)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// handleUpdateEntry replaces an entry's content, keeping its identity
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	collection := types.Collection(r.PathValue("collection"))
	id := r.PathValue("id")

	entry, err := decodeEntry(collection, r.Body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.UpdateEntry(collection, id, entry); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleDeleteEntry removes an entry. Deleting an entry that is already gone
// succeeds.
func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	collection := types.Collection(r.PathValue("collection"))
	id := r.PathValue("id")

	if err := s.store.DeleteEntry(collection, id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ReorderEntriesRequest names the new order of a collection by entry id
type ReorderEntriesRequest struct {
	IDs []string `json:"ids"`
}

// handleReorderEntries rearranges a collection. The ids must be a permutation
// of the current entries.
func (s *Server) handleReorderEntries(w http.ResponseWriter, r *http.Request) {
	collection := types.Collection(r.PathValue("collection"))

	var req ReorderEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.ReorderEntries(collection, req.IDs); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reordered"})
}

// HobbyRequest carries a hobby value
type HobbyRequest struct {
	Hobby string `json:"hobby"`
}

// handleAddHobby appends a hobby
func (s *Server) handleAddHobby(w http.ResponseWriter, r *http.Request) {
	var req HobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.AddHobby(req.Hobby)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"status": "added"})
}

// handleUpdateHobby replaces the hobby at an index
func (s *Server) handleUpdateHobby(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid hobby index")
		return
	}

	var req HobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.UpdateHobby(index, req.Hobby); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleDeleteHobby removes the hobby at an index
func (s *Server) handleDeleteHobby(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid hobby index")
		return
	}

	if err := s.store.DeleteHobby(index); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
