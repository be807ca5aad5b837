package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dgallion1/willclause/internal/parser"
	"github.com/dgallion1/willclause/internal/will"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateWill(w http.ResponseWriter, r *http.Request) {
	f, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	created, err := s.wills.Create(r.Context(), f)
	if err != nil {
		s.log.Error("create will", "error", err)
		jsonError(w, "failed to store will", http.StatusInternalServerError)
		return
	}
	s.log.Info("will created", "id", created.ID, "size", created.Size)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateWill(w http.ResponseWriter, r *http.Request) {
	id, ok := willID(w, r)
	if !ok {
		return
	}
	f, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	updated, err := s.wills.Update(r.Context(), id, f)
	if errors.Is(err, will.ErrNotFound) {
		jsonError(w, "will not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("update will", "id", id, "error", err)
		jsonError(w, "failed to store will", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleGetWill streams the stored document back with its original mime type.
func (s *Server) handleGetWill(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadWill(w, r)
	if !ok {
		return
	}
	etag := `"` + doc.ContentHash + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", doc.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.Header().Set("ETag", etag)
	w.Write(doc.Data)
}

func (s *Server) handleWillOutline(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadWill(w, r)
	if !ok {
		return
	}
	if !parser.IsDOCX(doc.MimeType, "") {
		jsonError(w, fmt.Sprintf("outline unavailable for %s", doc.MimeType), http.StatusUnprocessableEntity)
		return
	}
	tree, err := parser.Outline(doc.Data, fmt.Sprintf("will-%d", doc.ID))
	if err != nil {
		s.log.Warn("outline failed", "id", doc.ID, "error", err)
		jsonError(w, "failed to read document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) loadWill(w http.ResponseWriter, r *http.Request) (*will.Will, bool) {
	id, ok := willID(w, r)
	if !ok {
		return nil, false
	}
	doc, err := s.wills.Get(r.Context(), id)
	if errors.Is(err, will.ErrNotFound) {
		jsonError(w, "will not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.log.Error("get will", "id", id, "error", err)
		jsonError(w, "failed to load will", http.StatusInternalServerError)
		return nil, false
	}
	return doc, true
}

// readUpload reads the multipart "file" field. Uploads that claim to be
// DOCX must open as one.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (will.File, bool) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return will.File{}, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return will.File{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return will.File{}, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return will.File{}, false
	}
	if len(data) == 0 {
		jsonError(w, "file is empty", http.StatusBadRequest)
		return will.File{}, false
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	if parser.IsDOCX(mimeType, header.Filename) {
		if err := parser.Validate(data); err != nil {
			jsonError(w, "invalid docx: "+err.Error(), http.StatusBadRequest)
			return will.File{}, false
		}
		mimeType = parser.DOCXMimeType
	}
	return will.File{MimeType: mimeType, Data: data}, true
}

func willID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		jsonError(w, "invalid will id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
