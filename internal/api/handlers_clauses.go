package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgallion1/willclause/internal/clauses"
)

// handleListClauses returns every extractable clause. Clause packages that
// fail to extract are reported under "skipped" instead of failing the request.
func (s *Server) handleListClauses(w http.ResponseWriter, r *http.Request) {
	listing := s.clauses.ListClauses(r.Context())
	writeJSON(w, http.StatusOK, listing)
}

type bookmarkNameRequest struct {
	Existing []string `json:"existing"`
	Title    string   `json:"title"`
}

func (s *Server) handleBookmarkName(w http.ResponseWriter, r *http.Request) {
	var req bookmarkNameRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		jsonError(w, "title is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name": clauses.UniqueBookmarkName(req.Existing, title),
	})
}
