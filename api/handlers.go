package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// handleSearch answers GET /api/search?q=<text>. A missing or blank query is
// the caller's error; everything past that point always produces a 200.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Query parameter 'q' is required.",
		})
		return
	}

	resp := s.engine.Search(r.Context(), query)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("encoding response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
