package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/akarpov/feedpulse/internal/core/domain"
)

func (s *Server) handleTopUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)

		return
	}

	users, err := s.app.TopUsers(r.Context())
	if err != nil {
		writeFetchError(w, err)

		return
	}

	writeJSON(w, users)
}

func (s *Server) handleTrendingPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)

		return
	}

	posts, err := s.app.TrendingPosts(r.Context())
	if err != nil {
		writeFetchError(w, err)

		return
	}

	writeJSON(w, posts)
}

func (s *Server) handleAllPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)

		return
	}

	posts, err := s.app.FetchAllPosts(r.Context())
	if err != nil {
		writeFetchError(w, err)

		return
	}

	if posts == nil {
		posts = []*domain.Post{}
	}

	writeJSON(w, posts)
}

// writeFetchError maps upstream fetch failures to 502 and everything else
// to 500. The caller decides what to do with a failed refresh; the server
// only reports it.
func writeFetchError(w http.ResponseWriter, err error) {
	log.Printf("Failed to serve view: %v", err)

	if errors.Is(err, domain.ErrFetchFailed) {
		http.Error(w, "Upstream fetch failed", http.StatusBadGateway)

		return
	}

	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
