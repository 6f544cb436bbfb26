package server

import "net/http"

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	// Oldest first, at most the window capacity. Always an array, never null.
	samples := s.controller.History()
	writeJSON(w, samples)
}
