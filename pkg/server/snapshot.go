package server

import (
	"net/http"

	"github.com/towersim/towersim/pkg/sim"
)

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.controller.Snapshot())
}

func (s *Server) handleEnvironment(w http.ResponseWriter, r *http.Request) {
	// The table is immutable so the presentation layer can cache it.
	w.Header().Set("Cache-Control", "public, max-age=86400")
	writeJSON(w, sim.ClimateDay())
}
