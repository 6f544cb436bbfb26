package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/towersim/towersim/pkg/log"
	"github.com/towersim/towersim/pkg/types"
)

type modeResponse struct {
	Mode types.OperatingMode `json:"mode"`
}

func (s *Server) handleGetMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, modeResponse{Mode: s.controller.Mode()})
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	mode, err := types.ParseOperatingMode(req.Mode)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.controller.SetMode(mode); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to set mode", slog.String("mode", req.Mode), slog.Any("error", err))
		writeJSONError(w, "failed to set mode", http.StatusInternalServerError)
		return
	}

	log.Ctx(ctx).InfoContext(ctx, "operating mode changed", slog.String("mode", string(mode)))
	writeJSON(w, modeResponse{Mode: mode})
}
