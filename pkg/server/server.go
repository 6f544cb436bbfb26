// Package server exposes the simulation over a JSON HTTP API for the
// presentation layer: the latest snapshot, the bounded chart history, the
// climate table, the mode toggle and a WebSocket stream that pushes a frame
// on every tick.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/towersim/towersim/pkg/controller"
	"github.com/towersim/towersim/pkg/log"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
)

// Server handles the HTTP API for the building simulation.
type Server struct {
	controller *controller.Controller
	streams    *streamHub

	listenAddr string
	httpServer *http.Server
}

// Configured initializes the Server with its dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(c *controller.Controller) *Server {
	srv := &Server{
		controller: c,
		streams:    newStreamHub(),
	}

	// get the port from PORT when running in a container platform
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
	})

	// every tick (and mode change) fans out to connected stream clients
	c.Listen(srv.streams.broadcast)

	return srv
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/snapshot", s.handleSnapshot)
	apiMux.HandleFunc("GET /api/history", s.handleHistory)
	apiMux.HandleFunc("GET /api/environment", s.handleEnvironment)
	apiMux.HandleFunc("GET /api/mode", s.handleGetMode)
	apiMux.HandleFunc("POST /api/mode", s.handleSetMode)
	apiMux.HandleFunc("GET /api/stream", s.handleStream)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiMux)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return gziphandler.GzipHandler(s.securityHeadersMiddleware(mux))
}

func (s *Server) securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME-sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and blocks until the context is canceled or an
// error occurs. It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	// use a channel to capture server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		// Context canceled, shut down gracefully
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		s.streams.closeAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}
