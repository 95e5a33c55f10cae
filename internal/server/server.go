// Package server exposes the todo REST API over HTTP. Routing uses
// gorilla/mux; every mutating handler validates input, checks existence
// where the operation requires it, writes, and re-reads the canonical row
// so responses never depend on driver write metadata.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/mesh-intelligence/todolist/internal/sqlite"
	"github.com/mesh-intelligence/todolist/pkg/types"
)

// Server wraps the HTTP listener and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server listening on cfg.ListenAddr with all routes
// registered.
func New(cfg types.Config, store *sqlite.Store, logger *log.Logger) *Server {
	h := NewHandler(store, logger)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      h.Router(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is canceled, then drains in-flight requests before
// returning.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Router returns the fully wired mux router for the API.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(h.logger))

	r.Methods(http.MethodGet).Path("/api/todos").HandlerFunc(h.handleList)
	r.Methods(http.MethodPost).Path("/api/todos").HandlerFunc(h.handleCreate)
	r.Methods(http.MethodPut).Path("/api/todos/{id}").HandlerFunc(h.handleUpdate)
	r.Methods(http.MethodPost).Path("/api/todos/{id}/toggle").HandlerFunc(h.handleToggle)
	r.Methods(http.MethodDelete).Path("/api/todos/{id}").HandlerFunc(h.handleDelete)

	return r
}
