package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ignite/campaign-chat/internal/config"
)

// Server represents the API server
type Server struct {
	handler http.Handler
	server  *http.Server
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, handlers *Handlers, health *HealthChecker) *Server {
	handler := SetupRoutes(cfg, handlers, health)
	return &Server{
		handler: handler,
		server: &http.Server{
			Handler: handler,
			// Chat replies include up to a few seconds of simulated processing.
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Serve accepts connections on ln until Shutdown is called. A clean
// shutdown returns nil.
func (s *Server) Serve(ln net.Listener) error {
	err := s.server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
