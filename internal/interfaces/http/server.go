package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/turtacn/LegalAid-Intelligence/internal/config"
	"github.com/turtacn/LegalAid-Intelligence/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the service's lifecycle conventions.
type Server struct {
	srv    *http.Server
	logger logging.Logger
}

// NewServer builds a Server from the server config and a fully-routed handler.
func NewServer(cfg *config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		logger: logger.Named("server"),
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.  The caller
// bounds the wait through ctx.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
