// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - the root logger
//   - the BigQuery client
//   - Prometheus instruments
//   - the local http.Server (Cloud Functions brings its own)
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/export-geoconfirmed/internal/config"
	"github.com/deppfellow/export-geoconfirmed/internal/metrics"
	"github.com/deppfellow/export-geoconfirmed/internal/warehouse"
	"github.com/rs/zerolog"
)

// IdleTimeout bounds keep-alive connections on the local server.
const IdleTimeout = 60 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. Every field except httpServer is
// safe to share between concurrent requests.
type Server struct {
	Config    *config.Config
	Logger    *zerolog.Logger
	Warehouse *warehouse.Warehouse
	Metrics   *metrics.Metrics

	// httpServer is only set when running as a standalone binary.
	httpServer *http.Server
}

// New constructs a Server and initializes the BigQuery client and metrics.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	wh, err := warehouse.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize warehouse: %w", err)
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Warehouse: wh,
		Metrics:   metrics.New(),
	}, nil
}

// SetupHTTPServer configures the local net/http server around handler.
//
// Read and write timeouts follow the function TIMEOUT so local runs fail
// the same way a deployed invocation would.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	timeout := time.Duration(s.Config.Timeout) * time.Second

	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Port,
		Handler:      handler,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  IdleTimeout,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Port).
		Str("env", s.Config.Env).
		Str("table", s.Config.TableID()).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server (finishing in-flight requests until ctx
// expires) and closes the BigQuery client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Warehouse != nil {
		if err := s.Warehouse.Close(); err != nil {
			return fmt.Errorf("failed to close bigquery client: %w", err)
		}
	}

	return nil
}
