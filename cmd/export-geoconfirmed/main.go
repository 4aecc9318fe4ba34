// Command export-geoconfirmed runs the export on a plain HTTP server for
// local development, with /status and /metrics next to it.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/export-geoconfirmed/internal/app"
	"github.com/deppfellow/export-geoconfirmed/internal/router"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	a, err := app.New(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize app")
	}

	s := a.Server
	router.RegisterSystemRoutes(a.Router, s, a.Handlers)
	s.SetupHTTPServer(a.Router)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	s.Logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.Logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	s.Logger.Info().Msg("server exited properly")
}
