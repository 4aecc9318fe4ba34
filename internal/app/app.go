// Package app assembles the dependency graph shared by the Cloud Function
// entry point and the local server:
//
//	config -> logger -> server -> repositories -> services -> handlers -> router
package app

import (
	"context"

	"github.com/deppfellow/export-geoconfirmed/internal/config"
	"github.com/deppfellow/export-geoconfirmed/internal/handler"
	"github.com/deppfellow/export-geoconfirmed/internal/logger"
	"github.com/deppfellow/export-geoconfirmed/internal/repository"
	"github.com/deppfellow/export-geoconfirmed/internal/router"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/deppfellow/export-geoconfirmed/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// App is a fully wired process.
type App struct {
	Server   *server.Server
	Handlers *handler.Handlers
	Router   *echo.Echo
}

// New loads config and wires every layer. ctx is kept by the BigQuery
// client for its lifetime, so it must not be a request context.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	log := logger.New(cfg)

	s, err := server.New(ctx, cfg, &log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize server")
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)

	return &App{
		Server:   s,
		Handlers: handlers,
		Router:   router.NewRouter(s, handlers),
	}, nil
}
