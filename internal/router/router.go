// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their handlers. The
// export answers on every path and method, the same way a deployed
// function does; system routes are opt-in for the local server.
package router

import (
	"github.com/deppfellow/export-geoconfirmed/internal/handler"
	"github.com/deppfellow/export-geoconfirmed/internal/middleware"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance that serves the export.
//
// Middleware order matters:
//   - RequestID first, so every log line carries the id.
//   - ContextEnhancer next, so the access log, metrics and handlers share a logger.
//   - Recover innermost, so a panic is still counted and logged as a 500.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Observe(),
		middlewares.Global.Recover(),
	)

	router.Any("/*", h.Events.ExportEvents())

	return router
}
