package router

import (
	"github.com/deppfellow/export-geoconfirmed/internal/handler"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/labstack/echo/v4"
)

// RegisterSystemRoutes registers endpoints that are not part of the export.
// Static routes win over the catch-all, so these never reach ExportEvents.
//
// Routes:
//  1. Health endpoint (dry-runs the export query)
//  2. Prometheus scrape endpoint
func RegisterSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
