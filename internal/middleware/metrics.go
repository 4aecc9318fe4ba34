package middleware

import (
	"time"

	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records every request on the server's Prometheus instruments.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe counts the request by final status and records its latency.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			m.server.Metrics.ObserveRequest(statusFromError(c, err), time.Since(start))

			return err
		}
	}
}
