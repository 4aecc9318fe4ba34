package middleware

import (
	"github.com/deppfellow/export-geoconfirmed/internal/server"
)

// Middlewares is a lightweight container that groups all middleware components
// used by the router. Build once, reuse everywhere.
type Middlewares struct {
	// Global holds request logging, recovery and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Metrics records request counts and latencies.
	Metrics *MetricsMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Metrics:         NewMetricsMiddleware(s),
	}
}
