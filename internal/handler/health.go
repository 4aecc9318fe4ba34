package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/export-geoconfirmed/internal/bqerr"
	"github.com/deppfellow/export-geoconfirmed/internal/middleware"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/deppfellow/export-geoconfirmed/internal/service"
	"github.com/labstack/echo/v4"
)

// CheckTimeout bounds the warehouse dry run of a single health check.
const CheckTimeout = 5 * time.Second

// HealthHandler exposes a "system" endpoint that monitors can use to verify
// the process is up and the export query is runnable.
type HealthHandler struct {
	Handler
	events *service.EventService
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server, events *service.EventService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		events:  events,
	}
}

// CheckHealth returns system health status and dependency checks.
//
// Response includes:
//   - overall status (healthy/unhealthy)
//   - timestamp (UTC)
//   - environment and table (from config)
//   - checks map (bigquery)
//
// It returns 200 OK when the dry run passes, 503 Service Unavailable otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Env,
		"table":       h.server.Config.TableID(),
		"checks":      checks,
	}

	// ---------------- BigQuery dry run ---------------------------------------
	ctx, cancel := context.WithTimeout(c.Request().Context(), CheckTimeout)
	defer cancel()

	bqStart := time.Now()
	if err := h.events.Check(ctx); err != nil {
		checks["bigquery"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(bqStart).String(),
			"category":      string(bqerr.ErrCode(err)),
		}
		response["status"] = "unhealthy"

		// The cause stays in the logs, same as the export endpoint.
		logger.Error().
			Err(err).
			Dur("response_time", time.Since(bqStart)).
			Msg("bigquery health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["bigquery"] = map[string]interface{}{
		"status":        "healthy",
		"response_time": time.Since(bqStart).String(),
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
