package handler

import (
	"net/http"

	"github.com/deppfellow/export-geoconfirmed/internal/middleware"
	"github.com/deppfellow/export-geoconfirmed/internal/model"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/deppfellow/export-geoconfirmed/internal/service"
	"github.com/deppfellow/export-geoconfirmed/internal/validation"
	"github.com/labstack/echo/v4"
)

// EventsHandler serves the GeoConfirmed export.
type EventsHandler struct {
	Handler
	events *service.EventService
}

func NewEventsHandler(s *server.Server, events *service.EventService) *EventsHandler {
	return &EventsHandler{
		Handler: NewHandler(s),
		events:  events,
	}
}

// ExportEvents answers `?hours=N` with the events ingested in the last N
// hours as a JSON array, newest first.
func (h *EventsHandler) ExportEvents() echo.HandlerFunc {
	return Handle(h.Handler, h.exportEvents, http.StatusOK, func() *validation.ExportEventsRequest {
		return &validation.ExportEventsRequest{}
	})
}

func (h *EventsHandler) exportEvents(c echo.Context, req *validation.ExportEventsRequest) ([]model.Event, error) {
	hours := req.LookbackHours()

	events, err := h.events.Export(c.Request().Context(), hours)
	if err != nil {
		return nil, err
	}

	h.server.Metrics.ObserveEvents(len(events))

	middleware.GetLogger(c).Info().
		Int("hours", hours).
		Int("count", len(events)).
		Msgf("Returning %d events for last %d hours", len(events), hours)

	return events, nil
}
