package handler

import (
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/deppfellow/export-geoconfirmed/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Events *EventsHandler // Events serves the export endpoint.
	Health *HealthHandler // Health serves the local readiness endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Events: NewEventsHandler(s, services.Events),
		Health: NewHealthHandler(s, services.Events),
	}
}
