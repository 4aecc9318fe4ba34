package service

import (
	"github.com/deppfellow/export-geoconfirmed/internal/repository"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
)

// Services groups every service the handlers use.
type Services struct {
	Events *EventService
}

// NewServices wires services to their repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Events: NewEventService(s, repos.Events),
	}
}
