package repository

import (
	"github.com/deppfellow/export-geoconfirmed/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Events *EventsRepository
}

// NewRepositories constructs the repository container from the shared
// BigQuery client on s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Events: NewEventsRepository(s.Warehouse.Client, s.Config.TableID(), s.Logger),
	}
}
