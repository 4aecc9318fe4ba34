package service

import (
	"context"

	"github.com/deppfellow/export-geoconfirmed/internal/model"
	"github.com/deppfellow/export-geoconfirmed/internal/server"
	"github.com/pkg/errors"
)

// EventLister is the query collaborator behind the export.
// *repository.EventsRepository satisfies it; tests substitute a fake.
type EventLister interface {
	ListRecent(ctx context.Context, hours int) ([]model.Event, error)
	DryRun(ctx context.Context) error
}

type EventService struct {
	server *server.Server
	events EventLister
}

func NewEventService(s *server.Server, events EventLister) *EventService {
	return &EventService{
		server: s,
		events: events,
	}
}

// Export returns the events of the last hours hours, newest first.
// The slice is never nil, so it always serializes as a JSON array.
func (svc *EventService) Export(ctx context.Context, hours int) ([]model.Event, error) {
	events, err := svc.events.ListRecent(ctx, hours)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch events for last %d hours", hours)
	}

	if events == nil {
		events = []model.Event{}
	}

	svc.server.Logger.Debug().
		Int("hours", hours).
		Int("count", len(events)).
		Msgf("Fetched %d GeoConfirmed events from last %d hours", len(events), hours)

	return events, nil
}

// Check verifies the export query can run, without reading data.
func (svc *EventService) Check(ctx context.Context) error {
	return svc.events.DryRun(ctx)
}
