// Package servicetest provides an in-memory EventLister for tests.
package servicetest

import (
	"context"
	"sync"

	"github.com/deppfellow/export-geoconfirmed/internal/model"
)

// EventLister returns Events (or Err) and records every requested window.
type EventLister struct {
	Events   []model.Event
	Err      error
	DryErr   error
	PanicMsg string

	mu    sync.Mutex
	calls []int
}

func (f *EventLister) ListRecent(_ context.Context, hours int) ([]model.Event, error) {
	f.mu.Lock()
	f.calls = append(f.calls, hours)
	f.mu.Unlock()

	if f.PanicMsg != "" {
		panic(f.PanicMsg)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Events, nil
}

func (f *EventLister) DryRun(context.Context) error {
	return f.DryErr
}

// Calls returns the hours value of every ListRecent call so far.
func (f *EventLister) Calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.calls...)
}
