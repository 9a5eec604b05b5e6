package calendar

import (
	"context"
	"fmt"
	"sync"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

// Service is the remote persistence boundary the adapter talks to.
// The production implementation is the HTTP client in client.go; tests
// inject fakes.
type Service interface {
	ListEvents(ctx context.Context, advisorID string, additionalAdvisors []string) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, advisorID string, ev models.CalendarEvent) (models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, advisorID, eventID string, patch models.EventPatch) (models.CalendarEvent, error)
}

// Notifier receives short user-facing messages for successful and
// failed mutations. Message text is a presentation concern; the adapter
// only guarantees the call.
type Notifier interface {
	Notify(level, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(level, message string) {}

// Adapter maintains the local cache of calendar events and funnels all
// mutations to the remote service. Updates are applied optimistically:
// the local list is patched before the network call so drag and resize
// feel instantaneous, and a failed persist leaves the patch in place
// until the next successful fetch.
type Adapter struct {
	svc      Service
	notifier Notifier

	mu      sync.Mutex
	loading bool
	err     error
	events  []models.CalendarEvent
	closed  bool
}

// NewAdapter creates an adapter over the given service. A nil notifier
// is replaced with NopNotifier.
func NewAdapter(svc Service, notifier Notifier) *Adapter {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Adapter{svc: svc, notifier: notifier}
}

// Events returns a copy of the cached event list.
func (a *Adapter) Events() []models.CalendarEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.CalendarEvent, len(a.events))
	copy(out, a.events)
	return out
}

// Loading reports whether a remote call is in flight.
func (a *Adapter) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Err returns the error recorded by the last failed operation, if any.
func (a *Adapter) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Close marks the adapter as no longer live. Results from calls still
// in flight are discarded instead of being applied to the cache.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}

// Fetch loads the events for the viewing advisor plus any additional
// advisor ids and replaces the local list. The previous list is kept on
// failure; there is no automatic retry.
func (a *Adapter) Fetch(ctx context.Context, advisorID string, additionalAdvisors ...string) error {
	a.setLoading(true)

	events, err := a.svc.ListEvents(ctx, advisorID, additionalAdvisors)

	a.mu.Lock()
	a.loading = false
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	if err != nil {
		a.err = err
		a.mu.Unlock()
		a.notifier.Notify("error", "Fetch failed")
		return fmt.Errorf("fetching events: %w", err)
	}
	a.err = nil
	a.events = events
	a.mu.Unlock()
	return nil
}

// Create persists a new event and appends the server-confirmed payload
// to the local list. Not optimistic: the event only appears once the
// remote accepted it, so a failed save keeps the form open with its
// error.
func (a *Adapter) Create(ctx context.Context, advisorID string, ev models.CalendarEvent) error {
	a.setLoading(true)

	created, err := a.svc.CreateEvent(ctx, advisorID, ev)

	a.mu.Lock()
	a.loading = false
	if err != nil {
		a.err = err
		a.mu.Unlock()
		a.notifier.Notify("error", "Create failed")
		return fmt.Errorf("creating event: %w", err)
	}
	a.err = nil
	if !a.closed {
		a.events = append(a.events, created)
	}
	a.mu.Unlock()

	a.notifier.Notify("success", "Create success")
	return nil
}

// Update patches the local list immediately, then persists. On success
// the locally patched entry is replaced with the server-confirmed
// payload; on failure the local patch stays in place and local and
// remote state diverge until the next fetch.
func (a *Adapter) Update(ctx context.Context, advisorID, eventID string, patch models.EventPatch) error {
	a.mu.Lock()
	for i := range a.events {
		if a.events[i].ID == eventID {
			a.events[i] = patch.Apply(a.events[i])
			break
		}
	}
	a.mu.Unlock()

	updated, err := a.svc.UpdateEvent(ctx, advisorID, eventID, patch)

	a.mu.Lock()
	if err != nil {
		a.err = err
		a.mu.Unlock()
		a.notifier.Notify("error", "Update failed")
		return fmt.Errorf("updating event: %w", err)
	}
	a.err = nil
	if !a.closed {
		for i := range a.events {
			if a.events[i].ID == eventID {
				a.events[i] = updated
				break
			}
		}
	}
	a.mu.Unlock()

	a.notifier.Notify("success", "Update success")
	return nil
}

// Delete soft-deletes an event by persisting a status flip to inactive,
// then removes it from the local list. Whether the remote retains the
// inactive row is its own concern.
func (a *Adapter) Delete(ctx context.Context, advisorID, eventID string) error {
	a.setLoading(true)

	status := models.EventStatusInactive
	_, err := a.svc.UpdateEvent(ctx, advisorID, eventID, models.EventPatch{Status: &status})

	a.mu.Lock()
	a.loading = false
	if err != nil {
		a.err = err
		a.mu.Unlock()
		a.notifier.Notify("error", "Delete failed")
		return fmt.Errorf("deleting event: %w", err)
	}
	a.err = nil
	if !a.closed {
		kept := a.events[:0:0]
		for _, ev := range a.events {
			if ev.ID != eventID {
				kept = append(kept, ev)
			}
		}
		a.events = kept
	}
	a.mu.Unlock()

	a.notifier.Notify("success", "Delete success")
	return nil
}

func (a *Adapter) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}
