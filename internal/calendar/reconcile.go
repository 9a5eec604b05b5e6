package calendar

import (
	"context"
	"time"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

// Gesture is the result of a drag-to-move or resize gesture delivered
// by the rendering surface: the new times plus the event's unchanged
// properties carried through the surface's extended props.
type Gesture struct {
	EventID     string
	Title       string
	Start       *time.Time
	End         *time.Time
	AllDay      bool
	Color       string
	Description string
	Category    string
	Type        string
	Client      *models.EventClient
}

// Reconciler translates surface gestures into event updates attributed
// to the viewing advisor. Drop and resize share the same reconciliation
// path; they differ only in which surface callback fires.
//
// Updates are attributed to the viewing advisor's id even when the
// dragged event belongs to another advisor in an aggregated view. That
// matches the observed product behavior; see DESIGN.md before changing
// it.
type Reconciler struct {
	adapter   *Adapter
	advisorID string
}

// NewReconciler creates a reconciler dispatching through the adapter on
// behalf of the viewing advisor.
func NewReconciler(adapter *Adapter, advisorID string) *Reconciler {
	return &Reconciler{adapter: adapter, advisorID: advisorID}
}

// EventDropped handles a drag-to-move gesture.
func (r *Reconciler) EventDropped(ctx context.Context, g Gesture) error {
	return r.apply(ctx, g)
}

// EventResized handles a resize-to-reschedule gesture.
func (r *Reconciler) EventResized(ctx context.Context, g Gesture) error {
	return r.apply(ctx, g)
}

func (r *Reconciler) apply(ctx context.Context, g Gesture) error {
	// A surface can emit an incomplete result mid-gesture; ignore it
	// without touching persistence.
	if g.Start == nil || g.End == nil {
		return nil
	}

	start := models.NewTimestamp(*g.Start)
	end := models.NewTimestamp(*g.End)
	allDay := g.AllDay

	patch := models.EventPatch{
		Title:       &g.Title,
		Description: &g.Description,
		Start:       &start,
		End:         &end,
		AllDay:      &allDay,
		Color:       &g.Color,
		Category:    &g.Category,
		Type:        &g.Type,
		Client:      g.Client,
	}

	return r.adapter.Update(ctx, r.advisorID, g.EventID, patch)
}
