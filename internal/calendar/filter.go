package calendar

import (
	"time"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

// Filters is the transient criteria set applied to the fetched event
// list. Each slice is an OR-set within its field; fields combine with
// AND. AdditionalAdvisors is not a client-side filter at all: it is a
// fetch parameter that widens which advisors' events are retrieved.
type Filters struct {
	Colors             []string
	Categories         []string
	Types              []string
	AdditionalAdvisors []string
	StartDate          *time.Time
	EndDate            *time.Time
}

// HasDateRange reports whether the date filter is active: both bounds
// set and the range not inverted. An inverted range deactivates the
// date filter entirely rather than excluding everything.
func (f Filters) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil && !IsAfter(f.StartDate, f.EndDate)
}

// ApplyFilter returns the events matching the criteria set. The input
// is never mutated and relative order is preserved.
func ApplyFilter(events []models.CalendarEvent, f Filters) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))

	dateActive := f.HasDateRange()

	for _, ev := range events {
		if len(f.Colors) > 0 && !contains(f.Colors, ev.Color) {
			continue
		}
		if len(f.Categories) > 0 && !contains(f.Categories, ev.Category) {
			continue
		}
		if len(f.Types) > 0 && !contains(f.Types, ev.Type) {
			continue
		}
		if dateActive && !IsBetween(ev.Start.Ptr(), f.StartDate, f.EndDate) {
			continue
		}
		out = append(out, ev)
	}

	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
