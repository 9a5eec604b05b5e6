// Package calendar implements the advisor calendar core: date-range
// predicates, the event filter engine, the client-side repository
// adapter, the view/navigation controller, and the drag/resize
// reconciler.
package calendar

import "time"

// IsAfter reports whether a is strictly after b. A nil on either side
// yields false; the predicate never panics.
func IsAfter(a, b *time.Time) bool {
	if a == nil || b == nil {
		return false
	}
	return a.After(*b)
}

// IsBetween reports whether t falls within [start, end], bounds
// inclusive. Only the single instant t is tested: callers pass an
// event's start time, so an event that begins before the range but
// extends into it does not match.
func IsBetween(t, start, end *time.Time) bool {
	if t == nil || start == nil || end == nil {
		return false
	}
	if t.Before(*start) || t.After(*end) {
		return false
	}
	return true
}
