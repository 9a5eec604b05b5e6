// Package models contains the domain models for the application.
package models

import (
	"fmt"
	"time"
)

// Event status constants. Deletion is a soft delete: events flip to
// inactive and the row is retained.
const (
	EventStatusActive   = "active"
	EventStatusInactive = "inactive"
)

// Display colors offered by the event form.
var EventColors = []string{
	"#00AB55", "#1890FF", "#54D62C", "#FFC107", "#FF4842", "#04297A", "#7A0C2E",
}

// EventClient is a denormalized snapshot of the client a meeting is
// booked with. It is copied into the event at save time and is not a
// live join; a later rename on the client record does not update it.
type EventClient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CalendarEvent represents a scheduled item on an advisor's calendar.
type CalendarEvent struct {
	ID          string       `json:"id"`
	AdvisorID   string       `json:"advisorId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Start       Timestamp    `json:"start"`
	End         Timestamp    `json:"end"`
	AllDay      bool         `json:"allDay"`
	Color       string       `json:"color,omitempty"`
	Category    string       `json:"category,omitempty"`
	Type        string       `json:"type,omitempty"`
	Client      *EventClient `json:"client,omitempty"`
	Status      string       `json:"status,omitempty"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`
}

// Validate checks the invariants enforced before persistence.
func (e *CalendarEvent) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return fmt.Errorf("start and end are required")
	}
	if e.End.Before(e.Start.Time) {
		return fmt.Errorf("end must not be before start")
	}
	return nil
}

// IsInactive reports whether the event has been soft-deleted.
func (e *CalendarEvent) IsInactive() bool {
	return e.Status == EventStatusInactive
}

// EventPatch is a partial update to an event. Nil fields are left
// unchanged. A Status of "inactive" turns the update into a soft
// delete.
type EventPatch struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Start       *Timestamp   `json:"start,omitempty"`
	End         *Timestamp   `json:"end,omitempty"`
	AllDay      *bool        `json:"allDay,omitempty"`
	Color       *string      `json:"color,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Type        *string      `json:"type,omitempty"`
	Client      *EventClient `json:"client,omitempty"`
	Status      *string      `json:"status,omitempty"`
}

// Apply merges the patch into a copy of the event and returns it.
func (p EventPatch) Apply(e CalendarEvent) CalendarEvent {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Client != nil {
		e.Client = p.Client
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}

// IsDelete reports whether the patch is the soft-delete status flip.
func (p EventPatch) IsDelete() bool {
	return p.Status != nil && *p.Status == EventStatusInactive
}
