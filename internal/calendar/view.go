package calendar

import (
	"time"
)

// View is one of the four calendar display granularities.
type View string

const (
	ViewMonth  View = "month"
	ViewWeek   View = "week"
	ViewDay    View = "day"
	ViewAgenda View = "agenda"
)

// Viewports narrower than this default to the agenda list instead of
// the month grid.
const narrowViewportWidth = 960

// Range is a pending-selection scratch value created when the user
// drag-selects an empty slot. It feeds the create-event form and is
// discarded when the form closes.
type Range struct {
	Start time.Time
	End   time.Time
}

// Surface is the external rendering widget's imperative handle. The
// controller drives navigation through it and mirrors the resulting
// state; it never does its own calendar math.
type Surface interface {
	Today()
	Prev()
	Next()
	ChangeView(v View)
	Date() time.Time
	Unselect()
}

// Controller owns the calendar's view and navigation state: the anchor
// date, the active view mode, and the selected event or pending
// creation range. All state changes go through its methods.
type Controller struct {
	surface Surface

	date            time.Time
	view            View
	formOpen        bool
	selectedEventID string
	selectedRange   *Range
}

// NewController creates a controller bound to a rendering surface,
// mirroring the surface's current date.
func NewController(surface Surface) *Controller {
	return &Controller{
		surface: surface,
		date:    surface.Date(),
		view:    ViewMonth,
	}
}

// InitialView picks the responsive default view for the given viewport
// width: month when wide, agenda when narrow. Called once on mount.
func (c *Controller) InitialView(width int) {
	if width < narrowViewportWidth {
		c.ChangeView(ViewAgenda)
		return
	}
	c.ChangeView(ViewMonth)
}

// Today navigates the surface to the current date and mirrors the
// resulting anchor date.
func (c *Controller) Today() {
	c.surface.Today()
	c.date = c.surface.Date()
}

// Prev navigates one step back and mirrors the anchor date.
func (c *Controller) Prev() {
	c.surface.Prev()
	c.date = c.surface.Date()
}

// Next navigates one step forward and mirrors the anchor date.
func (c *Controller) Next() {
	c.surface.Next()
	c.date = c.surface.Date()
}

// ChangeView switches the surface's display mode and mirrors it.
func (c *Controller) ChangeView(v View) {
	c.surface.ChangeView(v)
	c.view = v
}

// SelectRange handles an empty-slot drag selection: the surface's
// transient highlight is cleared and the form opens in create mode with
// the selected range.
func (c *Controller) SelectRange(r Range) {
	c.surface.Unselect()
	c.formOpen = true
	c.selectedRange = &r
	c.selectedEventID = ""
}

// ClickEvent opens the form in edit mode for the clicked event.
func (c *Controller) ClickEvent(eventID string) {
	c.formOpen = true
	c.selectedEventID = eventID
}

// CloseForm resets the form, selection, and pending range to a clean
// slate regardless of how the form was opened.
func (c *Controller) CloseForm() {
	c.formOpen = false
	c.selectedRange = nil
	c.selectedEventID = ""
}

// Date returns the current anchor date.
func (c *Controller) Date() time.Time { return c.date }

// View returns the active view mode.
func (c *Controller) View() View { return c.view }

// FormOpen reports whether the create/edit form is open.
func (c *Controller) FormOpen() bool { return c.formOpen }

// SelectedEventID returns the event open for editing, or "".
func (c *Controller) SelectedEventID() string { return c.selectedEventID }

// SelectedRange returns the pending creation range, or nil.
func (c *Controller) SelectedRange() *Range { return c.selectedRange }
