// Package ics renders advisor calendars as iCalendar feeds.
package ics

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

const prodID = "-//advisor-calendar//backend//EN"

// Feed serializes an advisor's events as a VCALENDAR document. All-day
// events use date-valued DTSTART/DTEND; timed events use UTC instants.
func Feed(advisorID string, events []models.CalendarEvent) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetXWRCalName(fmt.Sprintf("Advisor %s calendar", advisorID))

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(ev.UpdatedAt)
		ve.SetSummary(ev.Title)

		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}

		if ev.AllDay {
			ve.SetAllDayStartAt(ev.Start.Time)
			if !ev.End.IsZero() {
				ve.SetAllDayEndAt(ev.End.Time)
			}
		} else {
			ve.SetStartAt(ev.Start.UTC())
			if !ev.End.IsZero() {
				ve.SetEndAt(ev.End.UTC())
			}
		}

		if ev.Client != nil && ev.Client.Email != "" {
			ve.AddAttendee(ev.Client.Email, ical.WithCN(ev.Client.Name))
		}
	}

	return cal.Serialize()
}
