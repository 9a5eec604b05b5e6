package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validEvent() CalendarEvent {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return CalendarEvent{
		ID:    "ev-1",
		Title: "Quarterly review",
		Start: NewTimestamp(start),
		End:   NewTimestamp(start.Add(time.Hour)),
	}
}

func TestCalendarEvent_Validate(t *testing.T) {
	valid := validEvent()
	assert.NoError(t, valid.Validate())

	noTitle := validEvent()
	noTitle.Title = ""
	assert.Error(t, noTitle.Validate())

	noTimes := validEvent()
	noTimes.Start = Timestamp{}
	assert.Error(t, noTimes.Validate())

	inverted := validEvent()
	inverted.End = NewTimestamp(inverted.Start.Add(-time.Minute))
	assert.Error(t, inverted.Validate(), "end before start is rejected before persistence")

	zeroLength := validEvent()
	zeroLength.End = zeroLength.Start
	assert.NoError(t, zeroLength.Validate(), "end equal to start is allowed")
}

func TestEventPatch_Apply(t *testing.T) {
	ev := validEvent()
	ev.Category = "meeting"

	title := "Renamed"
	allDay := true
	patch := EventPatch{Title: &title, AllDay: &allDay}

	merged := patch.Apply(ev)

	assert.Equal(t, "Renamed", merged.Title)
	assert.True(t, merged.AllDay)
	assert.Equal(t, "meeting", merged.Category, "nil fields left unchanged")
	assert.Equal(t, "Quarterly review", ev.Title, "original not mutated")
}

func TestEventPatch_IsDelete(t *testing.T) {
	inactive := EventStatusInactive
	active := EventStatusActive

	assert.True(t, EventPatch{Status: &inactive}.IsDelete())
	assert.False(t, EventPatch{Status: &active}.IsDelete())
	assert.False(t, EventPatch{}.IsDelete())
}
