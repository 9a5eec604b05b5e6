package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

func TestReconciler_DropPersistsNewTimes(t *testing.T) {
	svc := &fakeService{listResult: seedEvents()}
	a := NewAdapter(svc, nil)
	require.NoError(t, a.Fetch(context.Background(), "adv-1"))

	var got models.EventPatch
	var gotAdvisor string
	svc.onUpdate = func(advisorID, eventID string, patch models.EventPatch) {
		gotAdvisor = advisorID
		got = patch
	}

	r := NewReconciler(a, "adv-1")
	start := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	err := r.EventDropped(context.Background(), Gesture{
		EventID:  "ev-1",
		Title:    "Quarterly review",
		Start:    &start,
		End:      &end,
		Color:    "#FF4842",
		Category: "meeting",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, svc.updateCalls)
	assert.Equal(t, "adv-1", gotAdvisor, "update attributed to the viewing advisor")
	require.NotNil(t, got.Start)
	assert.True(t, got.Start.Equal(start))
	require.NotNil(t, got.Category)
	assert.Equal(t, "meeting", *got.Category, "unchanged properties carried through")
}

func TestReconciler_ResizeSharesDropPath(t *testing.T) {
	svc := &fakeService{listResult: seedEvents()}
	a := NewAdapter(svc, nil)
	require.NoError(t, a.Fetch(context.Background(), "adv-1"))

	r := NewReconciler(a, "adv-1")
	start := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	err := r.EventResized(context.Background(), Gesture{
		EventID: "ev-1",
		Title:   "Quarterly review",
		Start:   &start,
		End:     &end,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, svc.updateCalls)
}

func TestReconciler_IncompleteGestureIsIgnored(t *testing.T) {
	svc := &fakeService{listResult: seedEvents()}
	a := NewAdapter(svc, nil)
	require.NoError(t, a.Fetch(context.Background(), "adv-1"))

	r := NewReconciler(a, "adv-1")
	start := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.EventDropped(context.Background(), Gesture{EventID: "ev-1", Start: &start}))
	require.NoError(t, r.EventDropped(context.Background(), Gesture{EventID: "ev-1", End: &start}))
	require.NoError(t, r.EventResized(context.Background(), Gesture{EventID: "ev-1"}))

	assert.Zero(t, svc.updateCalls, "persistence is never invoked for incomplete gestures")
	assert.Equal(t, "Quarterly review", a.Events()[0].Title, "local state untouched")
}
