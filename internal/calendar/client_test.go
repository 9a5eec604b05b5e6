package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

func TestClient_ListEvents_BuildsAdvisorURL(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("additionalAdvisors")
		json.NewEncoder(w).Encode(seedEvents())
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	events, err := c.ListEvents(context.Background(), "adv-1", []string{"adv-2", "adv-3"})

	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "/api/advisors/adv-1/calendar-events", gotPath)
	assert.Equal(t, "adv-2,adv-3", gotQuery)
}

func TestClient_CreateEvent_PostsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var ev models.CalendarEvent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		ev.ID = "created-1"

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ev)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	created, err := c.CreateEvent(context.Background(), "adv-1", models.CalendarEvent{
		Title: "Intro meeting",
		Start: models.NewTimestamp(start),
		End:   models.NewTimestamp(start.Add(time.Hour)),
	})

	require.NoError(t, err)
	assert.Equal(t, "created-1", created.ID)
	assert.Equal(t, "Intro meeting", created.Title)
}

func TestClient_UpdateEvent_PutsPatch(t *testing.T) {
	var gotPatch models.EventPatch
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/advisors/adv-1/calendar-events/ev-9", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
		json.NewEncoder(w).Encode(models.CalendarEvent{ID: "ev-9", Title: "Renamed"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	title := "Renamed"
	updated, err := c.UpdateEvent(context.Background(), "adv-1", "ev-9", models.EventPatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, gotPatch.Title)
	assert.Equal(t, "Renamed", *gotPatch.Title)
	assert.Nil(t, gotPatch.Start, "untouched fields stay out of the patch")
}

func TestClient_SurfacesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "validation_error",
			"message": "end must not be before start",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListEvents(context.Background(), "adv-1", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "end must not be before start")
}
