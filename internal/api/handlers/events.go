// Package handlers provides HTTP request handlers for the API endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/advisor-calendar/backend/internal/api/middleware"
	"github.com/advisor-calendar/backend/internal/storage"
	"github.com/advisor-calendar/backend/internal/storage/models"
	"github.com/advisor-calendar/backend/internal/websocket"
)

// ListEvents returns the active events for an advisor. The optional
// additionalAdvisors query parameter (comma-separated ids) unions other
// advisors' events into the response for aggregated views.
func ListEvents(eventRepo *storage.EventRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advisorID := mux.Vars(r)["advisorId"]

		advisorIDs := []string{advisorID}
		if extra := r.URL.Query().Get("additionalAdvisors"); extra != "" {
			for _, id := range strings.Split(extra, ",") {
				if id = strings.TrimSpace(id); id != "" && id != advisorID {
					advisorIDs = append(advisorIDs, id)
				}
			}
		}

		events, err := eventRepo.ListByAdvisors(r.Context(), advisorIDs)
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to query events")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}
}

// CreateEvent persists a new event for an advisor and returns the
// server-confirmed payload.
func CreateEvent(eventRepo *storage.EventRepository, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advisorID := mux.Vars(r)["advisorId"]

		var ev models.CalendarEvent
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		ev.AdvisorID = advisorID
		ev.Status = models.EventStatusActive

		if err := ev.Validate(); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, err.Error())
			return
		}

		if err := eventRepo.Create(r.Context(), &ev); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to create event")
			return
		}

		if hub != nil {
			websocket.NewEventBroadcaster(hub).BroadcastEventCreated(ev)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ev)
	}
}

// UpdateEvent applies a partial update to an event. A patch carrying
// status "inactive" is the soft-delete path; the row is retained and
// only flipped out of active listings.
func UpdateEvent(eventRepo *storage.EventRepository, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["eventId"]

		var patch models.EventPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		existing, err := eventRepo.GetByID(r.Context(), eventID)
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to query event")
			return
		}
		if existing == nil {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}

		merged := patch.Apply(*existing)
		if err := merged.Validate(); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, err.Error())
			return
		}

		updated, err := eventRepo.Update(r.Context(), eventID, patch)
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to update event")
			return
		}
		if updated == nil {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}

		if hub != nil {
			broadcaster := websocket.NewEventBroadcaster(hub)
			if patch.IsDelete() {
				broadcaster.BroadcastEventDeleted(*updated)
			} else {
				broadcaster.BroadcastEventUpdated(*updated)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}
