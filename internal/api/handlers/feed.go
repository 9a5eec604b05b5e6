package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/advisor-calendar/backend/internal/api/middleware"
	"github.com/advisor-calendar/backend/internal/ics"
	"github.com/advisor-calendar/backend/internal/storage"
)

// EventFeed serves an advisor's active events as an iCalendar feed, so
// the calendar can be subscribed to from external clients.
func EventFeed(eventRepo *storage.EventRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advisorID := mux.Vars(r)["advisorId"]

		events, err := eventRepo.ListByAdvisors(r.Context(), []string{advisorID})
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to query events")
			return
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="calendar.ics"`)
		w.Write([]byte(ics.Feed(advisorID, events)))
	}
}
