// Package api provides HTTP routing and handlers for the REST API.
package api

import (
	"github.com/gorilla/mux"

	"github.com/advisor-calendar/backend/internal/api/handlers"
	"github.com/advisor-calendar/backend/internal/api/middleware"
	"github.com/advisor-calendar/backend/internal/storage"
	"github.com/advisor-calendar/backend/internal/websocket"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(db *storage.DB, eventRepo *storage.EventRepository, hub *websocket.Hub) *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	// API subrouter
	api := r.PathPrefix("/api").Subrouter()

	// Health and status endpoints
	api.HandleFunc("/health", handlers.HealthCheck(db)).Methods("GET")
	api.HandleFunc("/status", handlers.Status(db, hub)).Methods("GET")

	// WebSocket endpoint
	api.HandleFunc("/ws", handlers.WebSocketUpgrade(hub)).Methods("GET")

	// Calendar event endpoints. Deletion is a PUT flipping status to
	// inactive; there is no DELETE route.
	api.HandleFunc("/advisors/{advisorId}/calendar-events", handlers.ListEvents(eventRepo)).Methods("GET")
	api.HandleFunc("/advisors/{advisorId}/calendar-events", handlers.CreateEvent(eventRepo, hub)).Methods("POST")
	api.HandleFunc("/advisors/{advisorId}/calendar-events/feed.ics", handlers.EventFeed(eventRepo)).Methods("GET")
	api.HandleFunc("/advisors/{advisorId}/calendar-events/{eventId}", handlers.UpdateEvent(eventRepo, hub)).Methods("PUT")

	return r
}
