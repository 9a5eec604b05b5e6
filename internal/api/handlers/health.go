package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/advisor-calendar/backend/internal/storage"
	"github.com/advisor-calendar/backend/internal/storage/models"
	"github.com/advisor-calendar/backend/internal/websocket"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
}

// HealthCheck returns a handler that performs a health check.
func HealthCheck(db *storage.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbConnected := db.Ping() == nil

		status := "healthy"
		if !dbConnected {
			status = "degraded"
		}

		response := HealthResponse{
			Status:      status,
			DBConnected: dbConnected,
		}

		w.Header().Set("Content-Type", "application/json")
		if status != "healthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(response)
	}
}

// StatusResponse represents the system status response.
type StatusResponse struct {
	ActiveEvents     int `json:"active_events"`
	InactiveEvents   int `json:"inactive_events"`
	ConnectedClients int `json:"connected_clients"`
}

// Status returns a handler that provides system status information.
func Status(db *storage.DB, hub *websocket.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var activeEvents int
		db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calendar_events WHERE status = ?",
			models.EventStatusActive).Scan(&activeEvents)

		var inactiveEvents int
		db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calendar_events WHERE status = ?",
			models.EventStatusInactive).Scan(&inactiveEvents)

		response := StatusResponse{
			ActiveEvents:   activeEvents,
			InactiveEvents: inactiveEvents,
		}
		if hub != nil {
			response.ConnectedClients = hub.ClientCount()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
