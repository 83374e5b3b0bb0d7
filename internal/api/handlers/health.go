package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/conference-planner/backend/internal/live"
	"github.com/conference-planner/backend/internal/storage"
	"github.com/conference-planner/backend/internal/websocket"
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

		w.Header().Set("Content-Type", "application/json")
		if status != "healthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(HealthResponse{
			Status:      status,
			DBConnected: dbConnected,
		})
	}
}

// StatusResponse represents the system status response.
type StatusResponse struct {
	Schedules        int    `json:"schedules"`
	ActiveScheduleID string `json:"active_schedule_id,omitempty"`
	LiveRunning      bool   `json:"live_running"`
	ConnectedClients int    `json:"connected_clients"`
}

// Status returns a handler that provides system status information.
func Status(repo *storage.ScheduleRepository, hub *websocket.Hub, scheduler *live.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		count, _ := repo.Count(ctx)
		activeID, _ := repo.ActiveScheduleID(ctx)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StatusResponse{
			Schedules:        count,
			ActiveScheduleID: activeID,
			LiveRunning:      scheduler.Running(),
			ConnectedClients: hub.ClientCount(),
		})
	}
}
