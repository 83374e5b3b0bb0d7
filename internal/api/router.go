// Package api provides HTTP routing and handlers for the REST API.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/conference-planner/backend/internal/api/handlers"
	"github.com/conference-planner/backend/internal/api/middleware"
	"github.com/conference-planner/backend/internal/live"
	"github.com/conference-planner/backend/internal/planner"
	"github.com/conference-planner/backend/internal/storage"
	"github.com/conference-planner/backend/internal/websocket"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(
	repo *storage.ScheduleRepository,
	db *storage.DB,
	hub *websocket.Hub,
	service *planner.Service,
	scheduler *live.Scheduler,
	staticDir string,
) *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	// API subrouter
	api := r.PathPrefix("/api").Subrouter()

	// Health and status endpoints
	api.HandleFunc("/health", handlers.HealthCheck(db)).Methods("GET")
	api.HandleFunc("/status", handlers.Status(repo, hub, scheduler)).Methods("GET")

	// WebSocket endpoint
	api.HandleFunc("/ws", handlers.WebSocketUpgrade(hub)).Methods("GET")

	// Schedule endpoints
	api.HandleFunc("/schedules", handlers.ListSchedules(service)).Methods("GET")
	api.HandleFunc("/schedules", handlers.ImportSchedule(service)).Methods("POST")
	api.HandleFunc("/schedules/active", handlers.GetActiveSchedule(service)).Methods("GET")
	api.HandleFunc("/schedules/{id}", handlers.GetSchedule(service)).Methods("GET")
	api.HandleFunc("/schedules/{id}", handlers.DeleteSchedule(service)).Methods("DELETE")
	api.HandleFunc("/schedules/{id}/activate", handlers.ActivateSchedule(service)).Methods("POST")

	// Selection endpoints
	api.HandleFunc("/schedules/{id}/selections", handlers.GetSelections(service)).Methods("GET")
	api.HandleFunc("/schedules/{id}/selections", handlers.SetSelections(service)).Methods("PUT")
	api.HandleFunc("/schedules/{id}/selections", handlers.ClearSelections(service)).Methods("DELETE")
	api.HandleFunc("/schedules/{id}/selections/{talkId}", handlers.ToggleSelection(service)).Methods("POST")
	api.HandleFunc("/schedules/{id}/conflicts", handlers.GetConflicts(service)).Methods("GET")

	// Share endpoints
	api.HandleFunc("/schedules/{id}/share", handlers.ShareSelections(service)).Methods("GET")
	api.HandleFunc("/schedules/{id}/import", handlers.ImportShare(service)).Methods("POST")

	// Live timeline endpoints
	api.HandleFunc("/schedules/{id}/live", handlers.GetLive(scheduler)).Methods("GET")
	api.HandleFunc("/live/start", handlers.StartLive(scheduler)).Methods("POST")
	api.HandleFunc("/live/stop", handlers.StopLive(scheduler)).Methods("POST")

	// Serve static frontend files
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))

	return r
}
