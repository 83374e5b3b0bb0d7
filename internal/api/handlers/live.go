package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/conference-planner/backend/internal/live"
)

// GetLive returns the live timeline snapshot for a schedule's selection.
func GetLive(scheduler *live.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := scheduler.Snapshot(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeServiceError(w, err, "Failed to build live snapshot")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
	}
}

// StartLive turns the live timeline on.
func StartLive(scheduler *live.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduler.Resume()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"running": true})
	}
}

// StopLive turns the live timeline off.
func StopLive(scheduler *live.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scheduler.Pause()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"running": false})
	}
}
