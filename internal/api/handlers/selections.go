package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/conference-planner/backend/internal/api/middleware"
	"github.com/conference-planner/backend/internal/planner"
	"github.com/conference-planner/backend/internal/schedule"
)

// SetSelectionsRequest replaces a schedule's selected talks.
type SetSelectionsRequest struct {
	TalkIDs []string `json:"talkIds"`
}

// SelectionsResponse carries a schedule's current selection.
type SelectionsResponse struct {
	ScheduleID string          `json:"scheduleId"`
	TalkIDs    []string        `json:"talkIds"`
	Talks      []schedule.Talk `json:"talks"`
}

// ToggleSelectionResponse reports the outcome of a toggle.
type ToggleSelectionResponse struct {
	ScheduleID string   `json:"scheduleId"`
	TalkID     string   `json:"talkId"`
	Selected   bool     `json:"selected"`
	TalkIDs    []string `json:"talkIds"`
}

// GetSelections returns a schedule's selected talks, resolved.
func GetSelections(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		stored, talks, err := service.SelectedTalks(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Failed to load selections")
			return
		}
		if talks == nil {
			talks = []schedule.Talk{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SelectionsResponse{
			ScheduleID: stored.ID,
			TalkIDs:    stored.Selections,
			Talks:      talks,
		})
	}
}

// SetSelections replaces a schedule's selected talks.
func SetSelections(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req SetSelectionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		kept, err := service.SetSelections(r.Context(), id, req.TalkIDs)
		if err != nil {
			writeServiceError(w, err, "Failed to update selections")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"scheduleId": id, "talkIds": kept})
	}
}

// ToggleSelection flips one talk in and out of the selection.
func ToggleSelection(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["id"]
		talkID := vars["talkId"]

		talkIDs, selected, err := service.ToggleSelection(r.Context(), id, talkID)
		if err != nil {
			if errors.Is(err, planner.ErrNotFound) {
				middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Schedule not found")
				return
			}
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ToggleSelectionResponse{
			ScheduleID: id,
			TalkID:     talkID,
			Selected:   selected,
			TalkIDs:    talkIDs,
		})
	}
}

// ClearSelections removes every selected talk from a schedule.
func ClearSelections(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := service.ClearSelections(r.Context(), id); err != nil {
			writeServiceError(w, err, "Failed to clear selections")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetConflicts returns the overlap report for a schedule's selection.
func GetConflicts(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		report, err := service.Conflicts(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Failed to compute conflicts")
			return
		}
		if report.Groups == nil {
			report.Groups = []schedule.ConflictGroup{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}
