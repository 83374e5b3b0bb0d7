// Package handlers provides HTTP request handlers for the API endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/conference-planner/backend/internal/api/middleware"
	"github.com/conference-planner/backend/internal/planner"
	"github.com/conference-planner/backend/internal/storage/models"
)

// ImportScheduleRequest imports a conference program, either by URL or from
// raw HTML.
type ImportScheduleRequest struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	HTML string `json:"html,omitempty"`
}

// ListSchedules returns summaries of all stored schedules.
func ListSchedules(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.List(r.Context())
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to list schedules")
			return
		}
		if summaries == nil {
			summaries = []models.ScheduleSummary{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	}
}

// ImportSchedule parses and stores a new conference program.
func ImportSchedule(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}
		if req.URL == "" && req.HTML == "" {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "Either url or html is required")
			return
		}

		ctx := r.Context()
		stored, err := importSchedule(ctx, service, req)
		if err != nil {
			if errors.Is(err, planner.ErrNoDays) {
				middleware.WriteError(w, http.StatusUnprocessableEntity, middleware.ErrValidation, "Document contains no schedule days")
				return
			}
			middleware.WriteError(w, http.StatusBadGateway, middleware.ErrInternalError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(stored)
	}
}

// GetSchedule returns one schedule with its full day tree.
func GetSchedule(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		stored, err := service.Load(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Failed to load schedule")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stored)
	}
}

// GetActiveSchedule returns the currently active schedule.
func GetActiveSchedule(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := service.LoadActive(r.Context())
		if err != nil {
			writeServiceError(w, err, "Failed to load active schedule")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stored)
	}
}

// ActivateSchedule marks a schedule as the active one.
func ActivateSchedule(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := service.Activate(r.Context(), id); err != nil {
			writeServiceError(w, err, "Failed to activate schedule")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"active": id})
	}
}

// DeleteSchedule removes a schedule.
func DeleteSchedule(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err, "Failed to delete schedule")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func importSchedule(ctx context.Context, service *planner.Service, req ImportScheduleRequest) (*models.Schedule, error) {
	if req.URL != "" {
		return service.ImportFromURL(ctx, req.URL, req.Name)
	}
	name := req.Name
	if name == "" {
		name = "Imported schedule"
	}
	return service.ImportFromHTML(ctx, req.HTML, name, "")
}

// writeServiceError maps a planner service error to an HTTP error response.
func writeServiceError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, planner.ErrNotFound) {
		middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Schedule not found")
		return
	}
	middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, message)
}
