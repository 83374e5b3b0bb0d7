package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/conference-planner/backend/internal/api/middleware"
	"github.com/conference-planner/backend/internal/planner"
	"github.com/conference-planner/backend/internal/share"
)

// ShareResponse carries the encoded share code and the export document it
// encodes.
type ShareResponse struct {
	ScheduleID string        `json:"scheduleId"`
	Code       string        `json:"code"`
	Payload    share.Payload `json:"payload"`
}

// ImportShareRequest applies a share code to a schedule's selection.
type ImportShareRequest struct {
	Code string `json:"code"`
}

// ShareSelections encodes a schedule's selected talks into a share code.
func ShareSelections(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		code, payload, err := service.Share(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Failed to encode share payload")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ShareResponse{ScheduleID: id, Code: code, Payload: payload})
	}
}

// ImportShare resolves a share code against a schedule and merges the
// matched talks into its selection.
func ImportShare(service *planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var req ImportShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}
		if strings.TrimSpace(req.Code) == "" {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "Share code is required")
			return
		}

		result, err := service.ImportShare(r.Context(), id, strings.TrimSpace(req.Code))
		if err != nil {
			if errors.Is(err, planner.ErrNotFound) {
				middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Schedule not found")
				return
			}
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid share code")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
