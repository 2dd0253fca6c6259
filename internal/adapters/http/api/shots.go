// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/YellowCow9/nba-sim/internal/domain/types"
)

// ShotsHandler handles labeled shot requests.
type ShotsHandler struct {
	deps Dependencies
}

// NewShotsHandler creates a new shots handler.
func NewShotsHandler(deps Dependencies) *ShotsHandler {
	return &ShotsHandler{deps: deps}
}

// shotsResponse wraps the record set with the arc it was labeled under.
type shotsResponse struct {
	ArcDistanceFt float64             `json:"arc_distance_ft"`
	Shots         []types.LabeledShot `json:"shots"`
}

// HandleGetShots handles GET /shots?arc=N requests.
func (h *ShotsHandler) HandleGetShots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	arc, err := arcFromQuery(r, h.deps.BaselineArcFt())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	shots, err := h.deps.LabeledShots(r.Context(), arc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, shotsResponse{ArcDistanceFt: arc, Shots: shots})
}
