// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ZonesHandler handles zone report requests.
type ZonesHandler struct {
	deps Dependencies
}

// NewZonesHandler creates a new zones handler.
func NewZonesHandler(deps Dependencies) *ZonesHandler {
	return &ZonesHandler{deps: deps}
}

// HandleGetZones handles GET /zones?arc=N requests.
func (h *ZonesHandler) HandleGetZones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	arc, err := arcFromQuery(r, h.deps.BaselineArcFt())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	report, err := h.deps.Simulate(r.Context(), arc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
