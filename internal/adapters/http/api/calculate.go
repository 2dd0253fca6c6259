// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
)

// CalculateHandler handles the legacy calculate endpoint. Its request and
// response shapes predate the richer /zones report and are kept
// wire-compatible for existing frontends.
type CalculateHandler struct {
	deps Dependencies
}

// NewCalculateHandler creates a new calculate handler.
func NewCalculateHandler(deps Dependencies) *CalculateHandler {
	return &CalculateHandler{deps: deps}
}

// calculateRequest mirrors the OpenAPI schema for POST /api/calculate.
type calculateRequest struct {
	ThreePtDistance *float64 `json:"three_pt_distance"`
}

// zoneStats is one value of the calculate response map.
type zoneStats struct {
	PPS    float64 `json:"pps"`
	Volume int     `json:"volume"`
}

// HandleCalculate handles POST /api/calculate requests. The body may omit
// three_pt_distance, in which case the baseline arc is used.
func (h *CalculateHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	arc := h.deps.BaselineArcFt()
	if r.Body != nil && r.ContentLength != 0 {
		var req calculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
			return
		}
		if req.ThreePtDistance != nil {
			if math.IsNaN(*req.ThreePtDistance) || math.IsInf(*req.ThreePtDistance, 0) {
				writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: three_pt_distance", ErrBadRequest))
				return
			}
			arc = *req.ThreePtDistance
		}
	}

	report, err := h.deps.Simulate(r.Context(), arc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	// Map keyed by zone label, active zones only.
	out := make(map[string]zoneStats, len(report.Zones))
	for _, z := range report.Zones {
		if !z.Active {
			continue
		}
		out[string(z.Zone)] = zoneStats{PPS: z.PPS, Volume: z.Attempts}
	}
	writeJSON(w, http.StatusOK, out)
}
