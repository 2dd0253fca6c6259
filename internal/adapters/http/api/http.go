// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/YellowCow9/nba-sim/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Simulate returns the ranked per-zone report for an arc distance.
	Simulate(ctx context.Context, arcFt float64) (types.Report, error)

	// LabeledShots returns the labeled record set for an arc distance.
	LabeledShots(ctx context.Context, arcFt float64) ([]types.LabeledShot, error)

	// BaselineArcFt returns the reference arc distance used as the
	// default when a request carries no arc parameter.
	BaselineArcFt() float64
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	calculateHandler *CalculateHandler
	zonesHandler     *ZonesHandler
	shotsHandler     *ShotsHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		calculateHandler: NewCalculateHandler(deps),
		zonesHandler:     NewZonesHandler(deps),
		shotsHandler:     NewShotsHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/calculate", MetricsMiddleware(s.calculateHandler.HandleCalculate, "calculate"))
	mux.HandleFunc("/zones", MetricsMiddleware(s.zonesHandler.HandleGetZones, "zones"))
	mux.HandleFunc("/shots", MetricsMiddleware(s.shotsHandler.HandleGetShots, "shots"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// arcFromQuery resolves the arc distance from the "arc" query parameter,
// falling back to def when absent. Any parseable finite value is accepted;
// degenerate arcs still produce a valid (if empty-zoned) report.
func arcFromQuery(r *http.Request, def float64) (float64, error) {
	raw := r.URL.Query().Get("arc")
	if raw == "" {
		return def, nil
	}
	arc, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(arc) || math.IsInf(arc, 0) {
		return 0, fmt.Errorf("%w: arc=%q", ErrBadRequest, raw)
	}
	return arc, nil
}
