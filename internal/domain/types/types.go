// Package types contains common types shared between the app and HTTP layers.
package types

import "github.com/YellowCow9/nba-sim/internal/domain/model"

// ZoneSummary is one row of the ranked per-zone efficiency report.
type ZoneSummary struct {
	Rank        int        `json:"rank"`
	Zone        model.Zone `json:"zone"`
	Active      bool       `json:"active"` // false when no shots fell in the zone
	PPS         float64    `json:"pps"`
	Attempts    int        `json:"attempts"`
	VolumeShare float64    `json:"volume_share"`
	Color       string     `json:"color"`     // CSS hsl(...) string
	ColorHex    string     `json:"color_hex"` // #rrggbb
	Delta       *float64   `json:"delta,omitempty"`
}

// LabeledShot is the per-shot output consumed by spatial rendering.
type LabeledShot struct {
	LocX   float64    `json:"x"`
	LocY   float64    `json:"y"`
	Zone   model.Zone `json:"zone"`
	Made   bool       `json:"made"`
	Points int        `json:"points"`
}

// Report bundles both independently consumable outputs of a simulation:
// the scalar per-zone summary and the full labeled record set.
type Report struct {
	ArcDistanceFt float64       `json:"arc_distance_ft"`
	TotalAttempts int           `json:"total_attempts"`
	CornerActive  bool          `json:"corner_active"`
	Zones         []ZoneSummary `json:"zones"`
}
