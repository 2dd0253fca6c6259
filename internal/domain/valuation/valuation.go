// Package valuation derives simulated point values from zone labels.
package valuation

import (
	"github.com/YellowCow9/nba-sim/internal/domain/model"
)

// Point values under the simulated rule set.
const (
	twoPointValue   = 2
	threePointValue = 3
)

// threeZones is the explicit, total membership map for three-point zones.
// Zone identity decides point value; labels are never string-inspected.
var threeZones = map[model.Zone]bool{
	model.ZonePaint:       false,
	model.ZoneShortMid:    false,
	model.ZoneLongMid:     false,
	model.ZoneWingThree:   true,
	model.ZoneCornerThree: true,
	model.ZoneTopKeyThree: true,
}

// IsThree reports whether z scores three points when made.
func IsThree(z model.Zone) bool {
	return threeZones[z]
}

// Points returns the simulated points scored: 3 or 2 for a make depending
// on the zone, 0 for a miss.
func Points(z model.Zone, made bool) int {
	if !made {
		return 0
	}
	if IsThree(z) {
		return threePointValue
	}
	return twoPointValue
}

// Value labels rec with zone and its simulated points.
func Value(rec model.ShotRecord, zone model.Zone) model.ValuedShot {
	return model.ValuedShot{
		Shot:   rec,
		Zone:   zone,
		Points: Points(zone, rec.Made),
	}
}
