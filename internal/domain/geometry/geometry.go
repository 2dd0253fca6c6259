// Package geometry classifies shots into court zones under a parameterized
// three-point arc distance.
//
// Zone assignment is a pure function of (record, arc distance): the same
// record can land in different zones as the arc moves. Comparisons are
// strict (< / >=) with no tolerance; boundary shots fall to the side the
// literal inequality dictates.
package geometry

import (
	"fmt"
	"math"

	"github.com/YellowCow9/nba-sim/internal/domain/model"
)

// Court geometry constants. Coordinates are in tenths of a foot unless the
// name says otherwise.
const (
	// decifeetThreshold disambiguates the recorded distance unit: raw
	// values above it are tenths of a foot. No real shot travels 100 ft,
	// so the threshold doubles as a unit flag.
	decifeetThreshold = 100.0

	// paintMaxFt and shortMidMaxFt bound the two fixed zones.
	paintMaxFt    = 8.0
	shortMidMaxFt = 16.0

	// cornerOffsetFt is how much closer the corner line sits to the basket
	// than the above-the-break arc.
	cornerOffsetFt = 1.75

	// cornerBreakY is the height of the straight corner-line segment
	// before the arc curves, in tenths of a foot.
	cornerBreakY = 92.5

	// Wing bands in degrees of polar angle around the basket. The right
	// wing spans (22, 70), the left wing its mirror (110, 158); the rest
	// of the above-the-break arc is Top of Key.
	wingRightLowDeg  = 22.0
	wingRightHighDeg = 70.0
	wingLeftLowDeg   = 110.0
	wingLeftHighDeg  = 158.0

	// CourtHalfWidth is the half width of the court in tenths of a foot.
	// Past a cutoff of 25 ft the corner segment falls outside it and the
	// Corner 3 zone is geometrically empty.
	CourtHalfWidth = 250.0

	degreesPerRadian = 180.0 / math.Pi
)

// BaselineArcFt is the real-world above-the-break arc distance used as the
// comparison reference.
const BaselineArcFt = 23.75

// CornerEliminationArcFt is the arc distance beyond which no in-bounds shot
// can classify as Corner 3.
const CornerEliminationArcFt = 26.75

// NormalizeDistance converts a raw recorded distance to feet. Values above
// the decifeet threshold are treated as tenths of a foot.
func NormalizeDistance(raw float64) float64 {
	if raw > decifeetThreshold {
		return raw / 10
	}
	return raw
}

// CornerCutoffFt returns the corner three-point distance for a given
// above-the-break arc distance.
func CornerCutoffFt(arcFt float64) float64 {
	return arcFt - cornerOffsetFt
}

// Classify assigns rec to one of the six zones under arcFt.
//
// It returns ErrInvalidRecord when any numeric field is NaN or infinite;
// it is total over all other numeric inputs and never fails on geometry
// that is merely unusual (e.g. arc distances that empty the corner zone).
func Classify(rec model.ShotRecord, arcFt float64) (model.Zone, error) {
	if err := validate(rec); err != nil {
		return "", err
	}

	dist := NormalizeDistance(rec.Distance)

	// Fixed zones, independent of the arc.
	if dist < paintMaxFt {
		return model.ZonePaint, nil
	}
	if dist < shortMidMaxFt {
		return model.ZoneShortMid, nil
	}

	cornerCutoff := CornerCutoffFt(arcFt)
	isCornerArea := rec.LocY < cornerBreakY

	isThree := (isCornerArea && dist >= cornerCutoff) ||
		(!isCornerArea && dist >= arcFt)

	if !isThree {
		// Everything beyond 16 ft but inside the new arc.
		return model.ZoneLongMid, nil
	}
	if isCornerArea {
		return model.ZoneCornerThree, nil
	}

	angle := math.Atan2(rec.LocY, rec.LocX) * degreesPerRadian
	if (angle > wingRightLowDeg && angle < wingRightHighDeg) ||
		(angle > wingLeftLowDeg && angle < wingLeftHighDeg) {
		return model.ZoneWingThree, nil
	}
	return model.ZoneTopKeyThree, nil
}

// validate rejects records whose numeric fields cannot participate in the
// zone arithmetic, rather than letting NaN propagate into the aggregates.
func validate(rec model.ShotRecord) error {
	if bad(rec.Distance) {
		return fmt.Errorf("%w: distance=%v", ErrInvalidRecord, rec.Distance)
	}
	if bad(rec.LocX) || bad(rec.LocY) {
		return fmt.Errorf("%w: loc=(%v,%v)", ErrInvalidRecord, rec.LocX, rec.LocY)
	}
	return nil
}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
