// Package model contains domain models passed between layers.
package model

// ShotRecord represents one historical shot attempt.
// LocX and LocY are court-plane coordinates in tenths of a foot, origin at
// the basket, LocY increasing away from the hoop. Distance arrives in an
// ambiguous unit (feet or tenths of a foot) and is normalized by the
// geometry package.
type ShotRecord struct {
	Distance float64 // raw recorded distance
	LocX     float64
	LocY     float64
	Made     bool
}

// Zone is one of the six mutually exclusive court regions a shot can be
// assigned to under a given arc distance.
type Zone string

// The six zones. Paint and ShortMidRange are fixed; the other four depend
// on the arc distance.
const (
	ZonePaint       Zone = "Paint"
	ZoneShortMid    Zone = "Short Mid-Range"
	ZoneLongMid     Zone = "Long Mid-Range"
	ZoneWingThree   Zone = "Wing 3"
	ZoneCornerThree Zone = "Corner 3"
	ZoneTopKeyThree Zone = "Top of Key 3"
)

// CanonicalOrder is the fixed display order used as a stable fallback when
// zones cannot be ranked by efficiency (e.g. zones with no attempts).
func CanonicalOrder() []Zone {
	return []Zone{
		ZonePaint,
		ZoneShortMid,
		ZoneLongMid,
		ZoneWingThree,
		ZoneCornerThree,
		ZoneTopKeyThree,
	}
}

// Valid reports whether z is one of the six known zones.
func (z Zone) Valid() bool {
	switch z {
	case ZonePaint, ZoneShortMid, ZoneLongMid, ZoneWingThree, ZoneCornerThree, ZoneTopKeyThree:
		return true
	}
	return false
}

// ArcDependent reports whether the zone's geometric definition depends on
// the arc distance. Paint and Short Mid-Range are bounded by fixed radii
// only, so their membership never changes as the arc moves.
func (z Zone) ArcDependent() bool {
	return z != ZonePaint && z != ZoneShortMid
}

// ValuedShot is a ShotRecord labeled with its zone and the points it scored
// under a particular arc distance (0 when missed).
type ValuedShot struct {
	Shot   ShotRecord
	Zone   Zone
	Points int
}
