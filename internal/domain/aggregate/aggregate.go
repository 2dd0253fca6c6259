// Package aggregate reduces valued shots into per-zone efficiency stats.
//
// Aggregation is a pure function of its input collection: re-running it
// with identical input reproduces identical output, which is what makes
// per-arc-distance memoization safe.
package aggregate

import (
	"sort"

	"github.com/YellowCow9/nba-sim/internal/domain/model"
)

const percentScale = 100.0

// Stats holds the aggregates for a single zone.
type Stats struct {
	Attempts    int
	MeanPPS     float64 // mean simulated points per attempt
	VolumeShare float64 // percentage of all attempts in this zone
}

// Aggregate reduces shots into per-zone stats. Zones with no attempts are
// absent from the result; callers treat absence as "zone not active at
// this configuration". Empty input yields an empty map, not a fault.
func Aggregate(shots []model.ValuedShot) map[model.Zone]Stats {
	out := make(map[model.Zone]Stats, len(model.CanonicalOrder()))
	if len(shots) == 0 {
		return out
	}

	points := make(map[model.Zone]int)
	counts := make(map[model.Zone]int)
	for _, s := range shots {
		points[s.Zone] += s.Points
		counts[s.Zone]++
	}

	total := len(shots)
	for zone, n := range counts {
		out[zone] = Stats{
			Attempts:    n,
			MeanPPS:     float64(points[zone]) / float64(n),
			VolumeShare: float64(n) / float64(total) * percentScale,
		}
	}
	return out
}

// DeltaPPS returns the mean-PPS delta of zone z between current and
// baseline aggregations. The second return is false when the delta is
// unavailable: fixed zones are exempt (trivially identical under any arc),
// and arc-dependent zones need the zone present in both runs.
func DeltaPPS(current, baseline map[model.Zone]Stats, z model.Zone) (float64, bool) {
	if !z.ArcDependent() {
		return 0, false
	}
	cur, okCur := current[z]
	base, okBase := baseline[z]
	if !okCur || !okBase {
		return 0, false
	}
	return cur.MeanPPS - base.MeanPPS, true
}

// Rank orders zones for display: zones with data by mean PPS descending,
// then zones with no data in the canonical fixed order. The sort is stable,
// so equal-PPS zones keep their canonical relative order.
func Rank(stats map[model.Zone]Stats) []model.Zone {
	var active, empty []model.Zone
	for _, z := range model.CanonicalOrder() {
		if _, ok := stats[z]; ok {
			active = append(active, z)
		} else {
			empty = append(empty, z)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return stats[active[i]].MeanPPS > stats[active[j]].MeanPPS
	})
	return append(active, empty...)
}
