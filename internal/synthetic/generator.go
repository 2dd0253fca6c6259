// Package synthetic generates shot datasets with a realistic spatial mix.
//
// The generator works in polar coordinates around the basket: each shot
// draws an archetype (rim attack, mid-range pull-up, corner three, ...),
// then a distance and angle within that archetype's band. Locations and
// the recorded distance stay mutually consistent, so a classifier sees
// the same geometry a real tracking dataset would give it.
package synthetic

import (
	"math"
	"math/rand"

	"github.com/YellowCow9/nba-sim/internal/domain/model"
	"github.com/google/uuid"
)

// Archetype distance bands in feet and make probabilities. Bands are kept
// clear of the 16 ft and 22 ft boundaries so an archetype's shots do not
// straddle zones at the default arc.
const (
	rimMinFt   = 1.0
	rimMaxFt   = 7.5
	rimMakePct = 0.62

	shortMidMinFt   = 8.5
	shortMidMaxFt   = 15.5
	shortMidMakePct = 0.42

	longMidMinFt   = 16.5
	longMidMaxFt   = 21.5
	longMidMakePct = 0.40

	cornerMinFt   = 22.2
	cornerMaxFt   = 24.5
	cornerMakePct = 0.39

	wingMinFt   = 24.0
	wingMaxFt   = 27.0
	wingMakePct = 0.36

	topKeyMinFt   = 24.0
	topKeyMaxFt   = 28.0
	topKeyMakePct = 0.35
)

// Angle bands in degrees. Zero points along the right baseline, ninety
// straight up the floor.
const (
	cornerMaxY       = 90.0 // decifeet, below the corner break
	wingLowDeg       = 26.0
	wingHighDeg      = 64.0
	wingMirrorOffset = 90.0
	topKeyLowDeg     = 76.0
	topKeyHighDeg    = 104.0
	fullCourtLowDeg  = 12.0
	fullCourtHighDeg = 168.0
)

const decifeetPerFoot = 10.0

// Attempt-volume weights per archetype, roughly tracking league shot mix.
var archetypeWeights = []struct {
	kind   archetype
	weight float64
}{
	{rim, 0.34},
	{shortMid, 0.12},
	{longMid, 0.12},
	{cornerThree, 0.10},
	{wingThree, 0.20},
	{topKeyThree, 0.12},
}

type archetype int

const (
	rim archetype = iota
	shortMid
	longMid
	cornerThree
	wingThree
	topKeyThree
)

// Shot is one generated record, ready for CSV serialization.
type Shot struct {
	PlayerID string
	Record   model.ShotRecord
}

// Generator produces deterministic synthetic shot datasets.
type Generator struct {
	rng     *rand.Rand
	players []string
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithPlayerCount sets the size of the synthetic player pool.
func WithPlayerCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.players = make([]string, n)
		}
	}
}

const defaultPlayerCount = 120

// New creates a Generator seeded for reproducible output.
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		players: make([]string, defaultPlayerCount),
	}
	for _, opt := range opts {
		opt(g)
	}
	for i := range g.players {
		g.players[i] = uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(i), byte(i >> 8), byte(seed)}).String()
	}
	return g
}

// Generate returns n shots drawn from the archetype mix.
func (g *Generator) Generate(n int) []Shot {
	shots := make([]Shot, n)
	for i := range shots {
		shots[i] = g.one()
	}
	return shots
}

func (g *Generator) one() Shot {
	kind := g.drawArchetype()
	distFt, locX, locY := g.place(kind)
	made := g.rng.Float64() < makePct(kind)

	return Shot{
		PlayerID: g.players[g.rng.Intn(len(g.players))],
		Record: model.ShotRecord{
			// Recorded the way tracking data does it: whole feet.
			Distance: math.Floor(distFt),
			LocX:     locX,
			LocY:     locY,
			Made:     made,
		},
	}
}

func (g *Generator) drawArchetype() archetype {
	r := g.rng.Float64()
	acc := 0.0
	for _, w := range archetypeWeights {
		acc += w.weight
		if r < acc {
			return w.kind
		}
	}
	return topKeyThree
}

// place draws a consistent (distance, x, y) triple for the archetype.
// Corner shots are placed by x and y directly; everything else is polar.
func (g *Generator) place(kind archetype) (distFt, locX, locY float64) {
	switch kind {
	case cornerThree:
		// Hug the sideline below the corner break; mirror left/right.
		distFt = g.between(cornerMinFt, cornerMaxFt)
		locY = g.between(0, cornerMaxY)
		x := math.Sqrt(distFt*distFt*decifeetPerFoot*decifeetPerFoot - locY*locY)
		if g.rng.Intn(2) == 0 {
			x = -x
		}
		return distFt, x, locY
	case wingThree:
		deg := g.between(wingLowDeg, wingHighDeg)
		if g.rng.Intn(2) == 0 {
			deg = 180 - deg
		}
		return g.polar(g.between(wingMinFt, wingMaxFt), deg)
	case topKeyThree:
		return g.polar(g.between(topKeyMinFt, topKeyMaxFt), g.between(topKeyLowDeg, topKeyHighDeg))
	case longMid:
		return g.polar(g.between(longMidMinFt, longMidMaxFt), g.between(fullCourtLowDeg, fullCourtHighDeg))
	case shortMid:
		return g.polar(g.between(shortMidMinFt, shortMidMaxFt), g.between(fullCourtLowDeg, fullCourtHighDeg))
	default:
		return g.polar(g.between(rimMinFt, rimMaxFt), g.between(fullCourtLowDeg, fullCourtHighDeg))
	}
}

func (g *Generator) polar(distFt, deg float64) (float64, float64, float64) {
	rad := deg * math.Pi / 180
	locX := distFt * decifeetPerFoot * math.Cos(rad)
	locY := distFt * decifeetPerFoot * math.Sin(rad)
	return distFt, locX, locY
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func makePct(kind archetype) float64 {
	switch kind {
	case rim:
		return rimMakePct
	case shortMid:
		return shortMidMakePct
	case longMid:
		return longMidMakePct
	case cornerThree:
		return cornerMakePct
	case wingThree:
		return wingMakePct
	default:
		return topKeyMakePct
	}
}
