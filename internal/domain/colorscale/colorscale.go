// Package colorscale maps points-per-attempt values onto a red-to-green
// hue sweep for display.
package colorscale

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default scale bounds and HSL parameters matching the dashboard styling.
const (
	defaultVMin = 0.6
	defaultVMax = 1.2

	maxHueDeg  = 120.0 // 0 = red, 120 = green
	saturation = 0.75
	lightness  = 0.42
)

// Option applies a configuration option to the Scale.
type Option func(*Scale)

// WithRange sets the PPS values mapped to the scale's endpoints.
func WithRange(vmin, vmax float64) Option {
	return func(s *Scale) {
		if vmax > vmin {
			s.vmin = vmin
			s.vmax = vmax
		}
	}
}

// Scale converts PPS scalars into colors. Higher PPS within range always
// maps to a higher (greener) hue.
type Scale struct {
	vmin float64
	vmax float64
}

// New creates a Scale with default bounds.
func New(opts ...Option) *Scale {
	s := &Scale{vmin: defaultVMin, vmax: defaultVMax}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hue returns the hue in degrees for pps, clamped into [vmin, vmax].
func (s *Scale) Hue(pps float64) float64 {
	normalized := (pps - s.vmin) / (s.vmax - s.vmin)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return normalized * maxHueDeg
}

// HSL returns a CSS hsl(...) string for pps.
func (s *Scale) HSL(pps float64) string {
	return fmt.Sprintf("hsl(%d, 75%%, 42%%)", int(s.Hue(pps)))
}

// Hex returns an #rrggbb string for pps.
func (s *Scale) Hex(pps float64) string {
	return colorful.Hsl(s.Hue(pps), saturation, lightness).Hex()
}
