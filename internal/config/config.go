// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath points at the CSV shot dataset loaded on startup.
	DataPath string `koanf:"data_path"`

	// BaselineArcFt is the reference arc distance used for delta reporting.
	BaselineArcFt float64 `koanf:"baseline_arc_ft"`

	// CacheSize bounds the per-arc-distance result cache (LRU entries).
	CacheSize int `koanf:"cache_size"`

	// MaxShots caps the number of dataset rows loaded; 0 means unlimited.
	MaxShots int `koanf:"max_shots"`

	// ColorVMin and ColorVMax bound the points-per-attempt color scale.
	ColorVMin float64 `koanf:"color_vmin"`
	ColorVMax float64 `koanf:"color_vmax"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		DataPath:      "league_shots.csv",
		BaselineArcFt: 23.75,
		CacheSize:     64,
		MaxShots:      0,
		ColorVMin:     0.6,
		ColorVMax:     1.2,
	}
}
