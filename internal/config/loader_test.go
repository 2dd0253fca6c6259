package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/YellowCow9/nba-sim/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.BaselineArcFt, convey.ShouldEqual, 23.75)
				convey.So(cfg.CacheSize, convey.ShouldEqual, 64)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("NBASIM_ADDR", ":8080")
			_ = os.Setenv("NBASIM_DATA_PATH", "/tmp/shots.csv")
			_ = os.Setenv("NBASIM_BASELINE_ARC_FT", "22.15")
			_ = os.Setenv("NBASIM_CACHE_SIZE", "16")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "/tmp/shots.csv")
				convey.So(cfg.BaselineArcFt, convey.ShouldEqual, 22.15)
				convey.So(cfg.CacheSize, convey.ShouldEqual, 16)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":9090"
data_path: "data/shots.csv"
baseline_arc_ft: 23.75
cache_size: 32
color_vmin: 0.5
color_vmax: 1.5
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("NBASIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataPath, convey.ShouldEqual, "data/shots.csv")
				convey.So(cfg.CacheSize, convey.ShouldEqual, 32)
				convey.So(cfg.ColorVMin, convey.ShouldEqual, 0.5)
				convey.So(cfg.ColorVMax, convey.ShouldEqual, 1.5)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
cache_size: 32
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("NBASIM_CONFIG", tmpFile)
			_ = os.Setenv("NBASIM_ADDR", ":8080") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080") // Overridden by env
				convey.So(cfg.CacheSize, convey.ShouldEqual, 32) // From file
			})
		})

		convey.Convey("When loading config with an invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("NBASIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid values", func() {
			_ = os.Setenv("NBASIM_CACHE_SIZE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"NBASIM_CONFIG",
		"NBASIM_ADDR",
		"NBASIM_LOG_LEVEL",
		"NBASIM_DATA_PATH",
		"NBASIM_BASELINE_ARC_FT",
		"NBASIM_CACHE_SIZE",
		"NBASIM_MAX_SHOTS",
		"NBASIM_COLOR_VMIN",
		"NBASIM_COLOR_VMAX",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "nbasim-config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp config file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("failed to write temp config file: %v", err)
	}
	_ = f.Close()
	return f.Name()
}
