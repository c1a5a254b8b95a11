package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"magnetite/internal/export"
	"magnetite/internal/grid"
	"magnetite/internal/render"
)

// Config holds the wire scene and all sampling and output settings.
type Config struct {
	// Scene
	Wires []WireSpec `json:"wires"`

	// Sampling
	Plane      string     `json:"plane"`
	Resolution int        `json:"resolution"`
	Min        [2]float64 `json:"min"`
	Max        [2]float64 `json:"max"`
	Offset     float64    `json:"offset"`
	Workers    int        `json:"workers"`

	// Output
	OutputDir   string `json:"output_dir"`
	ImageSize   int    `json:"image_size"`
	Format      string `json:"format"`
	Smooth      bool   `json:"smooth"`
	LogScale    bool   `json:"log_scale"`
	Palette     string `json:"palette"`
	CSV         bool   `json:"csv"`
	Compression string `json:"compression"`

	// Diagnostics
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
	Trace     bool   `json:"trace"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Palette != "" && !filepath.IsAbs(cfg.Palette) {
		cfg.Palette = filepath.Join(filepath.Dir(path), cfg.Palette)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir  string
	Resolution int
	Workers    int
	Format     string
	LogLevel   string
	Trace      bool
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Resolution > 0 {
		c.Resolution = flags.Resolution
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Trace {
		c.Trace = true
	}

	if c.Resolution <= 0 {
		c.Resolution = 10
	}
	if c.Min == ([2]float64{}) && c.Max == ([2]float64{}) {
		c.Max = [2]float64{10, 10}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "field-out"
	}
	if c.ImageSize <= 0 {
		c.ImageSize = 512
	}
	if c.Format == "" {
		c.Format = string(render.WebP)
	}
	if c.Compression == "" {
		c.Compression = string(export.None)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
		if c.Trace {
			// Segment terms are logged at debug level.
			c.LogLevel = "debug"
		}
	}
}

// Grid returns the sampling grid: Resolution cells along each side.
func (c *Config) Grid() (grid.Grid, error) {
	plane, err := grid.ParsePlane(c.Plane)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("config: %w", err)
	}
	g := grid.Grid{
		Plane:  plane,
		Min:    c.Min,
		Max:    c.Max,
		Offset: c.Offset,
		Cols:   c.Resolution,
		Rows:   c.Resolution,
	}
	if err := g.Validate(); err != nil {
		return grid.Grid{}, fmt.Errorf("config: %w", err)
	}
	return g, nil
}
