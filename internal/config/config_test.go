package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"magnetite/internal/biot"
	"magnetite/internal/grid"
	"magnetite/internal/logging"
	"magnetite/internal/mathutil"
	"magnetite/internal/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneJSON = `{
  "wires": [
    {"kind": "segment", "start": [-500, 0, 0], "axis": [1, 0, 0], "length": 1000},
    {"kind": "loop", "center": [0, 0, 5], "radius": 1, "sides": 32, "normal": [0, 0, 1]},
    {"kind": "polyline", "points": [[0, 0, 0], [1, 0, 0], [1, 1, 0]], "closed": true}
  ],
  "plane": "xz",
  "resolution": 20,
  "min": [-2, -2],
  "max": [2, 2],
  "palette": "ramp.tga"
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, sceneJSON)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Wires, 3)
	assert.Equal(t, "xz", cfg.Plane)
	assert.Equal(t, 20, cfg.Resolution)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "ramp.tga"), cfg.Palette)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "{"))
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, 10, cfg.Resolution)
	assert.Equal(t, [2]float64{0, 0}, cfg.Min)
	assert.Equal(t, [2]float64{10, 10}, cfg.Max)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "field-out", cfg.OutputDir)
	assert.Equal(t, 512, cfg.ImageSize)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, "none", cfg.Compression)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Trace)
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Resolution: 20, OutputDir: "a", Format: "webp"}
	cfg.Resolve(Flags{OutputDir: "b", Resolution: 40, Workers: 3, Format: "png", LogLevel: "debug", Trace: true})

	assert.Equal(t, "b", cfg.OutputDir)
	assert.Equal(t, 40, cfg.Resolution)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Trace)
}

func TestResolveTraceLogLevel(t *testing.T) {
	cfg, err := Load(writeConfig(t, sceneJSON))
	require.NoError(t, err)
	cfg.Resolve(Flags{Trace: true})
	assert.Equal(t, "debug", cfg.LogLevel)

	level, err := logging.ParseLevel(cfg.LogLevel)
	require.NoError(t, err)
	var buf bytes.Buffer
	logger, err := logging.New(&buf, level, "text")
	require.NoError(t, err)

	f, err := cfg.BuildField(biot.WithTracer(biot.NewSlogTracer(logger)))
	require.NoError(t, err)
	f.EvalAtPoint(mathutil.Location{0.3, -0.7, 2})
	assert.Contains(t, buf.String(), "segment terms")

	explicit := Config{LogLevel: "warn"}
	explicit.Resolve(Flags{Trace: true})
	assert.Equal(t, "warn", explicit.LogLevel)

	flagged := Config{}
	flagged.Resolve(Flags{Trace: true, LogLevel: "error"})
	assert.Equal(t, "error", flagged.LogLevel)
}

func TestGrid(t *testing.T) {
	cfg, err := Load(writeConfig(t, sceneJSON))
	require.NoError(t, err)
	cfg.Resolve(Flags{})

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.XZ, g.Plane)
	assert.Equal(t, 20, g.Cols)
	assert.Equal(t, 20, g.Rows)

	cfg.Plane = "uv"
	_, err = cfg.Grid()
	assert.Error(t, err)

	cfg.Plane = "xy"
	cfg.Min, cfg.Max = [2]float64{1, 1}, [2]float64{1, 2}
	_, err = cfg.Grid()
	assert.True(t, errors.Is(err, grid.ErrInvalidGrid))
}

func TestBuildField(t *testing.T) {
	cfg, err := Load(writeConfig(t, sceneJSON))
	require.NoError(t, err)

	f, err := cfg.BuildField()
	require.NoError(t, err)
	assert.Equal(t, 1+32+3, f.Len())

	loop, err := wire.Loop(mathutil.Location{0, 0, 5}, 1, 32, wire.Orientation{})
	require.NoError(t, err)
	want := biot.NewField()
	want.AddSegment(biot.MustSegment(mathutil.Location{-500, 0, 0}, mathutil.Vector{1, 0, 0}, 1000))
	want.AddSegments(loop...)
	tri, err := wire.Polyline([]mathutil.Location{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, true)
	require.NoError(t, err)
	want.AddSegments(tri...)

	p := mathutil.Location{0.3, -0.7, 2}
	got := f.EvalAtPoint(p)
	exp := want.EvalAtPoint(p)
	for i := range exp {
		assert.InDelta(t, exp[i], got[i], 1e-18)
	}
}

func TestBuildFieldErrors(t *testing.T) {
	var empty Config
	_, err := empty.BuildField()
	assert.True(t, errors.Is(err, ErrNoWires))

	bad := Config{Wires: []WireSpec{{Kind: "segment", Axis: [3]float64{0, 0, 0}, Length: 1}}}
	_, err = bad.BuildField()
	assert.True(t, errors.Is(err, biot.ErrDegenerateSegment))
	assert.Contains(t, err.Error(), "wire 0")

	unknown := Config{Wires: []WireSpec{{Kind: "coil"}}}
	_, err = unknown.BuildField()
	assert.Error(t, err)

	shape := Config{Wires: []WireSpec{{Kind: "loop", Radius: -1}}}
	_, err = shape.BuildField()
	assert.True(t, errors.Is(err, wire.ErrShape))
}

func TestWireKinds(t *testing.T) {
	tests := []struct {
		spec WireSpec
		n    int
	}{
		{WireSpec{Kind: "line", From: [3]float64{0, 0, 0}, To: [3]float64{0, 0, 3}}, 1},
		{WireSpec{Kind: "loop", Radius: 2}, defaultSides},
		{WireSpec{Kind: "rect", Width: 1, Height: 2, Euler: [3]float64{90, 0, 0}}, 4},
		{WireSpec{Kind: "helix", Radius: 1, Pitch: 0.1, Turns: 2, Sides: 12}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.spec.Kind, func(t *testing.T) {
			segs, err := tt.spec.Segments()
			require.NoError(t, err)
			assert.Len(t, segs, tt.n)
		})
	}
}
