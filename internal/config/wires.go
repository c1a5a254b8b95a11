package config

import (
	"errors"
	"fmt"

	"magnetite/internal/biot"
	"magnetite/internal/mathutil"
	"magnetite/internal/wire"
)

// WireSpec describes one conductor in the scene. Kind selects which of the
// remaining fields are read:
//
//	segment   start, axis, length (axis is used as given, not normalized)
//	line      from, to
//	polyline  points, closed
//	loop      center, radius, sides, euler|normal
//	rect      center, width, height, euler|normal
//	helix     center, radius, pitch, turns, sides, euler|normal
type WireSpec struct {
	Kind string `json:"kind"`

	Start  [3]float64 `json:"start"`
	Axis   [3]float64 `json:"axis"`
	Length float64    `json:"length,omitempty"`

	From [3]float64 `json:"from"`
	To   [3]float64 `json:"to"`

	Points [][3]float64 `json:"points"`
	Closed bool         `json:"closed,omitempty"`

	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius,omitempty"`
	Sides  int        `json:"sides,omitempty"`
	Width  float64    `json:"width,omitempty"`
	Height float64    `json:"height,omitempty"`
	Pitch  float64    `json:"pitch,omitempty"`
	Turns  float64    `json:"turns,omitempty"`

	Euler  [3]float64 `json:"euler"`
	Normal [3]float64 `json:"normal"`
}

// ErrNoWires is returned by BuildField for an empty scene.
var ErrNoWires = errors.New("config: no wires")

const defaultSides = 64

// Segments expands the spec into unit-current segments.
func (w WireSpec) Segments() ([]biot.Segment, error) {
	orient := wire.Orientation{Euler: w.Euler, Normal: mathutil.Vector(w.Normal)}
	sides := w.Sides
	if sides == 0 {
		sides = defaultSides
	}

	switch w.Kind {
	case "segment":
		s, err := biot.NewSegment(mathutil.Location(w.Start), mathutil.Vector(w.Axis), w.Length)
		if err != nil {
			return nil, err
		}
		return []biot.Segment{s}, nil
	case "line":
		s, err := wire.Straight(mathutil.Location(w.From), mathutil.Location(w.To))
		if err != nil {
			return nil, err
		}
		return []biot.Segment{s}, nil
	case "polyline":
		pts := make([]mathutil.Location, len(w.Points))
		for i, p := range w.Points {
			pts[i] = mathutil.Location(p)
		}
		return wire.Polyline(pts, w.Closed)
	case "loop":
		return wire.Loop(mathutil.Location(w.Center), w.Radius, sides, orient)
	case "rect":
		return wire.Rect(mathutil.Location(w.Center), w.Width, w.Height, orient)
	case "helix":
		return wire.Helix(mathutil.Location(w.Center), w.Radius, w.Pitch, w.Turns, sides, orient)
	}
	return nil, fmt.Errorf("config: unknown wire kind %q", w.Kind)
}

// BuildField constructs the field for every wire in the scene.
func (c *Config) BuildField(opts ...biot.Option) (*biot.Field, error) {
	if len(c.Wires) == 0 {
		return nil, ErrNoWires
	}
	f := biot.NewField(opts...)
	for i, w := range c.Wires {
		segs, err := w.Segments()
		if err != nil {
			return nil, fmt.Errorf("config: wire %d (%s): %w", i, w.Kind, err)
		}
		f.AddSegments(segs...)
	}
	return f, nil
}
