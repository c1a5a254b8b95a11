// Package grid samples a field over a rectangular patch of a coordinate
// plane. Every sample is independent, so evaluation is a parallel map.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"magnetite/internal/mathutil"
)

// Plane selects the coordinate plane a grid lies in.
type Plane int

const (
	XY Plane = iota
	XZ
	YZ
)

func (p Plane) String() string {
	switch p {
	case XY:
		return "xy"
	case XZ:
		return "xz"
	case YZ:
		return "yz"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

// ParsePlane accepts "xy", "xz" or "yz" in any case.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "", "xy":
		return XY, nil
	case "xz":
		return XZ, nil
	case "yz":
		return YZ, nil
	}
	return 0, fmt.Errorf("grid: unknown plane %q", s)
}

func (p Plane) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Plane) UnmarshalText(b []byte) error {
	v, err := ParsePlane(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ErrInvalidGrid is returned by Validate.
var ErrInvalidGrid = errors.New("grid: invalid")

// Grid is Cols×Rows cells spanning [Min, Max] in the plane's two in-plane
// coordinates, at Offset along the third. Samples are taken at cell
// centres in row-major order.
type Grid struct {
	Plane  Plane      `json:"plane"`
	Min    [2]float64 `json:"min"`
	Max    [2]float64 `json:"max"`
	Offset float64    `json:"offset"`
	Cols   int        `json:"cols"`
	Rows   int        `json:"rows"`
}

func (g Grid) Validate() error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d cells", ErrInvalidGrid, g.Cols, g.Rows)
	}
	if !(g.Max[0] > g.Min[0]) || !(g.Max[1] > g.Min[1]) {
		return fmt.Errorf("%w: bounds %v-%v", ErrInvalidGrid, g.Min, g.Max)
	}
	if g.Plane < XY || g.Plane > YZ {
		return fmt.Errorf("%w: %v", ErrInvalidGrid, g.Plane)
	}
	return nil
}

// Len returns the number of samples.
func (g Grid) Len() int { return g.Cols * g.Rows }

// Point returns the location of sample i (row i/Cols, column i%Cols).
func (g Grid) Point(i int) mathutil.Location {
	col, row := i%g.Cols, i/g.Cols
	u := g.Min[0] + (float64(col)+0.5)*(g.Max[0]-g.Min[0])/float64(g.Cols)
	v := g.Min[1] + (float64(row)+0.5)*(g.Max[1]-g.Min[1])/float64(g.Rows)

	switch g.Plane {
	case XZ:
		return mathutil.Location{u, g.Offset, v}
	case YZ:
		return mathutil.Location{g.Offset, u, v}
	default:
		return mathutil.Location{u, v, g.Offset}
	}
}

// Points returns every sample location in row-major order.
func (g Grid) Points() []mathutil.Location {
	pts := make([]mathutil.Location, g.Len())
	for i := range pts {
		pts[i] = g.Point(i)
	}
	return pts
}
