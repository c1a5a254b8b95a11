// Package wire builds unit-current segment chains for common conductor
// shapes. Every emitted segment has a unit axis, so its length is the
// geometric length of the edge.
package wire

import (
	"errors"
	"fmt"
	"math"

	"magnetite/internal/biot"
	"magnetite/internal/mathutil"
)

// ErrShape is returned for shape parameters that describe no wire.
var ErrShape = errors.New("wire: invalid shape")

// Orientation places a shape built in its local frame, where loops lie in
// the X-Y plane and helices advance along +Z.
//
// Euler holds XYZ angles in degrees, applied as Rz·Ry·Rx in the local
// frame. A non-zero Normal is applied afterwards and maps local +Z onto it.
type Orientation struct {
	Euler  [3]float64
	Normal mathutil.Vector
}

// Matrix returns the local-to-world rotation.
func (o Orientation) Matrix() mathutil.Mat3 {
	m := mathutil.EulerMat3(
		mathutil.Deg2Rad(o.Euler[0]),
		mathutil.Deg2Rad(o.Euler[1]),
		mathutil.Deg2Rad(o.Euler[2]),
	)
	if o.Normal == (mathutil.Vector{}) {
		return m
	}
	return mathutil.Mat3Mul(mathutil.AlignZ(o.Normal), m)
}

// Straight returns the segment from one point to another.
func Straight(from, to mathutil.Location) (biot.Segment, error) {
	d := to.Sub(from)
	return biot.NewSegment(from, d.Normalize(), d.Abs())
}

// Polyline joins consecutive points with segments. Repeated consecutive
// points are skipped. When closed is set the last point joins the first.
func Polyline(points []mathutil.Location, closed bool) ([]biot.Segment, error) {
	pts := make([]mathutil.Location, 0, len(points)+1)
	for _, p := range points {
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	if closed && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: polyline needs two distinct points, got %d", ErrShape, len(pts))
	}

	segs := make([]biot.Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		s, err := Straight(pts[i-1], pts[i])
		if err != nil {
			return nil, fmt.Errorf("wire: polyline edge %d: %w", i-1, err)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

// Loop approximates a circular loop by a regular polygon with the given
// number of sides. Current circulates counter-clockwise about local +Z.
func Loop(center mathutil.Location, radius float64, sides int, o Orientation) ([]biot.Segment, error) {
	if !(radius > 0) || sides < 3 {
		return nil, fmt.Errorf("%w: loop radius=%g sides=%d", ErrShape, radius, sides)
	}
	m := o.Matrix()
	pts := make([]mathutil.Location, sides)
	for k := range pts {
		phi := 2 * math.Pi * float64(k) / float64(sides)
		local := mathutil.Vector{radius * math.Cos(phi), radius * math.Sin(phi), 0}
		pts[k] = center.Offset(m.MulVec(local))
	}
	return Polyline(pts, true)
}

// Rect builds a closed rectangle of the given width (local X) and height
// (local Y), counter-clockwise about local +Z.
func Rect(center mathutil.Location, width, height float64, o Orientation) ([]biot.Segment, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: rect %gx%g", ErrShape, width, height)
	}
	m := o.Matrix()
	hw, hh := width/2, height/2
	corners := []mathutil.Vector{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
	pts := make([]mathutil.Location, len(corners))
	for i, c := range corners {
		pts[i] = center.Offset(m.MulVec(c))
	}
	return Polyline(pts, true)
}

// Helix approximates a solenoid: turns windings of the given radius,
// advancing pitch per turn along local +Z and centred on center.
func Helix(center mathutil.Location, radius, pitch, turns float64, sidesPerTurn int, o Orientation) ([]biot.Segment, error) {
	if !(radius > 0) || !(pitch > 0) || !(turns > 0) || sidesPerTurn < 3 {
		return nil, fmt.Errorf("%w: helix radius=%g pitch=%g turns=%g sides=%d",
			ErrShape, radius, pitch, turns, sidesPerTurn)
	}
	m := o.Matrix()
	n := int(math.Ceil(turns * float64(sidesPerTurn)))
	half := pitch * turns / 2
	rim := mathutil.Vector{radius, 0, 0}

	pts := make([]mathutil.Location, n+1)
	for k := range pts {
		frac := math.Min(float64(k)/float64(sidesPerTurn), turns)
		phi := 2 * math.Pi * frac
		local := mathutil.RotZ(phi).MulVec(rim)
		local[2] = pitch*frac - half
		pts[k] = center.Offset(m.MulVec(local))
	}
	return Polyline(pts, false)
}
