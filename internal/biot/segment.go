package biot

import (
	"math"

	"magnetite/internal/mathutil"
)

// Mu0Over4Pi is μ0/4π for vacuum in SI units.
const Mu0Over4Pi = 1e-7

// Segment is a straight wire carrying unit current from Start along Axis
// for Length units.
//
// The axis is not normalized. Its direction orients the current and its
// magnitude scales the induced field linearly (it cancels out of the
// projection term but not out of the cross product). Length is measured
// along the unit direction, so End is independent of |Axis|.
type Segment struct {
	start  mathutil.Location
	axis   mathutil.Vector
	length float64
}

// NewSegment validates and returns a segment. Zero axes, non-positive
// lengths and non-finite components are rejected with ErrDegenerateSegment.
func NewSegment(start mathutil.Location, axis mathutil.Vector, length float64) (Segment, error) {
	reason := ""
	switch {
	case !start.IsFinite():
		reason = "non-finite start"
	case !axis.IsFinite():
		reason = "non-finite axis"
	case math.IsNaN(length) || math.IsInf(length, 0):
		reason = "non-finite length"
	case axis == (mathutil.Vector{}):
		reason = "zero axis"
	case length <= 0:
		reason = "non-positive length"
	}
	if reason != "" {
		return Segment{}, &SegmentError{Reason: reason, Start: start, Axis: axis, Length: length}
	}
	return Segment{start: start, axis: axis, length: length}, nil
}

// MustSegment is NewSegment for literals known to be valid. It panics on error.
func MustSegment(start mathutil.Location, axis mathutil.Vector, length float64) Segment {
	s, err := NewSegment(start, axis, length)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Segment) Start() mathutil.Location { return s.start }
func (s Segment) Axis() mathutil.Vector    { return s.axis }
func (s Segment) Length() float64          { return s.length }

// End returns the far endpoint, start + unit(axis)·length.
func (s Segment) End() mathutil.Location {
	return s.start.Offset(s.axis.Normalize().Scale(s.length))
}

// InducedField returns the flux density at p produced by the segment.
//
// The result is NaN/Inf where the closed form is singular, e.g. for points
// on the segment's supporting line. Such results mean "undefined here".
func (s Segment) InducedField(p mathutil.Location) mathutil.Vector {
	v, _ := s.terms(p)
	return v
}

// Terms are the intermediate quantities of one evaluation.
type Terms struct {
	A     float64 // 2·(r0·axis)/|axis|
	B     float64 // |r0|²
	Delta float64 // definite integral over [0, length]
}

func (s Segment) terms(p mathutil.Location) (mathutil.Vector, Terms) {
	r0 := p.Sub(s.start)
	a := 2 * r0.Dot(s.axis) / s.axis.Abs()
	b := r0[0]*r0[0] + r0[1]*r0[1] + r0[2]*r0[2]
	d := intres(s.length, a, b) - intres(0, a, b)
	return s.axis.Cross(r0).Scale(Mu0Over4Pi * d), Terms{A: a, B: b, Delta: d}
}

// intres is the antiderivative of (x² − a·x + b)^(−3/2) in x, without the
// constant of integration.
func intres(x, a, b float64) float64 {
	return 2 * (2*x - a) / ((4*b - a*a) * math.Sqrt(x*(x-a)+b))
}
