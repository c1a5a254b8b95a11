// Package biot evaluates the magnetostatic field of straight, unit-current
// wire segments with the closed-form Biot–Savart integral.
package biot

import "magnetite/internal/mathutil"

// Field is an ordered collection of segments whose contributions superpose.
//
// A Field is built by appending segments and then queried. Appends are not
// safe for concurrent use; once construction is done, EvalAtPoint may be
// called from any number of goroutines without locking.
type Field struct {
	segments []Segment
	tracer   Tracer
}

// Option configures a Field.
type Option func(*Field)

// WithTracer installs a hook that observes the intermediate terms of every
// segment evaluation. A nil tracer disables tracing, which is the default.
func WithTracer(t Tracer) Option {
	return func(f *Field) {
		f.tracer = t
	}
}

// NewField returns an empty field. It evaluates to the zero vector everywhere.
func NewField(opts ...Option) *Field {
	f := &Field{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) AddSegment(s Segment) {
	f.segments = append(f.segments, s)
}

func (f *Field) AddSegments(segs ...Segment) {
	f.segments = append(f.segments, segs...)
}

// Len returns the number of segments.
func (f *Field) Len() int { return len(f.segments) }

// Segments returns a copy of the segments in insertion order.
func (f *Field) Segments() []Segment {
	out := make([]Segment, len(f.segments))
	copy(out, f.segments)
	return out
}

// EvalAtPoint returns the sum of every segment's induced field at p.
// A non-finite contribution from any segment makes the sum non-finite.
func (f *Field) EvalAtPoint(p mathutil.Location) mathutil.Vector {
	var res mathutil.Vector
	if f.tracer == nil {
		for _, s := range f.segments {
			res.Accumulate(s.InducedField(p))
		}
		return res
	}
	for i, s := range f.segments {
		v, terms := s.terms(p)
		f.tracer.TraceTerms(TermsEvent{Segment: i, Point: p, Terms: terms, Field: v})
		res.Accumulate(v)
	}
	return res
}

// EvalPoints evaluates the field at each point in order, appending results
// to dst[:0]. It is the sequential form of a grid evaluation.
func (f *Field) EvalPoints(points []mathutil.Location, dst []mathutil.Vector) []mathutil.Vector {
	dst = dst[:0]
	for _, p := range points {
		dst = append(dst, f.EvalAtPoint(p))
	}
	return dst
}
