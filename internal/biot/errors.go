package biot

import (
	"errors"
	"fmt"

	"magnetite/internal/mathutil"
)

// ErrDegenerateSegment is returned when a segment cannot carry a
// well-defined field: zero axis, non-positive length or non-finite input.
var ErrDegenerateSegment = errors.New("degenerate segment")

// SegmentError describes why NewSegment rejected its input.
//
// errors.Is(err, ErrDegenerateSegment) holds for every SegmentError.
type SegmentError struct {
	Reason string
	Start  mathutil.Location
	Axis   mathutil.Vector
	Length float64
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("degenerate segment (%s): start=%v axis=%v length=%g",
		e.Reason, e.Start, e.Axis, e.Length)
}

func (e *SegmentError) Unwrap() error { return ErrDegenerateSegment }
