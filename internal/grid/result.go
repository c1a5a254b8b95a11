package grid

import (
	"math"

	"magnetite/internal/mathutil"

	"github.com/RoaringBitmap/roaring/v2"
)

// Result holds one field sample per grid point, in Grid.Point order.
type Result struct {
	Grid  Grid
	Field []mathutil.Vector

	// Undefined holds the indices of samples containing NaN or ±Inf.
	Undefined *roaring.Bitmap
}

// At returns the sample at column col and row row.
func (r *Result) At(col, row int) mathutil.Vector {
	return r.Field[row*r.Grid.Cols+col]
}

// Defined reports whether sample i is finite.
func (r *Result) Defined(i int) bool {
	return r.Undefined == nil || !r.Undefined.Contains(uint32(i))
}

// Stats summarises |B| over the defined samples.
type Stats struct {
	Defined   int     `json:"defined"`
	Undefined int     `json:"undefined"`
	MinAbs    float64 `json:"min_abs"`
	MaxAbs    float64 `json:"max_abs"`
	MeanAbs   float64 `json:"mean_abs"`
}

// Stats computes magnitude statistics. With no defined samples every
// magnitude field is zero.
func (r *Result) Stats() Stats {
	s := Stats{MinAbs: math.Inf(1)}
	sum := 0.0
	for i, v := range r.Field {
		if !r.Defined(i) {
			s.Undefined++
			continue
		}
		a := v.Abs()
		s.Defined++
		sum += a
		s.MinAbs = math.Min(s.MinAbs, a)
		s.MaxAbs = math.Max(s.MaxAbs, a)
	}
	if s.Defined == 0 {
		s.MinAbs = 0
		return s
	}
	s.MeanAbs = sum / float64(s.Defined)
	return s
}
