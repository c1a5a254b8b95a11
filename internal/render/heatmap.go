package render

import (
	"image"
	"math"

	"magnetite/internal/grid"
)

// HeatmapOptions controls how magnitudes map onto the palette.
type HeatmapOptions struct {
	// Log maps log10|B| instead of |B|. Zero magnitudes take the
	// lowest colour.
	Log bool
}

// Heatmap renders |B| of every sample as one pixel, with row 0 at the
// bottom so the image reads like a plot. Undefined samples are transparent.
func Heatmap(res *grid.Result, pal Palette, opts HeatmapOptions) *image.NRGBA {
	g := res.Grid
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))

	scale := func(a float64) float64 { return a }
	if opts.Log {
		scale = func(a float64) float64 {
			if a <= 0 {
				return math.Inf(-1)
			}
			return math.Log10(a)
		}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range res.Field {
		if !res.Defined(i) {
			continue
		}
		s := scale(v.Abs())
		if math.IsInf(s, -1) {
			continue
		}
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	span := hi - lo

	for i, v := range res.Field {
		if !res.Defined(i) {
			continue
		}
		t := 0.0
		if span > 0 {
			t = (scale(v.Abs()) - lo) / span
		}
		x, y := i%g.Cols, g.Rows-1-i/g.Cols
		img.SetNRGBA(x, y, pal.At(t))
	}
	return img
}
