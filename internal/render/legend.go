package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	legendBG = color.NRGBA{0, 0, 0, 160}
	legendFG = color.NRGBA{255, 255, 255, 255}
)

// DrawLegend writes lines of text in the top-left corner over a
// translucent backdrop. Lines that do not fit are clipped.
func DrawLegend(img *image.NRGBA, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()
	const pad = 4

	width := 0
	d := &font.Drawer{Dst: img, Src: image.NewUniform(legendFG), Face: face}
	for _, l := range lines {
		if w := d.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}

	box := image.Rect(0, 0, width+2*pad, len(lines)*lineH+2*pad).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(legendBG), image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(pad, pad+ascent+i*lineH)
		d.DrawString(l)
	}
}
