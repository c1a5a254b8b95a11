package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// Palette is a colour ramp sampled by linear interpolation.
type Palette struct {
	stops []color.NRGBA
}

// ErrPalette is returned for palettes with fewer than two stops.
var ErrPalette = errors.New("render: palette needs at least two colours")

func NewPalette(stops ...color.NRGBA) (Palette, error) {
	if len(stops) < 2 {
		return Palette{}, ErrPalette
	}
	return Palette{stops: append([]color.NRGBA(nil), stops...)}, nil
}

// DefaultPalette is a dark-blue to yellow ramp.
func DefaultPalette() Palette {
	return Palette{stops: []color.NRGBA{
		{68, 1, 84, 255},
		{59, 82, 139, 255},
		{33, 145, 140, 255},
		{94, 201, 98, 255},
		{253, 231, 37, 255},
	}}
}

// LoadPalette reads a ramp from the first row of a .png or .tga file.
func LoadPalette(path string) (Palette, error) {
	var decode func(io.Reader) (image.Image, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		decode = png.Decode
	case ".tga":
		decode = tga.Decode
	default:
		return Palette{}, fmt.Errorf("render: palette %s: unknown extension %q", path, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Palette{}, fmt.Errorf("render: open palette %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return Palette{}, fmt.Errorf("render: decode palette %s: %w", path, err)
	}
	return PaletteFromImage(img)
}

// PaletteFromImage uses the first row of img as the ramp.
func PaletteFromImage(img image.Image) (Palette, error) {
	b := img.Bounds()
	stops := make([]color.NRGBA, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		stops = append(stops, color.NRGBAModel.Convert(img.At(x, b.Min.Y)).(color.NRGBA))
	}
	return NewPalette(stops...)
}

// At returns the colour at t, clamped to [0, 1].
func (p Palette) At(t float64) color.NRGBA {
	n := len(p.stops)
	if !(t > 0) {
		return p.stops[0]
	}
	if t >= 1 {
		return p.stops[n-1]
	}

	f := t * float64(n-1)
	i := int(f)
	d := f - float64(i)
	c0, c1 := p.stops[i], p.stops[i+1]
	return color.NRGBA{
		R: lerp8(c0.R, c1.R, d),
		G: lerp8(c0.G, c1.G, d),
		B: lerp8(c0.B, c1.B, d),
		A: lerp8(c0.A, c1.A, d),
	}
}

func lerp8(a, b uint8, d float64) uint8 {
	return clamp8(float64(a)*(1-d) + float64(b)*d)
}
