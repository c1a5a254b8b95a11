package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales img to w×h. Smooth resampling runs Catmull-Rom on
// premultiplied alpha; otherwise each cell becomes a flat block.
func Resize(img *image.NRGBA, w, h int, smooth bool) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	if !smooth {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		return dst
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(dst)
}

// premultiply copies img into an alpha-premultiplied RGBA with the same bounds.
func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		dst := out.Pix[out.PixOffset(b.Min.X, y):out.PixOffset(b.Max.X, y)]
		for i := 0; i < len(src); i += 4 {
			a := float64(src[i+3]) / 255
			dst[i] = clamp8(float64(src[i]) * a)
			dst[i+1] = clamp8(float64(src[i+1]) * a)
			dst[i+2] = clamp8(float64(src[i+2]) * a)
			dst[i+3] = src[i+3]
		}
	}
	return out
}

// unpremultiply is the inverse of premultiply. Nearly transparent pixels
// keep black colour channels.
func unpremultiply(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		dst := out.Pix[out.PixOffset(b.Min.X, y):out.PixOffset(b.Max.X, y)]
		for i := 0; i < len(src); i += 4 {
			a := src[i+3]
			if a > 1 {
				inv := 255 / float64(a)
				dst[i] = clamp8(float64(src[i]) * inv)
				dst[i+1] = clamp8(float64(src[i+1]) * inv)
				dst[i+2] = clamp8(float64(src[i+2]) * inv)
			}
			dst[i+3] = a
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
