package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output image encoding.
type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
)

// ParseFormat accepts "webp" (the default for "") or "png".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return WebP, nil
	case WebP, PNG:
		return f, nil
	}
	return "", fmt.Errorf("render: unknown format %q", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Encode writes img to w. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("render: webp encode: %w", err)
		}
		return nil
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("render: png encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("render: unknown format %q", f)
}
