package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultForeground is used when no foreground color is given.
const DefaultForeground = "#000000"

// TintWeight is how far logo pixels are pulled toward the foreground color.
const TintWeight = 0.7

// RGB is an opaque color parsed from a hex string.
type RGB struct {
	R, G, B uint8
}

// RGBA returns the color as a fully opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexToRGB parses "#RRGGBB" or "RRGGBB".
func HexToRGB(hex string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColor, hex)
	}

	r, err1 := strconv.ParseUint(v[0:2], 16, 8)
	g, err2 := strconv.ParseUint(v[2:4], 16, 8)
	b, err3 := strconv.ParseUint(v[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return RGB{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColor, hex)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Blend interpolates a single channel: original*(1-weight) + target*weight,
// clamped to [0,255] and truncated.
func Blend(original, target uint8, weight float64) uint8 {
	v := float64(original)*(1-weight) + float64(target)*weight
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Tint blends the RGB channels of c toward target and keeps c's alpha.
// c is non-premultiplied.
func Tint(c color.NRGBA, target RGB, weight float64) color.NRGBA {
	return color.NRGBA{
		R: Blend(c.R, target.R, weight),
		G: Blend(c.G, target.G, weight),
		B: Blend(c.B, target.B, weight),
		A: c.A,
	}
}
