package qr_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cristianadrielbraun/qrstyle/internal/qr"
)

func TestDotSprite(t *testing.T) {
	t.Parallel()

	const cell = 40
	fg := qr.RGB{0x1A, 0x73, 0xE8}
	s := qr.DotSprite(cell, fg)
	assert.Equal(t, image.Rect(0, 0, cell, cell), s.Bounds())

	radius := float64(cell)/2 - 2
	painted := 0
	for y := 0; y < cell; y++ {
		for x := 0; x < cell; x++ {
			c := s.RGBAAt(x, y)
			d := math.Hypot(float64(x)+0.5-cell/2, float64(y)+0.5-cell/2)
			if d < radius {
				assert.Equal(t, fg.RGBA(), c, "(%d,%d) inside the disk", x, y)
				painted++
			} else {
				assert.Zero(t, c.A, "(%d,%d) outside the disk", x, y)
			}
		}
	}
	// Roughly pi*r^2.
	assert.InDelta(t, math.Pi*radius*radius, float64(painted), 60)

	// A 2 pixel ring along every edge stays transparent.
	for i := 0; i < cell; i++ {
		for _, p := range []image.Point{{i, 0}, {i, 1}, {0, i}, {1, i}, {i, cell - 1}, {cell - 1, i}} {
			assert.Zero(t, s.RGBAAt(p.X, p.Y).A, "%v", p)
		}
	}
}

func TestDotSpriteTooSmall(t *testing.T) {
	t.Parallel()

	s := qr.DotSprite(4, qr.RGB{})
	for _, v := range s.Pix {
		assert.Zero(t, v)
	}
}

func TestRoundedSprite(t *testing.T) {
	t.Parallel()

	const cell = 40
	fg := qr.RGB{200, 0, 0}
	s := qr.RoundedSprite(cell, fg)

	// Inset edges are transparent.
	for i := 0; i < cell; i++ {
		assert.Zero(t, s.RGBAAt(i, 0).A)
		assert.Zero(t, s.RGBAAt(i, 1).A)
		assert.Zero(t, s.RGBAAt(0, i).A)
		assert.Zero(t, s.RGBAAt(cell-1, i).A)
	}

	// Straight edges are painted, corners are cut.
	assert.Equal(t, fg.RGBA(), s.RGBAAt(cell/2, 2))
	assert.Equal(t, fg.RGBA(), s.RGBAAt(2, cell/2))
	assert.Equal(t, fg.RGBA(), s.RGBAAt(cell/2, cell/2))
	assert.Zero(t, s.RGBAAt(2, 2).A)
	assert.Zero(t, s.RGBAAt(cell-3, cell-3).A)

	// The rounded square covers more than the dot.
	dot := qr.DotSprite(cell, fg)
	assert.Greater(t, opaque(s), opaque(dot))
}

func opaque(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			n++
		}
	}
	return n
}
