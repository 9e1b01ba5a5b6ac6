package qr_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstyle/internal/qr"
)

var white = color.RGBA{255, 255, 255, 255}

// checker sets every module whose row+col is even, plus a solid band on
// row 10 to exercise horizontally adjacent modules.
func checker(r, c int) bool {
	return (r+c)%2 == 0 || r == 10
}

func drawn(t *testing.T, m *qr.Matrix, opts qr.Options, fg qr.RGB) (*image.RGBA, qr.Layout) {
	t.Helper()
	l := qr.NewLayout(m.Size(), 20, opts.Margin, false)
	img := qr.NewCanvas(l)
	qr.DrawModules(img, m, l, opts, fg)
	return img, l
}

func TestDrawModulesSquare(t *testing.T) {
	t.Parallel()

	fg := qr.RGB{0x1A, 0x73, 0xE8}
	m := mustMatrix(t, grid(21, checker))
	img, l := drawn(t, m, qr.Options{Style: qr.StyleSquare, Margin: 1}, fg)

	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			want := white
			if m.IsSet(row, col) {
				want = fg.RGBA()
			}
			rect := l.CellRect(row, col)
			for y := rect.Min.Y; y < rect.Max.Y; y++ {
				for x := rect.Min.X; x < rect.Max.X; x++ {
					if got := img.RGBAAt(x, y); got != want {
						t.Fatalf("module (%d,%d) pixel (%d,%d) = %v, want %v", row, col, x, y, got, want)
					}
				}
			}
		}
	}

	// Margin stays white.
	for x := 0; x < l.CanvasSize; x++ {
		assert.Equal(t, white, img.RGBAAt(x, 0))
		assert.Equal(t, white, img.RGBAAt(x, l.CanvasSize-1))
	}

	// Row 10 is a continuous bar without gaps.
	y := l.CellRect(10, 0).Min.Y + l.Cell/2
	for x := l.MarginPx; x < l.MarginPx+l.DataSize; x++ {
		require.Equal(t, fg.RGBA(), img.RGBAAt(x, y), "x=%d", x)
	}
}

func TestDrawModulesDots(t *testing.T) {
	t.Parallel()

	fg := qr.RGB{0, 0, 0}
	m := mustMatrix(t, grid(21, checker))
	img, l := drawn(t, m, qr.Options{Style: qr.StyleDots}, fg)

	radius := float64(l.Cell)/2 - 2
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			rect := l.CellRect(row, col)
			cx := float64(rect.Min.X) + float64(l.Cell)/2
			cy := float64(rect.Min.Y) + float64(l.Cell)/2
			for y := rect.Min.Y; y < rect.Max.Y; y++ {
				for x := rect.Min.X; x < rect.Max.X; x++ {
					got := img.RGBAAt(x, y)
					inside := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) < radius
					if m.IsSet(row, col) && inside {
						require.Equal(t, fg.RGBA(), got, "module (%d,%d) pixel (%d,%d)", row, col, x, y)
					} else {
						require.Equal(t, white, got, "module (%d,%d) pixel (%d,%d)", row, col, x, y)
					}
				}
			}
		}
	}
}

func TestDrawModulesRoundedDiffersFromDots(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, grid(21, checker))
	dots, _ := drawn(t, m, qr.Options{Style: qr.StyleDots}, qr.RGB{})
	rounded, _ := drawn(t, m, qr.Options{Style: qr.StyleRounded}, qr.RGB{})
	assert.NotEqual(t, dots.Pix, rounded.Pix)
}

func TestDrawModulesSolidFinders(t *testing.T) {
	t.Parallel()

	fg := qr.RGB{10, 20, 30}
	m := mustMatrix(t, grid(21, func(int, int) bool { return true }))

	styled, l := drawn(t, m, qr.Options{Style: qr.StyleDots}, fg)
	solid, _ := drawn(t, m, qr.Options{Style: qr.StyleDots, SolidFinders: true}, fg)

	finder := l.CellRect(0, 0).Min
	data := l.CellRect(10, 10).Min

	// By default finders follow the style: the cell corner stays white.
	assert.Equal(t, white, styled.RGBAAt(finder.X, finder.Y))
	assert.Equal(t, fg.RGBA(), solid.RGBAAt(finder.X, finder.Y))

	// Data modules are unaffected by SolidFinders.
	assert.Equal(t, white, solid.RGBAAt(data.X, data.Y))

	topRight := l.CellRect(0, 20).Min
	bottomLeft := l.CellRect(20, 0).Min
	assert.Equal(t, fg.RGBA(), solid.RGBAAt(topRight.X, topRight.Y))
	assert.Equal(t, fg.RGBA(), solid.RGBAAt(bottomLeft.X, bottomLeft.Y))
}

func TestDrawModulesIsIdempotent(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, grid(21, checker))
	for _, style := range []qr.Style{qr.StyleSquare, qr.StyleDots, qr.StyleRounded} {
		a, l := drawn(t, m, qr.Options{Style: style, Margin: 2}, qr.RGB{1, 2, 3})
		b, _ := drawn(t, m, qr.Options{Style: style, Margin: 2}, qr.RGB{1, 2, 3})
		assert.Equal(t, a.Pix, b.Pix, style.String())

		// Drawing twice onto the same canvas changes nothing.
		qr.DrawModules(a, m, l, qr.Options{Style: style, Margin: 2}, qr.RGB{1, 2, 3})
		assert.Equal(t, a.Pix, b.Pix, style.String())
	}
}
