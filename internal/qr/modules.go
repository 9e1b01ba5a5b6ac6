package qr

import (
	"image"
	"image/draw"
)

// DrawModules paints every dark module of m onto dst.
//
// Squares fill the whole cell. Dots and rounded modules stamp a sprite built
// once for this call with source-over, so the background shows around the
// shape. Cell rectangles never overlap, which makes the result independent
// of drawing order.
func DrawModules(dst *image.RGBA, m *Matrix, l Layout, opts Options, fg RGB) {
	solid := &image.Uniform{C: fg.RGBA()}
	sprite := spriteFor(opts.Style, l.Cell, fg)

	n := m.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !m.IsSet(row, col) {
				continue
			}

			rect := l.CellRect(row, col)
			if sprite == nil || (opts.SolidFinders && m.Role(row, col) == RoleFinder) {
				draw.Draw(dst, rect, solid, image.Point{}, draw.Src)
				continue
			}
			draw.Draw(dst, rect, sprite, image.Point{}, draw.Over)
		}
	}
}
