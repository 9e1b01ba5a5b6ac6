package qr

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	// DefaultCellSize is the side of one module in pixels.
	DefaultCellSize = 40
	// LabelBandHeight is added under the code when a label is requested.
	LabelBandHeight = 60
	// LabelInset is the distance from the top of the band to the text.
	LabelInset = 10
)

// Layout holds the pixel geometry of one render.
type Layout struct {
	Modules    int
	Cell       int
	MarginPx   int
	DataSize   int
	CanvasSize int
	// Height is CanvasSize plus the label band, if any.
	Height int
}

// NewLayout computes the geometry for a matrix of the given side.
func NewLayout(modules, cell, margin int, withLabel bool) Layout {
	if cell <= 0 {
		cell = DefaultCellSize
	}
	if margin < 0 {
		margin = 0
	}

	l := Layout{
		Modules:  modules,
		Cell:     cell,
		MarginPx: margin * cell,
		DataSize: modules * cell,
	}
	l.CanvasSize = l.DataSize + 2*l.MarginPx
	l.Height = l.CanvasSize
	if withLabel {
		l.Height += LabelBandHeight
	}
	return l
}

// HasLabelBand reports whether the canvas reserves room for a label.
func (l Layout) HasLabelBand() bool { return l.Height > l.CanvasSize }

// LabelBand returns the rectangle reserved for the label.
// It is empty when no band was requested.
func (l Layout) LabelBand() image.Rectangle {
	return image.Rect(0, l.CanvasSize, l.CanvasSize, l.Height)
}

// CellRect returns the pixel rectangle of module (row, col).
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := l.MarginPx + col*l.Cell
	y := l.MarginPx + row*l.Cell
	return image.Rect(x, y, x+l.Cell, y+l.Cell)
}

// NewCanvas allocates the output buffer, label band included, filled with
// opaque white.
func NewCanvas(l Layout) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.CanvasSize, l.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)
	return img
}
