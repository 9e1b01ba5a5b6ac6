package qr

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultLabelSize is the label font size in pixels.
const DefaultLabelSize = 32

// LabelFont measures and draws label text with a single face.
// A font.Face keeps glyph caches, so access is serialized.
type LabelFont struct {
	mu   sync.Mutex
	face font.Face
}

// DefaultLabelFont uses the embedded Go Regular typeface.
func DefaultLabelFont(size float64) (*LabelFont, error) {
	return parseLabelFont(goregular.TTF, size, "goregular")
}

// LoadLabelFont reads a TrueType or OpenType file.
func LoadLabelFont(path string, size float64) (*LabelFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, path, err)
	}
	return parseLabelFont(data, size, path)
}

func parseLabelFont(data []byte, size float64, name string) (*LabelFont, error) {
	if size <= 0 {
		size = DefaultLabelSize
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, name, err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, name, err)
	}
	return &LabelFont{face: face}, nil
}

// Measure returns the advance width of text in whole pixels.
func (f *LabelFont) Measure(text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return font.MeasureString(f.face, text).Ceil()
}

// DrawLabel writes text horizontally centered in the label band of l, with
// the top of the glyphs LabelInset pixels below the band's top edge.
// It does nothing for an empty text or a layout without a band.
func (f *LabelFont) DrawLabel(dst draw.Image, text string, l Layout, c RGB) {
	if text == "" || !l.HasLabelBand() {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	width := font.MeasureString(f.face, text).Ceil()
	x := (l.CanvasSize - width) / 2
	baseline := l.LabelBand().Min.Y + LabelInset + f.face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.RGBA()),
		Face: f.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
