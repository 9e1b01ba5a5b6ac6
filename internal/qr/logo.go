package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	// LogoFraction caps both logo dimensions relative to the canvas side.
	LogoFraction = 0.2
	// LogoPaddingFraction sizes the white pad around the logo.
	LogoPaddingFraction = 0.03
)

// LogoBox returns the largest side a logo may have on a canvas of the given size.
func LogoBox(canvasSize int) int {
	return int(float64(canvasSize) * LogoFraction)
}

// LogoPadding returns how many pixels the pad adds on each axis.
func LogoPadding(canvasSize int) int {
	return int(math.Ceil(float64(canvasSize) * LogoPaddingFraction))
}

// FitSize scales w x h so that the larger side equals box, keeping the
// aspect ratio. Both results are at least 1.
func FitSize(w, h, box int) (int, int) {
	if w <= 0 || h <= 0 || box <= 0 {
		return 1, 1
	}
	scale := float64(box) / float64(max(w, h))
	fw := int(math.Round(float64(w) * scale))
	fh := int(math.Round(float64(h) * scale))
	return max(fw, 1), max(fh, 1)
}

// LoadLogo reads a logo and returns it fitted into a box x box square.
// PNG, JPEG, GIF, BMP and TIFF are decoded and resampled; SVG files are
// rasterized directly at the fitted size.
func LoadLogo(path string, box int) (*image.NRGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVGLogo(path, box)
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: logo %s: %v", ErrAssetLoad, path, err)
	}
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), box)
	return imaging.Resize(src, w, h, imaging.Lanczos), nil
}

func loadSVGLogo(path string, box int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: logo %s: %v", ErrAssetLoad, path, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("%w: logo %s: %v", ErrAssetLoad, path, err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		vw, vh = float64(box), float64(box)
	}
	w, h := FitSize(int(math.Round(vw)), int(math.Round(vh)), box)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return imaging.Clone(img), nil
}

// TintLogo pulls every pixel's RGB toward fg by weight. Alpha is kept.
func TintLogo(img *image.NRGBA, fg RGB, weight float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, Tint(img.NRGBAAt(x, y), fg, weight))
		}
	}
}

// PadLogo returns logo centered on an opaque white image that is padding
// pixels larger on each axis.
func PadLogo(logo image.Image, padding int) *image.NRGBA {
	b := logo.Bounds()
	padded := imaging.New(b.Dx()+padding, b.Dy()+padding, color.NRGBA{255, 255, 255, 255})
	off := padding / 2
	draw.Draw(padded, image.Rect(off, off, off+b.Dx(), off+b.Dy()), logo, b.Min, draw.Over)
	return padded
}

// CompositeLogo draws logo centered on the square part of dst, using
// source-over.
func CompositeLogo(dst *image.RGBA, logo image.Image, canvasSize int) {
	b := logo.Bounds()
	x := (canvasSize - b.Dx()) / 2
	y := (canvasSize - b.Dy()) / 2
	draw.Draw(dst, image.Rect(x, y, x+b.Dx(), y+b.Dy()), logo, b.Min, draw.Over)
}

// DrawLogo runs the whole logo stage: load, fit, tint, pad and composite.
func DrawLogo(dst *image.RGBA, path string, canvasSize int, fg RGB) error {
	logo, err := LoadLogo(path, LogoBox(canvasSize))
	if err != nil {
		return err
	}
	TintLogo(logo, fg, TintWeight)
	CompositeLogo(dst, PadLogo(logo, LogoPadding(canvasSize)), canvasSize)
	return nil
}
