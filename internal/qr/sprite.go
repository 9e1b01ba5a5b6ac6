package qr

import (
	"image"
	"math"
)

// spriteInset keeps neighbouring shapes from touching.
const spriteInset = 2

// DotSprite returns a cell x cell image holding an opaque disk of radius
// cell/2 - 2 around the cell center. Pixels outside the disk are fully
// transparent. There is no anti-aliasing.
func DotSprite(cell int, c RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	center := float64(cell) / 2
	radius := center - spriteInset
	if radius <= 0 {
		return img
	}

	col := c.RGBA()
	for y := 0; y < cell; y++ {
		for x := 0; x < cell; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			if math.Hypot(dx, dy) < radius {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img
}

// RoundedSprite returns a cell x cell image holding an opaque rounded
// square inset by 2 pixels with a corner radius of a quarter cell.
func RoundedSprite(cell int, c RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell, cell))
	lo := float64(spriteInset)
	hi := float64(cell - spriteInset)
	if hi <= lo {
		return img
	}
	r := float64(cell) / 4

	col := c.RGBA()
	for y := 0; y < cell; y++ {
		for x := 0; x < cell; x++ {
			if insideRoundedRect(float64(x)+0.5, float64(y)+0.5, lo, lo, hi, hi, r) {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img
}

// insideRoundedRect is a hit test against the rectangle [left,right) x
// [top,bottom) with corners of radius r.
func insideRoundedRect(x, y, left, top, right, bottom, r float64) bool {
	if x < left || x >= right || y < top || y >= bottom {
		return false
	}
	if r <= 0 {
		return true
	}

	// Distance to the nearest corner circle center, per axis.
	cx := math.Max(left+r-x, math.Max(x-(right-r), 0))
	cy := math.Max(top+r-y, math.Max(y-(bottom-r), 0))
	return cx*cx+cy*cy <= r*r
}

// spriteFor returns the sprite stamped for style, or nil for squares.
func spriteFor(style Style, cell int, c RGB) *image.RGBA {
	switch style {
	case StyleDots:
		return DotSprite(cell, c)
	case StyleRounded:
		return RoundedSprite(cell, c)
	default:
		return nil
	}
}
