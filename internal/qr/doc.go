// Package qr renders QR codes as styled PNG images.
//
// A render walks a fixed pipeline: the payload is encoded into a module
// matrix, a white canvas is allocated from the matrix size, the margin and
// the cell size, every dark module is painted as a square, dot or rounded
// shape, an optional logo is tinted toward the foreground color and pasted
// at the center on a white pad, an optional label is drawn in a band below
// the code, and the result is written to a uniquely named PNG file.
//
// Basic usage:
//
//	r, err := qr.NewRenderer(qr.WithOutputDir("tmp"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	path, err := r.Render("https://example.com", "#1A73E8", "", qr.Options{
//		Style:  qr.StyleDots,
//		Margin: 1,
//		Level:  qr.LevelQ,
//	})
//
// The logo file is not removed by Render. Callers that consumed an uploaded
// logo call Cleanup once the render succeeded.
//
// Logos cover whatever modules lie beneath them. Pick LevelQ or LevelH when
// a logo is present so the symbol stays decodable.
package qr
