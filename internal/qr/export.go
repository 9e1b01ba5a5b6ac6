package qr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// NameFunc returns the file name for the next output image.
type NameFunc func() string

// DefaultName combines a nanosecond timestamp with a random suffix so that
// renders started in the same instant still get distinct names.
func DefaultName() string {
	return fmt.Sprintf("qr-%d-%s.png", time.Now().UnixNano(), uuid.NewString()[:8])
}

// Exporter writes finished images as PNG files into a directory.
type Exporter struct {
	dir  string
	name NameFunc
}

// NewExporter returns an Exporter writing into dir. A nil name uses DefaultName.
func NewExporter(dir string, name NameFunc) *Exporter {
	if name == nil {
		name = DefaultName
	}
	return &Exporter{dir: dir, name: name}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string { return e.dir }

// Export encodes img to a new file and returns its path. The image is
// written to a temporary file first and renamed, so a failed export leaves
// nothing behind. The directory must exist.
func (e *Exporter) Export(img image.Image) (string, error) {
	out := filepath.Join(e.dir, e.name())

	tmp, err := os.CreateTemp(e.dir, ".qr-*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: encode png: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmpName, out); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	return out, nil
}
