package qr

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
)

// DefaultOutputDir is where renders go when no directory is configured.
const DefaultOutputDir = "tmp"

// Renderer is the render entry point. It holds no per-render state and is
// safe for concurrent use.
type Renderer struct {
	encoder  Encoder
	exporter *Exporter
	cell     int
	log      *slog.Logger

	fontPath string
	fontSize float64
	fontOnce sync.Once
	font     *LabelFont
	fontErr  error
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEncoder replaces the default yeqown encoder.
func WithEncoder(enc Encoder) Option {
	return func(r *Renderer) {
		if enc != nil {
			r.encoder = enc
		}
	}
}

// WithOutputDir sets the directory output files are written to.
func WithOutputDir(dir string) Option {
	return func(r *Renderer) {
		r.exporter = NewExporter(dir, r.exporter.name)
	}
}

// WithNameFunc sets how output files are named.
func WithNameFunc(fn NameFunc) Option {
	return func(r *Renderer) {
		r.exporter = NewExporter(r.exporter.dir, fn)
	}
}

// WithCellSize sets the module side in pixels.
func WithCellSize(px int) Option {
	return func(r *Renderer) {
		r.cell = px
	}
}

// WithFontFile draws labels with a TrueType or OpenType file instead of the
// embedded Go Regular face. The file is read on the first labelled render.
func WithFontFile(path string, size float64) Option {
	return func(r *Renderer) {
		r.fontPath = path
		r.fontSize = size
	}
}

// WithLabelFont uses an already loaded font.
func WithLabelFont(f *LabelFont) Option {
	return func(r *Renderer) {
		r.font = f
		r.fontOnce.Do(func() {})
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRenderer returns a Renderer with the given options applied.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		encoder:  YeqownEncoder{},
		exporter: NewExporter(DefaultOutputDir, nil),
		cell:     DefaultCellSize,
		fontSize: DefaultLabelSize,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cell <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", r.cell)
	}
	r.log = r.log.With(logger.Component("qr"))
	return r, nil
}

// OutputDir returns the directory output files are written to.
func (r *Renderer) OutputDir() string { return r.exporter.Dir() }

// Render encodes payload, draws it with fgHex (black when empty), the
// optional logo at logoPath and opts, and writes a PNG. It returns the path
// of the new file. Nothing is written when any stage fails.
func (r *Renderer) Render(payload, fgHex, logoPath string, opts Options) (string, error) {
	start := time.Now()

	img, err := r.Compose(payload, fgHex, logoPath, opts)
	if err != nil {
		r.log.Warn("render failed", logger.Error(err), logger.Elapsed(start))
		return "", err
	}

	path, err := r.exporter.Export(img)
	if err != nil {
		r.log.Error("export failed", logger.Error(err))
		return "", err
	}

	b := img.Bounds()
	r.log.Info("render finished",
		logger.Path(path),
		logger.Style(opts.Style.String()),
		logger.Size(b.Dx(), b.Dy()),
		logger.Elapsed(start),
	)
	return path, nil
}

// Compose runs every stage except the export and returns the image.
func (r *Renderer) Compose(payload, fgHex, logoPath string, opts Options) (*image.RGBA, error) {
	if fgHex == "" {
		fgHex = DefaultForeground
	}
	fg, err := HexToRGB(fgHex)
	if err != nil {
		return nil, err
	}

	m, err := r.encoder.Encode(payload, opts.Level)
	if err != nil {
		return nil, err
	}
	r.log.Debug("payload encoded", logger.Stage("encode"), logger.Modules(m.Size()), slog.String("level", opts.Level.String()))

	// Resolve the font before drawing so a missing font fails fast.
	var lf *LabelFont
	if opts.Label != "" {
		if lf, err = r.labelFont(); err != nil {
			return nil, err
		}
	}

	l := NewLayout(m.Size(), r.cell, opts.Margin, opts.Label != "")
	canvas := NewCanvas(l)
	DrawModules(canvas, m, l, opts, fg)
	r.log.Debug("modules drawn", logger.Stage("modules"), logger.Style(opts.Style.String()))

	if logoPath != "" {
		if err := DrawLogo(canvas, logoPath, l.CanvasSize, fg); err != nil {
			return nil, err
		}
		r.log.Debug("logo composited", logger.Stage("logo"), logger.Path(logoPath))
	}

	if lf != nil {
		lf.DrawLabel(canvas, opts.Label, l, fg)
		r.log.Debug("label drawn", logger.Stage("label"))
	}
	return canvas, nil
}

// Cleanup removes a logo file consumed by a successful render. A file that
// is already gone is not an error.
func (r *Renderer) Cleanup(logoPath string) error {
	if logoPath == "" {
		return nil
	}
	if err := os.Remove(logoPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.log.Warn("logo cleanup failed", logger.Path(logoPath), logger.Error(err))
		return fmt.Errorf("remove logo: %w", err)
	}
	return nil
}

func (r *Renderer) labelFont() (*LabelFont, error) {
	r.fontOnce.Do(func() {
		if r.fontPath != "" {
			r.font, r.fontErr = LoadLabelFont(r.fontPath, r.fontSize)
			return
		}
		r.font, r.fontErr = DefaultLabelFont(r.fontSize)
	})
	return r.font, r.fontErr
}
