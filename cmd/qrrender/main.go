// Command qrrender renders a single styled QR code to a PNG file.
//
//	qrrender https://example.com --fg '#1A73E8' --style dots --logo logo.png --ec H
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrstyle/internal/config"
	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/qr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	fg           string
	logo         string
	style        string
	label        string
	margin       int
	level        string
	out          string
	encoder      string
	cellSize     int
	fontPath     string
	solidFinders bool
	keepLogo     bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		// Fall back to flag defaults; the error is reported by the command.
		cfg = config.Config{OutputDir: qr.DefaultOutputDir, CellSize: qr.DefaultCellSize, Encoder: "yeqown", FontSize: qr.DefaultLabelSize}
	}

	f := &flags{}
	cmd := &cobra.Command{
		Use:          "qrrender <payload>",
		Short:        "Render a styled QR code as PNG",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err != nil {
				return err
			}
			return run(cmd, args[0], f, cfg.FontSize)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.fg, "fg", qr.DefaultForeground, "foreground color as #RRGGBB")
	fs.StringVar(&f.logo, "logo", "", "logo image to place at the center")
	fs.StringVar(&f.style, "style", "square", "module style: square, dots or rounded")
	fs.StringVar(&f.label, "label", "", "text drawn under the code")
	fs.IntVar(&f.margin, "margin", qr.DefaultMargin, "quiet zone in modules")
	fs.StringVar(&f.level, "ec", "M", "error correction level: L, M, Q or H")
	fs.StringVarP(&f.out, "out", "o", cfg.OutputDir, "output directory")
	fs.StringVar(&f.encoder, "encoder", cfg.Encoder, "encoder: yeqown or skip2")
	fs.IntVar(&f.cellSize, "cell", cfg.CellSize, "module size in pixels")
	fs.StringVar(&f.fontPath, "font", cfg.FontPath, "TrueType/OpenType font for the label")
	fs.BoolVar(&f.solidFinders, "solid-finders", false, "draw position markers as solid squares")
	fs.BoolVar(&f.keepLogo, "keep-logo", true, "keep the logo file after rendering")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every pipeline stage")

	return cmd
}

func run(cmd *cobra.Command, payload string, f *flags, fontSize float64) error {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), "text", level)

	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	r, err := qr.NewRenderer(
		qr.WithEncoder(qr.EncoderByName(f.encoder)),
		qr.WithOutputDir(f.out),
		qr.WithCellSize(f.cellSize),
		qr.WithFontFile(f.fontPath, fontSize),
		qr.WithLogger(log),
	)
	if err != nil {
		return err
	}

	opts := qr.Options{
		Style:        qr.ParseStyle(f.style),
		Label:        f.label,
		Margin:       f.margin,
		Level:        qr.ParseLevel(f.level),
		SolidFinders: f.solidFinders,
	}
	path, err := r.Render(payload, f.fg, f.logo, opts)
	if err != nil {
		return err
	}
	if !f.keepLogo {
		if err := r.Cleanup(f.logo); err != nil {
			log.Warn("failed to remove logo", logger.Error(err))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
