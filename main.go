package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/config"
	"github.com/cristianadrielbraun/qrstyle/internal/handlers"
	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/publish"
	"github.com/cristianadrielbraun/qrstyle/internal/qr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("failed to create output directory", logger.Path(cfg.OutputDir), logger.Error(err))
		os.Exit(1)
	}

	renderer, err := qr.NewRenderer(
		qr.WithEncoder(qr.EncoderByName(cfg.Encoder)),
		qr.WithOutputDir(cfg.OutputDir),
		qr.WithCellSize(cfg.CellSize),
		qr.WithFontFile(cfg.FontPath, cfg.FontSize),
		qr.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to create renderer", logger.Error(err))
		os.Exit(1)
	}

	opts := []handlers.Option{
		handlers.WithUploadDir(cfg.UploadDir),
		handlers.WithMaxUpload(cfg.MaxUploadBytes),
		handlers.WithLogger(log),
	}
	if cfg.S3.Enabled() {
		pub, err := publish.NewS3(context.Background(), cfg.S3)
		if err != nil {
			log.Error("failed to create S3 publisher", logger.Error(err))
			os.Exit(1)
		}
		opts = append(opts, handlers.WithPublisher(pub))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(handlers.RequestLogger(log))
	r.Use(gin.Recovery())

	handlers.New(renderer, opts...).Register(r)

	log.Info("qrstyle listening", slog.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
