package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/qr"
)

// DefaultMaxUpload caps logo uploads when no limit is configured.
const DefaultMaxUpload = 5 << 20

// Publisher copies a rendered file somewhere public and returns its URL.
type Publisher interface {
	Publish(ctx context.Context, path string) (string, error)
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	renderer  *qr.Renderer
	publisher Publisher
	uploadDir string
	maxUpload int64
	log       *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithPublisher publishes every rendered image after it is produced.
func WithPublisher(p Publisher) Option {
	return func(h *Handler) { h.publisher = p }
}

// WithUploadDir sets where uploaded logos are stored until rendered.
func WithUploadDir(dir string) Option {
	return func(h *Handler) { h.uploadDir = dir }
}

// WithMaxUpload limits the size of an uploaded logo in bytes.
func WithMaxUpload(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUpload = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// New returns a new Handler instance.
func New(r *qr.Renderer, opts ...Option) *Handler {
	h := &Handler{
		renderer:  r,
		uploadDir: "uploads",
		maxUpload: DefaultMaxUpload,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.POST("/qr", h.QRUploadHandler)
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RequestLogger logs one line per request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			logger.Method(c.Request.Method),
			logger.Path(c.Request.URL.Path),
			logger.StatusCode(c.Writer.Status()),
			logger.Latency(time.Since(start)),
			logger.ClientIP(c.ClientIP()),
		)
	}
}
