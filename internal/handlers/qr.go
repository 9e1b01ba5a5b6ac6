package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/qr"
)

// maxURLLength caps the payload to avoid abuse.
const maxURLLength = 4096

// logoExtensions lists the logo formats the renderer can load.
var logoExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".svg": true,
}

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	if len(v) > maxURLLength {
		return "", fmt.Errorf("URL is too long")
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	return u.String(), nil
}

// renderRequest is the parsed form of a QR request.
type renderRequest struct {
	payload string
	fg      string
	opts    qr.Options
}

// parseRenderRequest reads the shared parameters through get, which is
// c.Query for GET and c.PostForm for POST.
func parseRenderRequest(get func(string) string) (renderRequest, error) {
	payload, err := normalizeHTTPURL(get("url"))
	if err != nil {
		return renderRequest{}, err
	}

	opts := qr.DefaultOptions()
	opts.Style = qr.ParseStyle(get("style"))
	opts.Label = strings.TrimSpace(get("label"))
	opts.Level = qr.ParseLevel(get("ec"))
	opts.SolidFinders = get("solidFinders") == "true"
	if m := get("margin"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return renderRequest{}, fmt.Errorf("margin must be an integer")
		}
		opts.Margin = max(n, 0)
	}

	return renderRequest{payload: payload, fg: get("fg"), opts: opts}, nil
}

// QRCodeHandler renders a QR code from query parameters and streams the PNG.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	req, err := parseRenderRequest(c.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := h.renderer.Render(req.payload, req.fg, "", req.opts)
	if err != nil {
		h.writeRenderError(c, err)
		return
	}
	h.sendPNG(c, path)
}

// QRUploadHandler renders a QR code from a multipart form with an optional
// "logo" file. The uploaded logo is removed once the render succeeded.
func (h *Handler) QRUploadHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)

	req, err := parseRenderRequest(c.PostForm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logoPath, err := h.saveLogo(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := h.renderer.Render(req.payload, req.fg, logoPath, req.opts)
	if err != nil {
		// The logo stays on disk after a failed render.
		h.writeRenderError(c, err)
		return
	}
	if err := h.renderer.Cleanup(logoPath); err != nil {
		h.log.Warn("failed to remove uploaded logo", logger.Path(logoPath), logger.Error(err))
	}
	h.sendPNG(c, path)
}

// saveLogo stores the optional "logo" upload and returns its path, or ""
// when no file was sent.
func (h *Handler) saveLogo(c *gin.Context) (string, error) {
	fh, err := c.FormFile("logo")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("invalid logo upload: %v", err)
	}
	if fh.Size > h.maxUpload {
		return "", fmt.Errorf("logo exceeds %d bytes", h.maxUpload)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !logoExtensions[ext] {
		return "", fmt.Errorf("unsupported logo format %q", ext)
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %v", err)
	}
	dst := filepath.Join(h.uploadDir, generateUniqueFilename("logo", ext))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", fmt.Errorf("failed to store logo: %v", err)
	}
	return dst, nil
}

// sendPNG publishes the file if configured, streams it and removes it.
func (h *Handler) sendPNG(c *gin.Context, path string) {
	defer os.Remove(path) // Clean up rendered file

	if h.publisher != nil {
		location, err := h.publisher.Publish(c.Request.Context(), path)
		if err != nil {
			h.log.Error("failed to publish QR code", logger.Path(path), logger.Error(err))
		} else {
			c.Header("X-QR-Location", location)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to read QR code file: %v", err)})
		return
	}
	defer file.Close()

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		h.log.Error("failed to send QR code", logger.Error(err))
	}
}

// writeRenderError maps render failures to HTTP statuses.
func (h *Handler) writeRenderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, qr.ErrInvalidColor), errors.Is(err, qr.ErrEncoding):
		status = http.StatusBadRequest
	case errors.Is(err, qr.ErrAssetLoad):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		h.log.Error("render failed", logger.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// Helper function to generate unique temporary filenames
func generateUniqueFilename(prefix, extension string) string {
	timestamp := time.Now().UnixNano()
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s_%d_%x%s", prefix, timestamp, randomBytes, extension)
}
