package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed logs the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component names the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path creates an attribute for a file or URL path.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// ClientIP creates an attribute for client IP addresses.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// Latency is the request duration.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// Stage names a pipeline stage.
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// Style is the module style of a render.
func Style(style string) slog.Attr {
	return slog.String("style", style)
}

// Modules is the symbol side in modules.
func Modules(n int) slog.Attr {
	return slog.Int("modules", n)
}

// Size is an image size in pixels.
func Size(w, h int) slog.Attr {
	return slog.Group("size", slog.Int("w", w), slog.Int("h", h))
}
