// Package config loads application settings from the environment.
//
// A .env file in the working directory is applied first when present;
// variables already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/cristianadrielbraun/qrstyle/internal/publish"
)

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting of the server and the CLI.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	OutputDir      string  `env:"QR_OUTPUT_DIR" envDefault:"tmp"`
	UploadDir      string  `env:"QR_UPLOAD_DIR" envDefault:"uploads"`
	CellSize       int     `env:"QR_CELL_SIZE" envDefault:"40"`
	Encoder        string  `env:"QR_ENCODER" envDefault:"yeqown"`
	FontPath       string  `env:"QR_FONT_PATH"`
	FontSize       float64 `env:"QR_FONT_SIZE" envDefault:"32"`
	MaxUploadBytes int64   `env:"QR_MAX_UPLOAD_BYTES" envDefault:"5242880"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	S3 publish.Config `envPrefix:"S3_"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

// Load reads .env (if any) and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: QR_CELL_SIZE must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: QR_FONT_SIZE must be positive, got %g", ErrInvalidConfig, c.FontSize)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: QR_MAX_UPLOAD_BYTES must be positive, got %d", ErrInvalidConfig, c.MaxUploadBytes)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: QR_OUTPUT_DIR is empty", ErrInvalidConfig)
	}
	return nil
}
