package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrstyle/internal/config"
)

// Tests here use t.Setenv and t.Chdir, so none of them run in parallel.

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "tmp", cfg.OutputDir)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 40, cfg.CellSize)
	assert.Equal(t, "yeqown", cfg.Encoder)
	assert.InDelta(t, 32.0, cfg.FontSize, 0)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, "qr/", cfg.S3.Prefix)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("QR_CELL_SIZE", "12")
	t.Setenv("QR_ENCODER", "skip2")
	t.Setenv("S3_BUCKET", "codes")
	t.Setenv("S3_FORCE_PATH_STYLE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 12, cfg.CellSize)
	assert.Equal(t, "skip2", cfg.Encoder)
	assert.True(t, cfg.S3.Enabled())
	assert.True(t, cfg.S3.ForcePathStyle)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"QR_CELL_SIZE", "0"},
		{"QR_FONT_SIZE", "-1"},
		{"QR_MAX_UPLOAD_BYTES", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsUnparsableValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("QR_CELL_SIZE", "large")

	_, err := config.Load()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (Go 1.21 equivalent of t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
