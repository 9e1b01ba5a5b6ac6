package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestRenderCommandWritesPNG(t *testing.T) {
	chdir(t, t.TempDir())
	out := filepath.Join(t.TempDir(), "codes")

	path, err := execute(t, "https://example.com", "--style", "rounded", "--cell", "6", "-o", out)
	require.NoError(t, err)
	assert.Equal(t, out, filepath.Dir(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRenderCommandRequiresPayload(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	assert.Error(t, err)
}

func TestRenderCommandRejectsBadColor(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "x", "--fg", "red", "-o", t.TempDir())
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
