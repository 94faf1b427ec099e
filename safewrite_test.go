package curlart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWritePNG(t *testing.T) {
	rc := NewRasterContext(8, 8)
	rc.FillBackground(White)

	prefix := filepath.Join(t.TempDir(), "samples", "p-")
	fname, err := NewSeed(42).SafeWrite(rc, prefix, ".png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fname, "-2a.png"), fname)

	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0664), info.Mode().Perm())

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(fname))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSafeWriteFormats(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "p-")
	rc := NewRasterContext(8, 8)

	_, err := NewSeed(1).SafeWrite(rc, prefix, ".svg")
	assert.ErrorContains(t, err, "vector backend")

	_, err = NewSeed(1).SafeWrite(rc, prefix, ".gif")
	assert.ErrorContains(t, err, "unsupported file format")
}

func TestSafeWriteSVG(t *testing.T) {
	ctx := NewContext(8, 8)
	ctx.FillBackground(White)
	fname, err := NewSeed(1).SafeWrite(ctx, filepath.Join(t.TempDir(), "p-"), ".svg")
	require.NoError(t, err)
	_, err = os.Stat(fname)
	assert.NoError(t, err)
}

func TestCanWrite(t *testing.T) {
	rc := NewRasterContext(8, 8)
	assert.NoError(t, CanWrite(rc, ".png"))
	assert.ErrorContains(t, CanWrite(rc, ".pdf"), "vector backend")

	ctx := NewContext(8, 8)
	for _, ext := range []string{".png", ".svg", ".pdf"} {
		assert.NoError(t, CanWrite(ctx, ext), ext)
	}
	assert.ErrorContains(t, CanWrite(ctx, ".jpg"), "unsupported file format")
}
