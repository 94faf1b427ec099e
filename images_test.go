package curlart

import (
	"image"
	_ "image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVpCenter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, image.Point{X: 50, Y: 25}, VpCenter(img, 200, 100))
	assert.Equal(t, image.Point{}, VpCenter(img, 100, 50))
	assert.Equal(t, image.Point{}, VpCenter(img, 80, 40))
}

func TestDecodeImages(t *testing.T) {
	dir := t.TempDir()
	rc := NewRasterContext(12, 7)
	rc.FillBackground(White)
	good := filepath.Join(dir, "good.png")
	require.NoError(t, rc.WritePNG(good))

	logger := NewLogger(io.Discard, log.InfoLevel)
	names, imgs := DecodeImages(logger, []string{filepath.Join(dir, "missing.png"), good})
	require.Len(t, imgs, 1)
	assert.Equal(t, []string{"good.png"}, names)
	assert.Equal(t, image.Pt(12, 7), imgs[0].Bounds().Size())
}
