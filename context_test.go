package curlart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/canvas"
)

func TestContextImplementsCanvas(t *testing.T) {
	var c Canvas = NewContext(10, 10)
	var w VectorWriter = NewContext(10, 10)
	assert.NotNil(t, c)
	assert.NotNil(t, w)
}

func TestContextWriteSVG(t *testing.T) {
	ctx := NewContext(60, 40)
	ctx.FillBackground(RGB255(250, 249, 247))
	ctx.DrawShadedStrip(testStrip(), 42)
	ctx.DrawPolyline([]canvas.Point{{X: 5, Y: 5}, {X: 20, Y: 25}, {X: 40, Y: 5}}, White, 55, 1)
	ctx.DrawRect(5, 5, 50, 30, Gray255(40), 90, 3)

	fname := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, ctx.WriteSVG(fname))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "<path")
}

func TestNumQuads(t *testing.T) {
	assert.Equal(t, 0, numQuads(nil))
	assert.Equal(t, 0, numQuads(testStrip()[:2]))
	assert.Equal(t, 1, numQuads(testStrip()))
	assert.Equal(t, 2, numQuads(append(testStrip(), testStrip()[:2]...)))
}

func TestMixVertex(t *testing.T) {
	s := testStrip()
	m := mixVertex(s[0], s[1], 0.5)
	assert.Equal(t, canvas.Point{X: 10, Y: 20}, m.Pos)
	assert.Equal(t, s[0], mixVertex(s[0], s[1], 0))
	assert.Equal(t, s[1], mixVertex(s[0], s[1], 1))
}
