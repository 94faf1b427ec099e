package curlart

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
)

// RasterContext draws straight to pixels with gg. Shading across a strip
// uses real gradients, so it is closer to per-vertex colors than Context,
// but it can only be saved as PNG.
type RasterContext struct {
	dc *gg.Context
}

// NewRasterContext returns a width x height pixel canvas.
func NewRasterContext(width, height int) *RasterContext {
	return &RasterContext{dc: gg.NewContext(width, height)}
}

// Image is the pixel buffer drawn so far.
func (rc *RasterContext) Image() image.Image {
	return rc.dc.Image()
}

// WritePNG writes to a PNG file
func (rc *RasterContext) WritePNG(fname string) error {
	return rc.dc.SavePNG(fname)
}

// FillBackground paints the whole canvas.
func (rc *RasterContext) FillBackground(col colorful.Color) {
	rc.dc.SetColor(NRGBA(col, 255))
	rc.dc.Clear()
}

// seamOverlap is how far, in pixels, each quad reaches into the next one.
const seamOverlap = 1.0

// DrawShadedStrip paints the strip opaque into a layer clipped to its
// outline, then blends the layer in once at alpha. Each quad gets a linear
// gradient from the middle of its light edge to the middle of its dark edge
// and overlaps the next quad, so shared edges leave no seams.
func (rc *RasterContext) DrawShadedStrip(verts []Vertex, alpha float64) {
	n := numQuads(verts)
	if n == 0 {
		return
	}
	dst := rc.dc.Image().(*image.RGBA)
	r := stripBounds(verts[:2*(n+1)]).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	layer := gg.NewContext(r.Dx(), r.Dy())
	lineTo := func(p canvas.Point) { layer.LineTo(p.X-ox, p.Y-oy) }

	for j := 0; j <= n; j++ {
		lineTo(verts[2*j].Pos)
	}
	for j := n; j >= 0; j-- {
		lineTo(verts[2*j+1].Pos)
	}
	layer.ClosePath()
	layer.Clip()

	for k := 0; k < n; k++ {
		l0, d0, l1, d1 := stripQuad(verts, k)
		if k < n-1 {
			l1.Pos = reach(l0.Pos, l1.Pos, seamOverlap)
			d1.Pos = reach(d0.Pos, d1.Pos, seamOverlap)
		}
		light := mixVertex(l0, l1, 0.5)
		dark := mixVertex(d0, d1, 0.5)

		grad := gg.NewLinearGradient(light.Pos.X-ox, light.Pos.Y-oy, dark.Pos.X-ox, dark.Pos.Y-oy)
		grad.AddColorStop(0, NRGBA(light.Color, 255))
		grad.AddColorStop(1, NRGBA(dark.Color, 255))
		layer.SetFillStyle(grad)

		lineTo(l0.Pos)
		lineTo(l1.Pos)
		lineTo(d1.Pos)
		lineTo(d0.Pos)
		layer.ClosePath()
		layer.Fill()
	}

	mask := image.NewUniform(color.Alpha{A: alpha8(alpha)})
	draw.DrawMask(dst, r, layer.Image(), image.Point{}, mask, image.Point{}, draw.Over)
}

// stripBounds is the pixel rectangle covering verts, padded for
// antialiasing.
func stripBounds(verts []Vertex) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v.Pos.X)
		minY = math.Min(minY, v.Pos.Y)
		maxX = math.Max(maxX, v.Pos.X)
		maxY = math.Max(maxY, v.Pos.Y)
	}
	return image.Rect(
		int(math.Floor(minX))-2, int(math.Floor(minY))-2,
		int(math.Ceil(maxX))+2, int(math.Ceil(maxY))+2)
}

// reach moves b further from a by dist. Coincident points stay put.
func reach(a, b canvas.Point, dist float64) canvas.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return b
	}
	return canvas.Point{X: b.X + dx/l*dist, Y: b.Y + dy/l*dist}
}

// DrawPolyline strokes an open path through pts.
func (rc *RasterContext) DrawPolyline(pts []canvas.Point, col colorful.Color, alpha, width float64) {
	if len(pts) < 2 {
		return
	}
	rc.dc.SetColor(NRGBA(col, alpha))
	rc.dc.SetLineWidth(width)
	rc.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		rc.dc.LineTo(p.X, p.Y)
	}
	rc.dc.Stroke()
}

// DrawRect strokes the outline of a rectangle.
func (rc *RasterContext) DrawRect(x, y, w, h float64, col colorful.Color, alpha, width float64) {
	rc.dc.SetColor(NRGBA(col, alpha))
	rc.dc.SetLineWidth(width)
	rc.dc.DrawRectangle(x, y, w, h)
	rc.dc.Stroke()
}
