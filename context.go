package curlart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// pngResolution is dots per canvas unit; 2 supersamples the pixel grid.
const pngResolution = 2.0

// stripBands is how many flat bands approximate the shading across a quad.
const stripBands = 4

// Context is my abstraction for Canvas (or gg)
type Context struct {
	c             *canvas.Canvas
	ctx           *canvas.Context
	width, height float64
}

// NewContext returns a vector canvas of width x height units.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(pngResolution))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

// flip converts from top-left, y down coordinates to the canvas' own.
func (ctx *Context) flip(p canvas.Point) (float64, float64) {
	return p.X, ctx.height - p.Y
}

// polyPath builds a path through pts, closed when closed is set.
func (ctx *Context) polyPath(pts []canvas.Point, closed bool) *canvas.Path {
	path := &canvas.Path{}
	path.MoveTo(ctx.flip(pts[0]))
	for _, p := range pts[1:] {
		path.LineTo(ctx.flip(p))
	}
	if closed {
		path.Close()
	}
	return path
}

// fillPolygon fills the closed polygon through pts.
func (ctx *Context) fillPolygon(pts []canvas.Point, col colorful.Color, alpha float64) {
	ctx.ctx.SetFillColor(NRGBA(col, alpha))
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.DrawPath(0, 0, ctx.polyPath(pts, true))
}

// strokePath outlines the path through pts.
func (ctx *Context) strokePath(pts []canvas.Point, closed bool, col colorful.Color, alpha, width float64) {
	ctx.ctx.SetFillColor(color.Transparent)
	ctx.ctx.SetStrokeColor(NRGBA(col, alpha))
	ctx.ctx.SetStrokeWidth(width)
	ctx.ctx.DrawPath(0, 0, ctx.polyPath(pts, closed))
}

// FillBackground paints the whole canvas.
func (ctx *Context) FillBackground(col colorful.Color) {
	ctx.fillPolygon([]canvas.Point{
		{X: 0, Y: 0},
		{X: ctx.width, Y: 0},
		{X: ctx.width, Y: ctx.height},
		{X: 0, Y: ctx.height},
	}, col, 255)
}

// DrawShadedStrip fills every quad as stripBands flat bands running from
// the light edge to the dark edge.
func (ctx *Context) DrawShadedStrip(verts []Vertex, alpha float64) {
	quad := make([]canvas.Point, 4)
	for k := 0; k < numQuads(verts); k++ {
		l0, d0, l1, d1 := stripQuad(verts, k)
		for b := 0; b < stripBands; b++ {
			t0 := float64(b) / stripBands
			t1 := float64(b+1) / stripBands
			tm := (t0 + t1) / 2
			quad[0] = mixVertex(l0, d0, t0).Pos
			quad[1] = mixVertex(l1, d1, t0).Pos
			quad[2] = mixVertex(l1, d1, t1).Pos
			quad[3] = mixVertex(l0, d0, t1).Pos
			col := LerpColor(mixVertex(l0, d0, tm).Color, mixVertex(l1, d1, tm).Color, 0.5)
			ctx.fillPolygon(quad, col, alpha)
		}
	}
}

// DrawPolyline strokes an open path through pts.
func (ctx *Context) DrawPolyline(pts []canvas.Point, col colorful.Color, alpha, width float64) {
	if len(pts) < 2 {
		return
	}
	ctx.strokePath(pts, false, col, alpha, width)
}

// DrawRect strokes the outline of a rectangle.
func (ctx *Context) DrawRect(x, y, w, h float64, col colorful.Color, alpha, width float64) {
	ctx.strokePath([]canvas.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}, true, col, alpha, width)
}
