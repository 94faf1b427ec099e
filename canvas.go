package curlart

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"
)

// Vertex is one corner of a shaded strip.
type Vertex struct {
	Pos   canvas.Point
	Color colorful.Color
}

// Canvas is what a sketch draws on. Coordinates have the origin at the top
// left with y growing down, alpha is on the 0..255 scale.
type Canvas interface {
	FillBackground(col colorful.Color)

	// DrawShadedStrip draws a band from vertices given in pairs, one pair per
	// point along the band. Vertices 2k..2k+3 make up the k-th quad. Fewer
	// than four vertices draws nothing.
	DrawShadedStrip(verts []Vertex, alpha float64)

	DrawPolyline(pts []canvas.Point, col colorful.Color, alpha, width float64)
	DrawRect(x, y, w, h float64, col colorful.Color, alpha, width float64)
}

// stripQuad returns the k-th quad of a strip as light0, dark0, light1, dark1.
func stripQuad(verts []Vertex, k int) (l0, d0, l1, d1 Vertex) {
	return verts[2*k], verts[2*k+1], verts[2*k+2], verts[2*k+3]
}

// numQuads is the number of complete quads in verts.
func numQuads(verts []Vertex) int {
	if len(verts) < 4 {
		return 0
	}
	return len(verts)/2 - 1
}

// mixVertex interpolates position and color between two vertices.
func mixVertex(a, b Vertex, t float64) Vertex {
	return Vertex{
		Pos:   canvas.Point{X: Lerp(a.Pos.X, b.Pos.X, t), Y: Lerp(a.Pos.Y, b.Pos.Y, t)},
		Color: LerpColor(a.Color, b.Color, t),
	}
}
