package main

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/curlart"
	"github.com/tdewolff/canvas"
)

const (
	highlightChance = 0.20
	highlightAlpha  = 55
	highlightStride = 2

	minTangent = 1e-9
)

var defaultTangent = canvas.Point{X: 1, Y: 0}

// ribbon is one planned strip, ready to be rendered.
type ribbon struct {
	points []canvas.Point
	color  colorful.Color
	width  float64
	alpha  float64 // 0..255

	highlight float64 // stroke width of the highlight line, 0 for none
}

// tangents returns the unit direction of the path at every point: central
// differences inside, one sided at the ends. Where the difference vanishes
// the previous tangent is reused.
func tangents(pts []canvas.Point) []canvas.Point {
	ts := make([]canvas.Point, len(pts))
	prev := defaultTangent
	for i := range pts {
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi > len(pts)-1 {
			hi = len(pts) - 1
		}
		if t, ok := unitVector(pts[hi].Sub(pts[lo])); ok {
			prev = t
		}
		ts[i] = prev
	}
	return ts
}

func unitVector(v canvas.Point) (canvas.Point, bool) {
	l := math.Hypot(v.X, v.Y)
	if l < minTangent || math.IsNaN(l) || math.IsInf(l, 0) {
		return canvas.Point{}, false
	}
	return canvas.Point{X: v.X / l, Y: v.Y / l}, true
}

// normal rotates a unit tangent a quarter turn.
func normal(t canvas.Point) canvas.Point {
	return canvas.Point{X: -t.Y, Y: t.X}
}

// edgeColors returns the light and dark edge colors for a shade in [0, 1].
func edgeColors(base colorful.Color, shade float64) (light, dark colorful.Color) {
	light = curlart.LerpColor(base, curlart.White, 0.30+0.40*shade)
	dark = curlart.LerpColor(base, curlart.Black, 0.14+0.26*(1-shade))
	return light, dark
}

type renderer struct {
	field *flowField
}

// strip returns two vertices per path point, light side first.
func (r renderer) strip(rb ribbon) []curlart.Vertex {
	ts := tangents(rb.points)
	verts := make([]curlart.Vertex, 0, 2*len(rb.points))
	for i, p := range rb.points {
		n := normal(ts[i])
		w := rb.width * r.field.widthFactor(p)
		light, dark := edgeColors(rb.color, r.field.shade(p, i))
		verts = append(verts,
			curlart.Vertex{Pos: p.Add(n.Mul(w)), Color: light},
			curlart.Vertex{Pos: p.Sub(n.Mul(w)), Color: dark},
		)
	}
	return verts
}

// highlightLine takes every other path point.
func highlightLine(pts []canvas.Point) []canvas.Point {
	line := make([]canvas.Point, 0, len(pts)/highlightStride+1)
	for i := 0; i < len(pts); i += highlightStride {
		line = append(line, pts[i])
	}
	return line
}

// drawing is a rendered ribbon that only needs to be put on a canvas.
type drawing struct {
	strip []curlart.Vertex
	alpha float64

	line      []canvas.Point
	lineWidth float64
}

func (r renderer) build(rb ribbon) drawing {
	d := drawing{strip: r.strip(rb), alpha: rb.alpha}
	if rb.highlight > 0 {
		d.line = highlightLine(rb.points)
		d.lineWidth = rb.highlight
	}
	return d
}

func (d drawing) draw(c curlart.Canvas) {
	c.DrawShadedStrip(d.strip, d.alpha)
	if d.line != nil {
		c.DrawPolyline(d.line, curlart.White, highlightAlpha, d.lineWidth)
	}
}
