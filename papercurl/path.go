package main

import (
	"math"
	"math/rand"

	"github.com/scottkirkwood/curlart"
	"github.com/tdewolff/canvas"
)

const (
	steerRate = 0.22 // share of the way toward the field heading per step
	jitter    = 0.2
)

// integrator grows ribbon paths through a flow field, bouncing off the
// frame.
type integrator struct {
	cfg   config
	field *flowField
}

// shape is the per-ribbon randomness drawn before a path is traced.
type shape struct {
	steps int
	step  float64 // distance between points
	width float64
	curl  float64
}

// drawSteps picks how many points a ribbon gets. Steps truncate, so the
// default 55 gives 30..63.
func (g *integrator) drawSteps(rnd *rand.Rand) int {
	n := float64(g.cfg.maxSteps)
	return int(curlart.RandRange(rnd, n*0.55, n*1.15))
}

func (g *integrator) drawStep(rnd *rand.Rand) float64 {
	return g.cfg.stepSize * curlart.RandRange(rnd, 0.75, 1.25)
}

func (g *integrator) drawWidth(rnd *rand.Rand) float64 {
	return g.cfg.baseWidth * curlart.RandRange(rnd, 0.55, 1.35)
}

func (g *integrator) drawCurl(rnd *rand.Rand) float64 {
	return g.cfg.curliness * curlart.RandRange(rnd, 0.6, 1.4)
}

// trace returns the path starting at origin. The first point is origin
// itself; every later point lies inside the frame.
func (g *integrator) trace(rnd *rand.Rand, origin canvas.Point, sh shape) []canvas.Point {
	steps := sh.steps
	if steps < 1 {
		steps = 1
	}
	minX, minY, maxX, maxY := g.cfg.frame()

	pts := make([]canvas.Point, steps)
	pts[0] = origin
	ang := g.field.angle(origin)
	for i := 1; i < steps; i++ {
		p := pts[i-1]

		ang = lerpAngle(ang, g.field.angle(p), steerRate)
		ang += g.field.curl(p) * sh.curl
		ang += curlart.RandRange(rnd, -jitter, jitter) * sh.curl

		nx := p.X + math.Cos(ang)*sh.step
		ny := p.Y + math.Sin(ang)*sh.step

		// bounce: the heading reflects, the point is only clamped
		if nx < minX || nx > maxX {
			ang = math.Pi - ang
		}
		if ny < minY || ny > maxY {
			ang = -ang
		}
		ang = normalizeAngle(ang)

		pts[i] = canvas.Point{
			X: curlart.Clamp(nx, minX, maxX),
			Y: curlart.Clamp(ny, minY, maxY),
		}
	}
	return pts
}
