package main

import (
	"math/rand"

	"github.com/scottkirkwood/curlart"
	"github.com/tdewolff/canvas"
	"golang.org/x/sync/errgroup"
)

const (
	alphaMin = 0.65
	alphaMax = 1.25

	frameGray  = 40
	frameAlpha = 90
	frameWidth = 3
)

type scene struct {
	cfg      config
	seed     curlart.Seed
	palette  palette
	paths    *integrator
	renderer renderer
}

func newScene(cfg config, seed curlart.Seed, noise curlart.Noise) *scene {
	field := newFlowField(noise, cfg.noiseScale, seed)
	return &scene{
		cfg:      cfg,
		seed:     seed,
		palette:  newPalette(),
		paths:    &integrator{cfg: cfg, field: field},
		renderer: renderer{field: field},
	}
}

// origin picks a start point inside the frame.
func (s *scene) origin(rnd *rand.Rand) canvas.Point {
	minX, minY, maxX, maxY := s.cfg.frame()
	return canvas.Point{
		X: curlart.RandRange(rnd, minX, maxX),
		Y: curlart.RandRange(rnd, minY, maxY),
	}
}

// plan draws everything random about one ribbon from rnd. The order of the
// draws is part of what a seed reproduces.
func (s *scene) plan(rnd *rand.Rand, origin canvas.Point) ribbon {
	sh := shape{
		steps: s.paths.drawSteps(rnd),
		step:  s.paths.drawStep(rnd),
		width: s.paths.drawWidth(rnd),
	}
	col := s.palette.choose(rnd)
	sh.curl = s.paths.drawCurl(rnd)

	rb := ribbon{
		points: s.paths.trace(rnd, origin, sh),
		color:  col,
		width:  sh.width,
	}
	rb.alpha = s.cfg.alphaBase * curlart.RandRange(rnd, alphaMin, alphaMax)
	if rnd.Float64() < highlightChance {
		rb.highlight = curlart.RandRange(rnd, 0.5, 1.2)
	}
	return rb
}

func (s *scene) background(c curlart.Canvas) {
	c.FillBackground(s.palette.light)
}

func (s *scene) frame(c curlart.Canvas) {
	m := s.cfg.margin
	c.DrawRect(m, m, s.cfg.width-2*m, s.cfg.height-2*m,
		curlart.Gray255(frameGray), frameAlpha, frameWidth)
}

// compose draws the whole image, taking every random draw from one stream
// seeded with the scene's seed.
func (s *scene) compose(c curlart.Canvas) {
	rnd := s.seed.NewRand()
	s.background(c)
	for i := 0; i < s.cfg.ribbons; i++ {
		rb := s.plan(rnd, s.origin(rnd))
		s.renderer.build(rb).draw(c)
	}
	s.frame(c)
}

// composeParallel plans and renders ribbons on up to workers goroutines,
// each ribbon with its own stream derived from the seed, then draws them in
// index order. The image depends on the seed but not on workers.
func (s *scene) composeParallel(c curlart.Canvas, workers int) error {
	if workers < 1 {
		workers = 1
	}
	drawings := make([]drawing, s.cfg.ribbons)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range drawings {
		g.Go(func() error {
			rnd := s.seed.Derive(i).NewRand()
			drawings[i] = s.renderer.build(s.plan(rnd, s.origin(rnd)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.background(c)
	for _, d := range drawings {
		d.draw(c)
	}
	s.frame(c)
	return nil
}
