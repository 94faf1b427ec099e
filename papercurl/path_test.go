package main

import (
	"math/rand"
	"testing"

	"github.com/scottkirkwood/curlart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/canvas"
)

func testScene(cfg config, seed int64) *scene {
	s := curlart.NewSeed(seed)
	return newScene(cfg, s, curlart.NewSimplex(seed))
}

func requireInFrame(t *testing.T, cfg config, pts []canvas.Point) {
	t.Helper()
	minX, minY, maxX, maxY := cfg.frame()
	for i, p := range pts {
		require.True(t, p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY,
			"point %d %v outside frame", i, p)
	}
}

func TestPlanScenario(t *testing.T) {
	cfg := defaultConfig()
	s := testScene(cfg, 42)
	origin := canvas.Point{X: 500, Y: 500}

	rb := s.plan(curlart.NewSeed(42).NewRand(), origin)
	assert.GreaterOrEqual(t, len(rb.points), 30)
	assert.LessOrEqual(t, len(rb.points), 63)
	assert.Equal(t, origin, rb.points[0])
	requireInFrame(t, cfg, rb.points)
}

func TestPlanDeterministic(t *testing.T) {
	s := testScene(defaultConfig(), 42)
	origin := canvas.Point{X: 500, Y: 500}
	a := s.plan(curlart.NewSeed(42).NewRand(), origin)
	b := s.plan(curlart.NewSeed(42).NewRand(), origin)
	assert.Equal(t, a, b)

	c := s.plan(curlart.NewSeed(43).NewRand(), origin)
	assert.NotEqual(t, a.points, c.points)
}

func TestPlanRanges(t *testing.T) {
	cfg := defaultConfig()
	s := testScene(cfg, 9)
	rnd := rand.New(rand.NewSource(9))
	highlights := 0
	const n = 3000
	for i := 0; i < n; i++ {
		rb := s.plan(rnd, s.origin(rnd))
		require.GreaterOrEqual(t, len(rb.points), 30)
		require.LessOrEqual(t, len(rb.points), 63)
		require.GreaterOrEqual(t, rb.width, cfg.baseWidth*0.55)
		require.Less(t, rb.width, cfg.baseWidth*1.35)
		require.GreaterOrEqual(t, rb.alpha, cfg.alphaBase*alphaMin)
		require.Less(t, rb.alpha, cfg.alphaBase*alphaMax)
		requireInFrame(t, cfg, rb.points)
		if rb.highlight > 0 {
			highlights++
			require.GreaterOrEqual(t, rb.highlight, 0.5)
			require.Less(t, rb.highlight, 1.2)
		}
	}
	assert.InDelta(t, highlightChance, float64(highlights)/n, 0.03)
}

func TestDrawSteps(t *testing.T) {
	g := &integrator{cfg: defaultConfig()}
	rnd := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 20000; i++ {
		n := g.drawSteps(rnd)
		require.GreaterOrEqual(t, n, 30)
		require.LessOrEqual(t, n, 63)
		seen[n] = true
	}
	assert.True(t, seen[30])
	assert.True(t, seen[63])
}

func TestTraceContainedNearEdges(t *testing.T) {
	cfg := defaultConfig()
	s := testScene(cfg, 5)
	rnd := rand.New(rand.NewSource(5))
	minX, minY, maxX, maxY := cfg.frame()
	corners := []canvas.Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: minX, Y: maxY}, {X: maxX, Y: maxY},
		{X: minX + 1, Y: 450}, {X: maxX - 1, Y: 450}, {X: 450, Y: minY + 1}, {X: 450, Y: maxY - 1},
	}
	for _, origin := range corners {
		for i := 0; i < 50; i++ {
			sh := shape{steps: 63, step: 11.875, width: 12, curl: 1.19}
			requireInFrame(t, cfg, s.paths.trace(rnd, origin, sh))
		}
	}
}

func TestTraceBounceSticksToEdge(t *testing.T) {
	cfg := defaultConfig()
	field := newFlowField(constNoise(0.5), cfg.noiseScale, curlart.NewSeed(1))
	g := &integrator{cfg: cfg, field: field}
	_, _, maxX, _ := cfg.frame()

	// heading about 0.1 turn right of +x, no curl or jitter
	pts := g.trace(rand.New(rand.NewSource(1)), canvas.Point{X: 840, Y: 450},
		shape{steps: 4, step: 9.5, curl: 0})
	require.Len(t, pts, 4)
	assert.Equal(t, maxX, pts[1].X, "clamped onto the edge")
	assert.Less(t, pts[2].X, maxX, "heading was reflected")
	requireInFrame(t, cfg, pts)
}

func TestTraceDegenerateSteps(t *testing.T) {
	s := testScene(defaultConfig(), 1)
	origin := canvas.Point{X: 100, Y: 100}
	for _, steps := range []int{-3, 0, 1} {
		pts := s.paths.trace(rand.New(rand.NewSource(1)), origin, shape{steps: steps, step: 9.5, curl: 1})
		assert.Equal(t, []canvas.Point{origin}, pts)
	}
}
