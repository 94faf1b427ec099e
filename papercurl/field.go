package main

import (
	"math"

	"github.com/scottkirkwood/curlart"
	"github.com/tdewolff/canvas"
)

const (
	timeScale    = 0.00015
	spreadFactor = 2.1 // more than one turn, so the field folds into swirls

	curlScale     = 0.012
	curlTimeScale = 0.0001
	curlGain      = 1.7

	widthScale     = 0.01
	widthTimeScale = 0.0002

	shadeScale = 0.02
	shadeRate  = 0.35 // radians of shading phase per path point

	// Offsets past a few thousand flatten simplex and Perlin noise to a
	// constant across the frame, so only the low bits of the seed move z.
	seedFold = 1<<20 - 1
)

// flowField turns noise samples into directions and shading inputs. It only
// reads its noise source, so ribbons may share it across goroutines.
type flowField struct {
	noise      curlart.Noise
	noiseScale float64
	z          float64 // seed offsets
	curlZ      float64
	widthZ     float64
}

func newFlowField(noise curlart.Noise, noiseScale float64, seed curlart.Seed) *flowField {
	s := zOffset(seed)
	return &flowField{
		noise:      noise,
		noiseScale: noiseScale,
		z:          s * timeScale,
		curlZ:      s * curlTimeScale,
		widthZ:     s * widthTimeScale,
	}
}

// zOffset folds seed into [0, 2^20); small seeds pass through unchanged.
func zOffset(seed curlart.Seed) float64 {
	return float64(seed.GetSeed() & seedFold)
}

// angle is the preferred heading at p, in radians.
func (f *flowField) angle(p canvas.Point) float64 {
	n := f.noise.Noise3(p.X*f.noiseScale, p.Y*f.noiseScale, f.z)
	return n * 2 * math.Pi * spreadFactor
}

// curl is the heading perturbation at p before it is scaled by a ribbon's
// own curliness.
func (f *flowField) curl(p canvas.Point) float64 {
	return (f.noise.Noise3(p.X*curlScale, p.Y*curlScale, f.curlZ) - 0.5) * curlGain
}

// widthFactor scales a ribbon's width at p into [0.8, 1.25).
func (f *flowField) widthFactor(p canvas.Point) float64 {
	return 0.8 + 0.45*f.noise.Noise3(p.X*widthScale, p.Y*widthScale, f.widthZ)
}

// shade is in [0, 1] and rolls along the path index, offset by position.
func (f *flowField) shade(p canvas.Point, i int) float64 {
	n := f.noise.Noise3(p.X*shadeScale, p.Y*shadeScale, 0)
	return 0.5 + 0.5*math.Sin(float64(i)*shadeRate+n*2*math.Pi)
}

// lerpAngle moves a toward b by the fraction t along the shorter arc.
func lerpAngle(a, b, t float64) float64 {
	d := math.Atan2(math.Sin(b-a), math.Cos(b-a))
	return a + d*t
}

// normalizeAngle wraps a into (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
