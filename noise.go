package curlart

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Noise is a smooth, seeded 3D noise function. Noise3 returns values in
// [0, 1) and is safe to call from several goroutines.
type Noise interface {
	Noise3(x, y, z float64) float64
}

const (
	noiseOctaves = 4
	noiseFalloff = 0.5
)

// belowOne is the largest float64 smaller than 1.
var belowOne = math.Nextafter(1, 0)

// unit maps a [-1, 1] sample into [0, 1).
func unit(v float64) float64 {
	return Clamp((v+1)/2, 0, belowOne)
}

// Simplex sums octaves of OpenSimplex noise.
type Simplex struct {
	noise   opensimplex.Noise
	octaves int
	falloff float64
}

// NewSimplex returns a four octave simplex source.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{
		noise:   opensimplex.New(seed),
		octaves: noiseOctaves,
		falloff: noiseFalloff,
	}
}

// Noise3 implements Noise.
func (s *Simplex) Noise3(x, y, z float64) float64 {
	var total, amplitude, maxValue, frequency float64 = 0, 1, 0, 1
	for i := 0; i < s.octaves; i++ {
		total += s.noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= s.falloff
		frequency *= 2
	}
	return unit(total / maxValue)
}

// Perlin is classic Perlin noise with the same octave layout as Simplex.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin returns a four octave Perlin source.
func NewPerlin(seed int64) *Perlin {
	// alpha is the amplitude divisor per octave, beta the frequency multiplier
	return &Perlin{noise: perlin.NewPerlin(1/noiseFalloff, 2, noiseOctaves, seed)}
}

// Noise3 implements Noise.
func (p *Perlin) Noise3(x, y, z float64) float64 {
	return unit(p.noise.Noise3D(x, y, z))
}

// NewNoise returns the noise source called name ("simplex" or "perlin").
func NewNoise(name string, seed int64) (Noise, error) {
	switch name {
	case "", "simplex":
		return NewSimplex(seed), nil
	case "perlin":
		return NewPerlin(seed), nil
	}
	return nil, fmt.Errorf("unknown noise source %q", name)
}
