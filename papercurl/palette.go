package main

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/curlart"
)

const (
	paperChance  = 0.72
	shadowChance = 0.25
)

// palette is a few paper tones plus accents that get washed toward paper.
type palette struct {
	light, mid, dark colorful.Color
	accents          []colorful.Color
}

func newPalette() palette {
	return palette{
		light: curlart.RGB255(250, 249, 247),
		mid:   curlart.RGB255(235, 233, 228),
		dark:  curlart.RGB255(210, 207, 200),
		accents: []colorful.Color{
			curlart.RGB255(236, 80, 80),  // red
			curlart.RGB255(246, 160, 60), // orange
			curlart.RGB255(250, 220, 80), // yellow
			curlart.RGB255(70, 190, 120), // green
			curlart.RGB255(70, 150, 235), // blue
			curlart.RGB255(170, 90, 220), // purple
			curlart.RGB255(245, 90, 170), // pink
			curlart.RGB255(30, 180, 190), // cyan
		},
	}
}

// choose picks a ribbon color: mostly paper, sometimes a softened accent.
func (p palette) choose(rnd *rand.Rand) colorful.Color {
	if rnd.Float64() < paperChance {
		c := curlart.LerpColor(p.mid, p.light, curlart.RandRange(rnd, 0, 0.7))
		if rnd.Float64() < shadowChance {
			c = curlart.LerpColor(c, p.dark, curlart.RandRange(rnd, 0.05, 0.3))
		}
		return c
	}
	a := p.accents[rnd.Intn(len(p.accents))]
	return curlart.LerpColor(a, p.mid, curlart.RandRange(rnd, 0.15, 0.55))
}
