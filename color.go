package curlart

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// White and Black are the targets for edge highlights and shadows.
	White = colorful.Color{R: 1, G: 1, B: 1}
	Black = colorful.Color{}
)

// RGB255 builds a color from 8 bit channels.
func RGB255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Gray255 builds a gray from an 8 bit level.
func Gray255(v uint8) colorful.Color {
	return RGB255(v, v, v)
}

// LerpColor interpolates each channel linearly in gamma encoded sRGB, the
// same space the backends blend in. t is clamped to [0, 1] and the end
// points are returned exactly.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendRgb(b, t)
}

// NRGBA quantizes col and an alpha on the 0..255 scale.
func NRGBA(col colorful.Color, alpha float64) color.NRGBA {
	r, g, b := col.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(alpha)}
}

func alpha8(alpha float64) uint8 {
	return uint8(Clamp(math.Round(alpha), 0, 255))
}
