package main

// config holds the constants that shape one image. They are fixed for a
// run; tests shrink copies of defaultConfig.
type config struct {
	width, height float64 // pixels
	margin        float64 // frame inset, pixels

	ribbons   int
	maxSteps  int     // points per ribbon before jitter
	stepSize  float64 // pixels between points before jitter
	baseWidth float64 // half width of a ribbon, pixels

	noiseScale float64 // spatial frequency of the flow field
	curliness  float64 // how hard ribbons turn away from the field

	alphaBase float64 // ribbon opacity, 0..255
}

func defaultConfig() config {
	return config{
		width:      900,
		height:     900,
		margin:     55,
		ribbons:    1400,
		maxSteps:   55,
		stepSize:   9.5,
		baseWidth:  12,
		noiseScale: 0.0065,
		curliness:  0.85,
		alphaBase:  42,
	}
}

// frame returns the drawable rectangle as min and max corners.
func (c config) frame() (minX, minY, maxX, maxY float64) {
	return c.margin, c.margin, c.width - c.margin, c.height - c.margin
}
