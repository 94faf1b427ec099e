// Paper curl fills a frame with ribbons of rolled paper that drift along a
// noise flow field, each shaded light on one edge and dark on the other.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/scottkirkwood/curlart"
)

var (
	seedFlag    = flag.String("seed", "", "Hex value for the seed to use")
	outFlag     = flag.String("out", "samples/papercurl-", "Output filename prefix")
	extFlag     = flag.String("ext", ".png", "Output format: .png, .svg or .pdf")
	backendFlag = flag.String("backend", "vector", "Canvas backend: vector or raster")
	noiseFlag   = flag.String("noise", "simplex", "Noise source: simplex or perlin")
	workersFlag = flag.Int("workers", 0, "Plan ribbons on this many goroutines, 0 for one shared random stream")
	verboseFlag = flag.Bool("v", false, "Debug logging")
)

// target is a canvas that can also be saved.
type target interface {
	curlart.Canvas
	curlart.ImageWriter
}

// newCanvas also checks that the backend can save ext, before any drawing.
func newCanvas(backend, ext string, cfg config) (target, error) {
	var t target
	switch backend {
	case "vector":
		t = curlart.NewContext(cfg.width, cfg.height)
	case "raster":
		t = curlart.NewRasterContext(int(cfg.width), int(cfg.height))
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
	if err := curlart.CanWrite(t, ext); err != nil {
		return nil, fmt.Errorf("backend %s: %w", backend, err)
	}
	return t, nil
}

func main() {
	flag.Parse()
	level := log.InfoLevel
	if *verboseFlag {
		level = log.DebugLevel
	}
	logger := curlart.NewLogger(os.Stderr, level)

	g, err := curlart.Init(*seedFlag)
	if err != nil {
		logger.Fatal("Unable to set the seed", "err", err)
	}
	noise, err := curlart.NewNoise(*noiseFlag, g.GetSeed())
	if err != nil {
		logger.Fatal("Unable to make noise", "err", err)
	}
	cfg := defaultConfig()
	ctx, err := newCanvas(*backendFlag, *extFlag, cfg)
	if err != nil {
		logger.Fatal("Unable to make canvas", "err", err)
	}
	logger.Info("Drawing", "seed", fmt.Sprintf("%x", g.GetSeed()),
		"backend", *backendFlag, "noise", *noiseFlag, "ribbons", cfg.ribbons)

	s := newScene(cfg, g, noise)
	t := curlart.StartTimer(logger)
	if *workersFlag > 0 {
		if err := s.composeParallel(ctx, *workersFlag); err != nil {
			logger.Fatal("Unable to compose", "err", err)
		}
	} else {
		s.compose(ctx)
	}
	t.Done("Composed")

	t = curlart.StartTimer(logger)
	fname, err := g.SafeWrite(ctx, *outFlag, *extFlag)
	if err != nil {
		logger.Fatal("Unable to write image", "err", err)
	}
	t.Done("Written")
	logger.Info("Saved", "file", fname)
}
