// This package watches a sketch folder, reruns the sketch whenever one of
// its go files changes and shows every new PNG it writes.
package main

import (
	"flag"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/scottkirkwood/curlart"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	maxWinWidth  = 1000
	maxWinHeight = 900
)

var (
	dirFlag     = flag.String("dir", "papercurl", "Sketch folder to watch and run")
	samplesFlag = flag.String("samples", "samples", "Folder, inside -dir, the sketch writes images to")
	verboseFlag = flag.Bool("v", false, "Debug logging")
)

// watcher remembers file checksums so editor saves that change nothing do
// not trigger a rerun.
type watcher struct {
	logger *log.Logger
	dir    string

	mu      sync.Mutex
	fileCrc map[string]uint64
	running bool
}

func main() {
	flag.Parse()
	level := log.InfoLevel
	if *verboseFlag {
		level = log.DebugLevel
	}
	logger := curlart.NewLogger(os.Stderr, level)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatal("Failed to create watcher", "err", err)
	}
	defer fw.Close()

	samples := filepath.Join(*dirFlag, *samplesFlag)
	if err := curlart.MaybeCreateDir(samples); err != nil {
		logger.Fatal("Unable to create samples folder", "dir", samples, "err", err)
	}
	for _, dir := range []string{*dirFlag, samples} {
		if err := fw.Add(dir); err != nil {
			logger.Fatal("Problem adding folder watcher", "dir", dir, "err", err)
		}
	}
	logger.Info("Monitoring", "dir", *dirFlag, "samples", samples)

	w := &watcher{logger: logger, dir: *dirFlag, fileCrc: map[string]uint64{}}
	images := make(chan string, 1)
	go w.watchForEvents(fw, images)

	driver.Main(func(s screen.Screen) {
		for fname := range images {
			if !showImage(logger, s, fname) {
				return
			}
		}
	})
}

func (w *watcher) watchForEvents(fw *fsnotify.Watcher, images chan<- string) {
	defer close(images)
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				if strings.HasSuffix(event.Name, ".go") && w.fileChanged(event.Name) {
					go w.rerun()
				}
			case event.Op&fsnotify.Create == fsnotify.Create:
				if isSample(event.Name) && w.fileChanged(event.Name) {
					select {
					case images <- event.Name:
					default:
						w.logger.Debug("Viewer busy, skipping", "file", event.Name)
					}
				}
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher", "err", err)
		}
	}
}

// isSample skips the temp files the sketch writes before renaming.
func isSample(fname string) bool {
	return strings.HasSuffix(fname, ".png") && !strings.HasPrefix(filepath.Base(fname), curlart.TempPrefix)
}

// rerun runs the sketch unless a run is already going.
func (w *watcher) rerun() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	w.logger.Info("Running", "dir", w.dir)
	cmd := exec.Command("go", "run", ".")
	cmd.Dir = w.dir
	if out, err := cmd.CombinedOutput(); err != nil {
		w.logger.Error("Run failed", "err", err, "output", string(out))
		return
	}
	w.logger.Info("Finished", "dir", w.dir)
}

var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

func (w *watcher) fileChanged(fname string) bool {
	if onlyDigitsRx.MatchString(filepath.Base(fname)) {
		// Ignore temp files by vim which have only digits
		return false
	}
	newChecksum := w.fileChecksum(fname)
	w.mu.Lock()
	defer w.mu.Unlock()
	if newChecksum == w.fileCrc[fname] {
		return false
	}
	w.fileCrc[fname] = newChecksum
	return true
}

func (w *watcher) fileChecksum(fname string) uint64 {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		w.logger.Error("Readfile", "file", fname, "err", err)
		return 0
	}
	return crc64.Checksum(bytes, crc64.MakeTable(crc64.ECMA))
}

// showImage opens a window with fname centered in it and blocks until the
// window is closed. It returns false when the viewer should quit.
func showImage(logger *log.Logger, s screen.Screen, fname string) bool {
	_, imgs := curlart.DecodeImages(logger, []string{fname})
	if len(imgs) == 0 {
		logger.Warn("No image to show", "file", fname)
		return true
	}
	img := imgs[0]

	winSize := img.Bounds().Size()
	if winSize.X > maxWinWidth {
		winSize.X = maxWinWidth
	}
	if winSize.Y > maxWinHeight {
		winSize.Y = maxWinHeight
	}

	win, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  winSize.X,
		Height: winSize.Y,
	})
	if err != nil {
		logger.Error("New window", "err", err)
		return false
	}
	defer win.Release()

	b, err := s.NewBuffer(img.Bounds().Size())
	if err != nil {
		logger.Error("New buffer", "err", err)
		return false
	}
	defer b.Release()
	draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)

	var sz size.Event
	for {
		switch e := win.NextEvent().(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			switch e.Code {
			case key.CodeEscape:
				return false
			case key.CodeQ:
				return true
			}

		case paint.Event:
			dp := curlart.VpCenter(img, sz.WidthPx, sz.HeightPx)
			if dp != (image.Point{}) {
				win.Fill(sz.Bounds(), color.Black, draw.Src)
			}
			win.Upload(dp, b, b.Bounds())
			win.Publish()

		case size.Event:
			sz = e

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return true
			}

		case error:
			logger.Error("Screen", "err", e)
			return false
		}
	}
}
