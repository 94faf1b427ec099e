package curlart

import (
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// DecodeImages takes a list of image files and decodes them into image.Image
// types in parallel. Files that cannot be read or decoded are logged and
// skipped, so the result may be shorter than imageFiles. Callers register
// the decoders they want with blank imports.
func DecodeImages(logger *log.Logger, imageFiles []string) ([]string, []image.Image) {
	type decoded struct {
		img  image.Image
		name string
	}

	imgChans := make([]chan decoded, len(imageFiles))
	for i, fName := range imageFiles {
		imgChans[i] = make(chan decoded, 1)
		go func(out chan<- decoded, fName string) {
			defer close(out)
			file, err := os.Open(fName)
			if err != nil {
				logger.Error("open image", "file", fName, "err", err)
				return
			}
			defer file.Close()

			start := time.Now()
			img, kind, err := image.Decode(file)
			if err != nil {
				logger.Error("decode image", "file", fName, "err", err)
				return
			}
			logger.Debug("decoded image", "file", fName, "kind", kind,
				"elapsed", time.Since(start).Round(time.Millisecond))
			out <- decoded{img: img, name: Basename(fName)}
		}(imgChans[i], fName)
	}

	// Collect in the order the files were given.
	names := make([]string, 0, len(imageFiles))
	imgs := make([]image.Image, 0, len(imageFiles))
	for _, imgChan := range imgChans {
		if d, ok := <-imgChan; ok {
			names = append(names, d.name)
			imgs = append(imgs, d.img)
		}
	}
	return names, imgs
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{X: xmargin, Y: ymargin}
}
