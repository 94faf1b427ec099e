package curlart

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempPrefix starts the name of every temp file SafeWrite creates.
const TempPrefix = "curlart."

// ImageWriter is anything that can save itself as a PNG.
type ImageWriter interface {
	WritePNG(fname string) error
}

// VectorWriter can also save SVG and PDF.
type VectorWriter interface {
	ImageWriter
	WriteSVG(fname string) error
	WritePDF(fname string) error
}

// SafeWrite saves w under a filename derived from the seed and returns the
// name it used.
func (s Seed) SafeWrite(w ImageWriter, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(w, fname); err != nil {
		return fname, fmt.Errorf("save %s: %w", fname, err)
	}
	return fname, nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(w ImageWriter, fname string) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	ext := filepath.Ext(fname)
	write, err := writerFor(w, ext)
	if err != nil {
		return err
	}

	// The temp file sits beside the target so the rename stays on one drive.
	tmpfile, err := os.CreateTemp(dir, TempPrefix+"*"+ext)
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := write(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Chmod(fname, 0664)
}

// CanWrite reports why w cannot be saved with extension ext, or nil.
func CanWrite(w ImageWriter, ext string) error {
	_, err := writerFor(w, ext)
	return err
}

func writerFor(w ImageWriter, ext string) (func(string) error, error) {
	switch ext {
	case ".png":
		return w.WritePNG, nil
	case ".svg", ".pdf":
		vw, ok := w.(VectorWriter)
		if !ok {
			return nil, fmt.Errorf("file format %s needs the vector backend", ext)
		}
		if ext == ".svg" {
			return vw.WriteSVG, nil
		}
		return vw.WritePDF, nil
	}
	return nil, fmt.Errorf("unsupported file format %s", ext)
}
