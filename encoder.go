package ggicon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Encoder persists a bitmap at path, replacing any existing file.
type Encoder interface {
	Encode(path string, img image.Image) error
}

// EncoderFunc adapts an ordinary function to the Encoder interface.
type EncoderFunc func(path string, img image.Image) error

// Encode calls f(path, img).
func (f EncoderFunc) Encode(path string, img image.Image) error {
	return f(path, img)
}

// PNGEncoder writes PNG files. The zero value uses default compression.
type PNGEncoder struct {
	CompressionLevel png.CompressionLevel
}

// Encode writes img as PNG to a temporary file next to path and renames it
// into place. On failure path is left as it was and no partial file remains.
func (e PNGEncoder) Encode(path string, img image.Image) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := e.write(f, img); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// write encodes img into f and closes it.
func (e PNGEncoder) write(f *os.File, img image.Image) error {
	enc := png.Encoder{CompressionLevel: e.CompressionLevel}
	if err := enc.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
