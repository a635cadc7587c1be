// Package imageio writes rendered images to disk in the format named by the
// file extension.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats lists the supported extensions.
var Formats = []string{".webp", ".png", ".tga"}

// Supported reports whether path has a writable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats {
		if ext == f {
			return true
		}
	}
	return false
}

// Save encodes img to path, creating parent directories.
func Save(path string, img image.Image) error {
	if !Supported(path) {
		return fmt.Errorf("imageio: unsupported extension %q", filepath.Ext(path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(f, path, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w using the format of name's extension.
func Encode(w io.Writer, name string, img image.Image) error {
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".webp":
		err = nativewebp.Encode(w, img, nil)
	case ".png":
		err = png.Encode(w, img)
	case ".tga":
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("imageio: unsupported extension %q", filepath.Ext(name))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", name, err)
	}
	return nil
}

// SaveAnimation writes frames as one looping animated WebP, each frame shown
// for delayMS milliseconds.
func SaveAnimation(path string, frames []image.Image, delayMS int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir %s: %w", filepath.Dir(path), err)
	}

	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i := range ani.Durations {
		ani.Durations[i] = uint(delayMS)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		return fmt.Errorf("imageio: encode animation %s: %w", path, err)
	}
	return nil
}
