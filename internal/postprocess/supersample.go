// Package postprocess operates on finished renders: offline downsampling and
// the info overlay.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales an oversized render down to w×h with CatmullRom
// filtering. Renders are opaque, so no alpha premultiplication is needed.
// Images already within w×h are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
