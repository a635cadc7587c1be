package raster

import (
	"image"

	"fractal-renderer/internal/palette"
)

// FrameBuffer is the render target: row-major RGBA bytes, len = W*H*4.
// Allocate it once per output size and reuse it across renders.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8
}

// NewFrameBuffer allocates a zeroed buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// WrapFrameBuffer adopts a caller-owned pixel slice of length w*h*4.
func WrapFrameBuffer(pix []uint8, w, h int) *FrameBuffer {
	return &FrameBuffer{Width: w, Height: h, Color: pix}
}

// Set writes an opaque pixel.
func (fb *FrameBuffer) Set(x, y int, c palette.RGB) {
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = 255
}

// At reads the color of a pixel.
func (fb *FrameBuffer) At(x, y int) palette.RGB {
	i := (y*fb.Width + x) * 4
	return palette.RGB{R: fb.Color[i], G: fb.Color[i+1], B: fb.Color[i+2]}
}

// Image views the buffer as an NRGBA image without copying. The image
// aliases the buffer and changes with the next render.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// Snapshot copies the buffer into a new image.
func (fb *FrameBuffer) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
