// Package raster fills a pixel buffer with a shaded fractal, splitting the
// rows into bands rendered in parallel.
package raster

import (
	"runtime"
	"sync"
	"time"

	"fractal-renderer/internal/palette"
	"fractal-renderer/internal/view"
)

// Pass is one render request. Quality is chosen per call through Samples
// rather than stored in the view.
type Pass struct {
	View    view.Config
	Palette palette.Palette // nil selects palette.Get(View.Palette)
	Samples int             // subgrid size per axis; <= 1 is one sample per pixel
}

// NewPass renders c at the quality its AntiAliasing flag asks for.
func NewPass(c view.Config) Pass {
	return Pass{View: c, Samples: Samples(c)}
}

// Samples is Supersample with anti-aliasing on, 1 otherwise.
func Samples(c view.Config) int {
	if c.AntiAliasing {
		return Supersample
	}
	return 1
}

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into n contiguous bands of height/n rows, the
// last one taking the remainder. n is clamped to [1, height] so no band is
// empty unless height is 0.
func Bands(height, n int) []Band {
	if n > height {
		n = height
	}
	if n < 1 {
		n = 1
	}
	size := height / n
	bands := make([]Band, n)
	for i := range bands {
		bands[i] = Band{Y0: i * size, Y1: (i + 1) * size}
	}
	bands[n-1].Y1 = height
	return bands
}

// Render fills fb with c using workers goroutines. workers <= 0 uses one per
// CPU. It returns once every band is written.
func Render(c view.Config, fb *FrameBuffer, workers int) {
	RenderPass(NewPass(c), fb, workers)
}

// RenderPass is Render with an explicit palette and sample count.
//
// Each goroutine owns a disjoint band of rows, so writes need no locking.
// The caller must not touch fb until RenderPass returns.
func RenderPass(p Pass, fb *FrameBuffer, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	s := NewSampler(p.View, fb.Width, fb.Height, p.Palette)
	bands := Bands(fb.Height, workers)

	var wg sync.WaitGroup
	for _, b := range bands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fillBand(s, fb, b, p.Samples)
		}()
	}
	wg.Wait()

	Logger().Debug("render done",
		"width", fb.Width, "height", fb.Height,
		"bands", len(bands), "samples", p.Samples,
		"elapsed", time.Since(start))
}

func fillBand(s *Sampler, fb *FrameBuffer, b Band, samples int) {
	for y := b.Y0; y < b.Y1; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.Set(x, y, s.Pixel(x, y, samples))
		}
	}
}
