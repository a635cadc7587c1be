package raster

import (
	"fractal-renderer/internal/escape"
	"fractal-renderer/internal/palette"
	"fractal-renderer/internal/view"
)

// Supersample is the subgrid size per axis used when anti-aliasing is on.
const Supersample = 7

// Sampler colors pixels of one output size under one configuration. It is
// read-only after construction and shared by all workers of a render.
type Sampler struct {
	view    view.Config
	params  escape.Params
	mapper  view.Mapper
	palette palette.Palette
}

// NewSampler prepares a sampler for a w×h output. A nil palette selects
// palette.Get(c.Palette).
func NewSampler(c view.Config, w, h int, p palette.Palette) *Sampler {
	if len(p) == 0 {
		p = palette.Get(c.Palette)
	}
	return &Sampler{
		view:    c,
		params:  c.Params(),
		mapper:  view.NewMapper(c, w, h),
		palette: p,
	}
}

// Sample evaluates and colors the point at offset (fx, fy) inside pixel (x, y).
func (s *Sampler) Sample(x, y int, fx, fy float64) palette.RGB {
	cr, ci := s.mapper.Point(x, y, fx, fy)
	return Shade(escape.Evaluate(cr, ci, s.params), s.view, s.palette)
}

// Center is the single-sample color at the pixel center.
func (s *Sampler) Center(x, y int) palette.RGB {
	return s.Sample(x, y, 0.5, 0.5)
}

// Supersample averages an n×n regular subgrid of samples. Channels are
// summed as bytes and divided with truncation, so n = 1 matches Center.
func (s *Sampler) Supersample(x, y, n int) palette.RGB {
	var sumR, sumG, sumB int
	fn := float64(n)
	for sy := 0; sy < n; sy++ {
		fy := (float64(sy) + 0.5) / fn
		for sx := 0; sx < n; sx++ {
			c := s.Sample(x, y, (float64(sx)+0.5)/fn, fy)
			sumR += int(c.R)
			sumG += int(c.G)
			sumB += int(c.B)
		}
	}
	count := n * n
	return palette.RGB{
		R: uint8(sumR / count),
		G: uint8(sumG / count),
		B: uint8(sumB / count),
	}
}

// Pixel picks the single-sample path for samples <= 1.
func (s *Sampler) Pixel(x, y, samples int) palette.RGB {
	if samples <= 1 {
		return s.Center(x, y)
	}
	return s.Supersample(x, y, samples)
}
