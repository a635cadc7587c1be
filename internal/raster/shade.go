package raster

import (
	"fractal-renderer/internal/escape"
	"fractal-renderer/internal/palette"
	"fractal-renderer/internal/view"
)

// Shade colors one evaluation. Interior points are always black.
func Shade(r escape.Result, c view.Config, p palette.Palette) palette.RGB {
	if r.Iter == escape.Interior {
		return palette.Black
	}
	return p.At(shadeValue(r, c))
}

// shadeValue is the position on the palette ramp: the average stripe term
// scaled by intensity, or the smooth count scaled by density. Kept in
// float64 on purpose; a float32 ramp position can land on the other side of
// an integer shade and pick the neighbouring palette pair.
func shadeValue(r escape.Result, c view.Config) float64 {
	if c.Stripes {
		// A Julia start point already outside the escape radius takes no steps.
		if r.Iter == 0 {
			return 0
		}
		return c.StripeIntensity * (r.Stripe / float64(r.Iter))
	}
	return r.Smooth * c.Density
}
