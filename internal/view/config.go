// Package view describes which part of the complex plane is rendered and how,
// and maps output pixels onto it.
package view

import "fractal-renderer/internal/escape"

// Defaults for a fresh view.
const (
	DefaultCenterX         = -0.5
	DefaultCenterY         = 0.0
	DefaultHeight          = 3.0
	DefaultMaxIter         = 128
	DefaultDensity         = 0.2
	DefaultSeedR           = -0.8
	DefaultSeedI           = 0.156
	DefaultStripeFrequency = 5.0
	DefaultStripeIntensity = 10.0
)

// Config is a render configuration. Renders take it by value, so a render in
// flight never observes later edits.
//
// Height > 0 and MaxIter >= 1 are the caller's responsibility; nothing here
// validates them.
type Config struct {
	CenterX, CenterY float64
	Height           float64 // plane units spanned vertically
	MaxIter          int
	AutoIter         bool
	Density          float64 // scales the smooth value before palette lookup
	Kind             escape.Kind
	Julia            bool
	SeedR, SeedI     float64
	Palette          int
	Stripes          bool
	StripeFrequency  float64
	StripeIntensity  float64
	Inner            bool
	AntiAliasing     bool
}

// Default returns the initial Mandelbrot overview with manual iterations.
func Default() Config {
	return Config{
		CenterX:         DefaultCenterX,
		CenterY:         DefaultCenterY,
		Height:          DefaultHeight,
		MaxIter:         DefaultMaxIter,
		Density:         DefaultDensity,
		Kind:            escape.Mandelbrot,
		SeedR:           DefaultSeedR,
		SeedI:           DefaultSeedI,
		StripeFrequency: DefaultStripeFrequency,
		StripeIntensity: DefaultStripeIntensity,
	}
}

// Width is the plane width spanned for an output of w×h pixels.
func (c Config) Width(w, h int) float64 {
	return c.Height * (float64(w) / float64(h))
}

// Zoom is the magnification relative to the default height.
func (c Config) Zoom() float64 {
	return DefaultHeight / c.Height
}

// Params extracts the recurrence parameters.
func (c Config) Params() escape.Params {
	return escape.Params{
		MaxIter:         c.MaxIter,
		Kind:            c.Kind,
		Julia:           c.Julia,
		SeedR:           c.SeedR,
		SeedI:           c.SeedI,
		Stripes:         c.Stripes,
		StripeFrequency: c.StripeFrequency,
		Inner:           c.Inner,
	}
}
