package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"fractal-renderer/internal/escape"
	"fractal-renderer/internal/view"
)

// Config holds output settings and the starting view.
type Config struct {
	// Output
	Output  string `json:"output"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Workers int    `json:"workers"`

	// View
	CenterX         *float64 `json:"center_x"`
	CenterY         *float64 `json:"center_y"`
	ViewHeight      float64  `json:"view_height"`
	MaxIter         int      `json:"max_iterations"`
	AutoIter        *bool    `json:"auto_iterations"`
	Density         float64  `json:"color_density"`
	Fractal         string   `json:"fractal"`
	Julia           bool     `json:"julia"`
	SeedR           *float64 `json:"julia_r"`
	SeedI           *float64 `json:"julia_i"`
	Palette         int      `json:"palette"`
	PaletteImage    string   `json:"palette_image"`
	Stripes         bool     `json:"stripes"`
	StripeFrequency float64  `json:"stripe_frequency"`
	StripeIntensity float64  `json:"stripe_intensity"`
	Inner           bool     `json:"inner"`
	AntiAliasing    bool     `json:"anti_aliasing"`

	// Animation
	Animation Animation `json:"animation"`
}

// Animation describes a zoom sequence toward a target.
type Animation struct {
	Frames     int      `json:"frames"`
	TargetX    *float64 `json:"target_x"`
	TargetY    *float64 `json:"target_y"`
	Height     float64  `json:"target_height"`
	Density    float64  `json:"target_density"`
	MaxIter    int      `json:"target_iterations"`
	Rate       float64  `json:"rate"`
	FrameDelay int      `json:"frame_delay_ms"`
}

// Default zoom target: a minibrot on the antenna near -1.711.
const (
	DefaultTargetX       = -1.7110287606470104826428269
	DefaultTargetY       = 0.0003109297379698081368812
	DefaultTargetHeight  = 0.0000000000001705302565824
	DefaultTargetDensity = 0.0186927672475576400756836
	DefaultTargetIter    = 1941
	DefaultFrames        = 100
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Fractal != "" {
		c.Fractal = flags.Fractal
	}
	if flags.Palette >= 0 {
		c.Palette = flags.Palette
	}
	if flags.MaxIter > 0 {
		c.MaxIter = flags.MaxIter
		c.AutoIter = ptr(false)
	}
	if flags.Frames > 0 {
		c.Animation.Frames = flags.Frames
	}
	c.Julia = c.Julia || flags.Julia
	c.Stripes = c.Stripes || flags.Stripes
	c.Inner = c.Inner || flags.Inner
	c.AntiAliasing = c.AntiAliasing || flags.AntiAliasing

	// Defaults for output settings
	if c.Width <= 0 {
		c.Width = 192 * 7
	}
	if c.Height <= 0 {
		c.Height = 108 * 7
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	// Defaults for the view
	if c.CenterX == nil {
		c.CenterX = ptr(view.DefaultCenterX)
	}
	if c.CenterY == nil {
		c.CenterY = ptr(view.DefaultCenterY)
	}
	if c.ViewHeight <= 0 {
		c.ViewHeight = view.DefaultHeight
	}
	if c.MaxIter <= 0 {
		c.MaxIter = view.DefaultMaxIter
	}
	if c.AutoIter == nil {
		c.AutoIter = ptr(true)
	}
	if c.Density <= 0 {
		c.Density = view.DefaultDensity
	}
	if c.Fractal == "" {
		c.Fractal = escape.Mandelbrot.String()
	}
	if c.SeedR == nil {
		c.SeedR = ptr(view.DefaultSeedR)
	}
	if c.SeedI == nil {
		c.SeedI = ptr(view.DefaultSeedI)
	}
	if c.StripeFrequency < 1 {
		c.StripeFrequency = view.DefaultStripeFrequency
	}
	if c.StripeIntensity == 0 {
		c.StripeIntensity = view.DefaultStripeIntensity
	}

	// Defaults for the animation
	a := &c.Animation
	if a.Frames <= 0 {
		a.Frames = DefaultFrames
	}
	if a.TargetX == nil {
		a.TargetX = ptr(DefaultTargetX)
	}
	if a.TargetY == nil {
		a.TargetY = ptr(DefaultTargetY)
	}
	if a.Height <= 0 {
		a.Height = DefaultTargetHeight
	}
	if a.Density <= 0 {
		a.Density = DefaultTargetDensity
	}
	if a.MaxIter <= 0 {
		a.MaxIter = DefaultTargetIter
	}
	if a.Rate < 1 {
		a.Rate = 25
	}
	if a.FrameDelay <= 0 {
		a.FrameDelay = 40
	}
}

// Validate reports settings the renderer cannot work with. Call after Resolve.
func (c Config) Validate() error {
	if _, ok := escape.ParseKind(c.Fractal); !ok {
		return fmt.Errorf("config: unknown fractal %q", c.Fractal)
	}
	if c.Width > 1<<14 || c.Height > 1<<14 {
		return fmt.Errorf("config: output %dx%d exceeds 16384 pixels per side", c.Width, c.Height)
	}
	return nil
}

// View builds the starting render configuration. Iterations are derived from
// the zoom level when auto iterations are on.
func (c Config) View() view.Config {
	kind, _ := escape.ParseKind(c.Fractal)
	v := view.Config{
		CenterX:         deref(c.CenterX, view.DefaultCenterX),
		CenterY:         deref(c.CenterY, view.DefaultCenterY),
		Height:          c.ViewHeight,
		MaxIter:         c.MaxIter,
		AutoIter:        deref(c.AutoIter, true),
		Density:         c.Density,
		Kind:            kind,
		Julia:           c.Julia,
		SeedR:           deref(c.SeedR, view.DefaultSeedR),
		SeedI:           deref(c.SeedI, view.DefaultSeedI),
		Palette:         c.Palette,
		Stripes:         c.Stripes,
		StripeFrequency: c.StripeFrequency,
		StripeIntensity: c.StripeIntensity,
		Inner:           c.Inner,
		AntiAliasing:    c.AntiAliasing,
	}
	view.AdjustIterations(&v)
	return v
}

// Tween builds the animation stepper toward the configured target.
func (c Config) Tween() view.Tween {
	target := c.View()
	target.CenterX = deref(c.Animation.TargetX, DefaultTargetX)
	target.CenterY = deref(c.Animation.TargetY, DefaultTargetY)
	target.Height = c.Animation.Height
	target.Density = c.Animation.Density
	target.MaxIter = c.Animation.MaxIter
	t := view.NewTween(target)
	t.Rate = c.Animation.Rate
	return t
}

// Flags holds CLI flag values that override config file settings.
// Palette < 0 means unset.
type Flags struct {
	Output       string
	Width        int
	Height       int
	Workers      int
	Fractal      string
	Palette      int
	MaxIter      int
	Frames       int
	Julia        bool
	Stripes      bool
	Inner        bool
	AntiAliasing bool
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
