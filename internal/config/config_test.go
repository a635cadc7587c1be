package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"fractal-renderer/internal/escape"
	"fractal-renderer/internal/view"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{Palette: -1})

	if c.Width != 1344 || c.Height != 756 {
		t.Errorf("size = %dx%d, want 1344x756", c.Width, c.Height)
	}
	if c.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want NumCPU", c.Workers)
	}
	if c.Fractal != "mandelbrot" {
		t.Errorf("Fractal = %q", c.Fractal)
	}
	if *c.CenterX != view.DefaultCenterX || *c.CenterY != view.DefaultCenterY {
		t.Errorf("center = (%v, %v)", *c.CenterX, *c.CenterY)
	}
	if !*c.AutoIter {
		t.Error("auto iterations should default on")
	}
	a := c.Animation
	if a.Frames != DefaultFrames || a.Rate != 25 || a.FrameDelay != 40 {
		t.Errorf("animation = %+v", a)
	}
	if *a.TargetX != DefaultTargetX || a.MaxIter != DefaultTargetIter {
		t.Errorf("animation target = (%v, %d)", *a.TargetX, a.MaxIter)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadAndFlags(t *testing.T) {
	path := writeConfig(t, `{
		"output": "out.png",
		"width": 320,
		"fractal": "burning_ship",
		"center_x": 0,
		"center_y": -0.5,
		"view_height": 0.25,
		"auto_iterations": false,
		"max_iterations": 400,
		"palette": 2,
		"stripes": true,
		"animation": {"frames": 12, "target_x": 0.1, "rate": 10}
	}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c.Resolve(Flags{Width: 640, Palette: -1, Inner: true})

	if c.Output != "out.png" || c.Width != 640 || c.Height != 756 {
		t.Errorf("output = %s %dx%d", c.Output, c.Width, c.Height)
	}
	v := c.View()
	if v.Kind != escape.BurningShip {
		t.Errorf("Kind = %v", v.Kind)
	}
	// An explicit zero center must survive defaulting.
	if v.CenterX != 0 || v.CenterY != -0.5 || v.Height != 0.25 {
		t.Errorf("view = (%v, %v) h %v", v.CenterX, v.CenterY, v.Height)
	}
	if v.AutoIter || v.MaxIter != 400 {
		t.Errorf("iterations = %d auto %v, want 400 manual", v.MaxIter, v.AutoIter)
	}
	if v.Palette != 2 || !v.Stripes || !v.Inner {
		t.Errorf("shading = palette %d stripes %v inner %v", v.Palette, v.Stripes, v.Inner)
	}

	tw := c.Tween()
	if tw.Target.CenterX != 0.1 || tw.Target.CenterY != DefaultTargetY || tw.Rate != 10 {
		t.Errorf("tween = %+v", tw)
	}
	if c.Animation.Frames != 12 {
		t.Errorf("Frames = %d", c.Animation.Frames)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	c := Config{Width: 100, Fractal: "burning_ship", Palette: 2}
	c.Resolve(Flags{Width: 200, Fractal: "mandelbrot", Palette: 0, MaxIter: 300, Frames: 5})

	if c.Width != 200 || c.Fractal != "mandelbrot" || c.Palette != 0 {
		t.Errorf("flags not applied: %+v", c)
	}
	if *c.AutoIter || c.MaxIter != 300 {
		t.Error("-iterations should fix the cap and turn auto iterations off")
	}
	if c.Animation.Frames != 5 {
		t.Errorf("Frames = %d, want 5", c.Animation.Frames)
	}
}

func TestViewAutoIterations(t *testing.T) {
	var c Config
	c.Resolve(Flags{Palette: -1})
	v := c.View()
	if v.MaxIter != view.MinAutoIter {
		t.Errorf("MaxIter = %d, want %d at zoom 1", v.MaxIter, view.MinAutoIter)
	}

	c.ViewHeight = 3e-6
	if got := c.View().MaxIter; got != 600 {
		t.Errorf("MaxIter = %d, want 600 at zoom 1e6", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		want string
	}{
		{"unknown fractal", func(c *Config) { c.Fractal = "julia" }, "unknown fractal"},
		{"too wide", func(c *Config) { c.Width = 20000 }, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.Resolve(Flags{Palette: -1})
			tt.edit(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, `{"width": "wide"}`)); err == nil {
		t.Error("expected error for malformed config")
	}
}
