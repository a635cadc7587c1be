package view

// Tween moves a view toward a target a fraction at a time, one step per
// animation frame.
type Tween struct {
	Target Config
	// Rate divides the remaining distance for height, density and
	// iterations. CenterRate does the same for the center; 1 jumps there.
	Rate       float64
	CenterRate float64
}

// NewTween uses the usual rates: jump to the center, close 1/25 of the rest.
func NewTween(target Config) Tween {
	return Tween{Target: target, Rate: 25, CenterRate: 1}
}

// Step returns c advanced by one frame. Auto iterations are switched off so
// the tweened iteration count sticks.
func (t Tween) Step(c Config) Config {
	c.CenterX += (t.Target.CenterX - c.CenterX) / t.CenterRate
	c.CenterY += (t.Target.CenterY - c.CenterY) / t.CenterRate
	c.Height += (t.Target.Height - c.Height) / t.Rate
	c.Density += (t.Target.Density - c.Density) / t.Rate
	c.MaxIter += (t.Target.MaxIter - c.MaxIter) / max(1, int(t.Rate))
	c.AutoIter = false
	return c
}

// Frames returns n configurations starting at start.
func Frames(start Config, t Tween, n int) []Config {
	frames := make([]Config, 0, max(n, 0))
	c := start
	for i := 0; i < n; i++ {
		frames = append(frames, c)
		c = t.Step(c)
	}
	return frames
}
