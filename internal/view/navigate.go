package view

// Zoom factors for one zoom step.
const (
	ZoomIn  = 0.5
	ZoomOut = 2.0
)

// MinManualIter is the floor for ScaleIterations.
const MinManualIter = 50

// ZoomAt scales Height by factor while keeping the plane point under pixel
// (px, py) of a w×h output fixed.
func (c *Config) ZoomAt(px, py, w, h int, factor float64) {
	mx, my := c.cornerPoint(px, py, w, h)
	c.CenterX = mx + (c.CenterX-mx)*factor
	c.CenterY = my + (c.CenterY-my)*factor
	c.Height *= factor
	AdjustIterations(c)
}

// Pan moves the view so the content shifts by (dx, dy) pixels; positive
// values move the viewport right and down.
func (c *Config) Pan(dx, dy, w, h int) {
	c.CenterX += float64(dx) * c.Width(w, h) / float64(w)
	c.CenterY += float64(dy) * c.Height / float64(h)
}

// Reset restores the default center and height.
func (c *Config) Reset() {
	c.CenterX = DefaultCenterX
	c.CenterY = DefaultCenterY
	c.Height = DefaultHeight
	AdjustIterations(c)
}

// ScaleIterations multiplies MaxIter by f and turns auto mode off.
func (c *Config) ScaleIterations(f float64) {
	c.MaxIter = max(MinManualIter, int(float64(c.MaxIter)*f))
	c.AutoIter = false
}

// ToggleAuto flips auto mode, adjusting immediately when it turns on.
func (c *Config) ToggleAuto() {
	c.AutoIter = !c.AutoIter
	AdjustIterations(c)
}

// StepStripeFrequency changes the stripe frequency by delta, never below 1.
func (c *Config) StepStripeFrequency(delta float64) {
	c.StripeFrequency = max(1, c.StripeFrequency+delta)
}

// cornerPoint maps the top-left corner of a pixel, which is how pointer
// positions land on the plane.
func (c Config) cornerPoint(px, py, w, h int) (float64, float64) {
	return NewMapper(c, w, h).Point(px, py, 0, 0)
}
