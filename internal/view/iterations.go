package view

import "math"

// Iteration bounds used in auto mode.
const (
	MinAutoIter = 100
	MaxAutoIter = 10000
)

// AdjustIterations derives MaxIter from the zoom level when AutoIter is set.
// Call it after every height change.
func AdjustIterations(c *Config) {
	if !c.AutoIter {
		return
	}
	candidate := int(100 * math.Log10(1+c.Zoom()))
	c.MaxIter = max(MinAutoIter, min(MaxAutoIter, candidate))
}
