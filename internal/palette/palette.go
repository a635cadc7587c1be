// Package palette holds the cyclic color ramps used to shade escape values.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Black is reserved for points that never escaped. It is not part of any
// palette cycle.
var Black = RGB{}

// Palette is a non-empty color ramp. Indexing wraps modulo its length.
type Palette []RGB

// Classic is the default 15-step blue/orange ramp.
var Classic = Palette{
	{66, 30, 15}, {25, 7, 26}, {9, 1, 47},
	{4, 4, 73}, {0, 7, 100}, {12, 44, 138},
	{24, 82, 177}, {57, 125, 209}, {134, 181, 229},
	{211, 236, 248}, {241, 233, 191}, {248, 201, 95},
	{255, 170, 0}, {204, 128, 0}, {153, 87, 0},
}

// Mono alternates black and white.
var Mono = Palette{{0, 0, 0}, {255, 255, 255}}

// Hue walks the HSV wheel in 12 steps.
var Hue = hueWheel(12)

// Table is the ordered list of built-in palettes.
var Table = []Palette{Classic, Mono, Hue}

// Get returns Table[i], wrapping i into range.
func Get(i int) Palette {
	n := len(Table)
	return Table[((i%n)+n)%n]
}

func hueWheel(steps int) Palette {
	p := make(Palette, steps)
	for i := range p {
		c := colorful.Hsv(360*float64(i)/float64(steps), 0.85, 0.95)
		r, g, b := c.Clamped().RGB255()
		p[i] = RGB{r, g, b}
	}
	return p
}

// At maps a shade value onto the ramp: the integer part picks the color
// pair, the fractional part blends between them. Shades one palette length
// apart give the same color. Non-finite shades map to the first entry.
func (p Palette) At(shade float64) RGB {
	if math.IsNaN(shade) || math.IsInf(shade, 0) {
		return p[0]
	}
	n := len(p)
	fl := math.Floor(shade)
	frac := shade - fl
	i := int(math.Mod(fl, float64(n)))
	if i < 0 {
		i += n
	}
	return Lerp(p[i], p[(i+1)%n], frac)
}

// Lerp blends a toward b component-wise, truncating toward zero.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
	}
}
