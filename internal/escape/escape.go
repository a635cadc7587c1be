// Package escape implements the escape-time recurrence for the Mandelbrot
// and Burning Ship families and their Julia variants.
package escape

import "math"

// Kind selects the recurrence.
type Kind int

const (
	Mandelbrot Kind = iota
	BurningShip
)

// Kinds lists every supported recurrence in toggle order.
var Kinds = []Kind{Mandelbrot, BurningShip}

func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case BurningShip:
		return "burning_ship"
	}
	return "unknown"
}

// ParseKind maps a name produced by Kind.String back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return Mandelbrot, false
}

// Next returns the following kind, wrapping around.
func (k Kind) Next() Kind {
	return Kinds[(int(k)+1)%len(Kinds)]
}

// EscapeRadius is large so the log-log smoothing stays stable.
const EscapeRadius = 100.0

const escapeRadius2 = EscapeRadius * EscapeRadius

// Interior marks a point that never escaped and carries no smooth value.
const Interior = -1

// Params holds everything except the plane point that the recurrence reads.
type Params struct {
	MaxIter         int
	Kind            Kind
	Julia           bool
	SeedR, SeedI    float64
	Stripes         bool
	StripeFrequency float64
	// Inner computes a smooth value for points that hit MaxIter instead of
	// reporting them as Interior.
	Inner bool
}

// Result is the outcome of iterating one plane point.
type Result struct {
	Iter   int     // escape step, or Interior
	Smooth float64 // valid when Iter >= 0
	Stripe float64 // sum of per-step stripe terms, valid when Iter >= 0 and stripes are on
}

// InCardioid reports whether c lies inside the main cardioid.
func InCardioid(cr, ci float64) bool {
	x := cr - 0.25
	q := x*x + ci*ci
	return q*(q+x) < 0.25*ci*ci
}

// InBulb reports whether c lies inside the period-2 bulb centered at -1.
func InBulb(cr, ci float64) bool {
	x := cr + 1
	return x*x+ci*ci < 0.0625
}

// Evaluate iterates the point (cr, ci) under p. It is a pure function:
// identical inputs give bit-identical results.
func Evaluate(cr, ci float64, p Params) Result {
	var zr, zi, kr, ki float64
	if p.Julia {
		zr, zi = cr, ci
		kr, ki = p.SeedR, p.SeedI
	} else {
		kr, ki = cr, ci
	}

	if !p.Inner && !p.Julia && p.Kind == Mandelbrot {
		if InCardioid(cr, ci) || InBulb(cr, ci) {
			return Result{Iter: Interior}
		}
	}

	zr2, zi2 := zr*zr, zi*zi
	var stripe float64
	i := 0
	for zr2+zi2 < escapeRadius2 {
		if p.Kind == BurningShip {
			zi = 2*math.Abs(zr*zi) + ki
		} else {
			zi = 2*zr*zi + ki
		}
		zr = zr2 - zi2 + kr
		zr2, zi2 = zr*zr, zi*zi
		if p.Stripes {
			s := math.Sin(math.Atan2(zi, zr) * p.StripeFrequency)
			stripe += s * s
		}
		i++
		// The cap is checked before the escape test, so a point escaping on
		// exactly the last step still counts as capped.
		if i == p.MaxIter {
			if !p.Inner {
				return Result{Iter: Interior}
			}
			break
		}
	}

	return Result{
		Iter:   i,
		Smooth: smooth(i, zr2+zi2),
		Stripe: stripe,
	}
}

// smooth renormalizes the escape count so it is continuous across integer
// iteration boundaries. Capped points with |z| < 1 yield NaN.
func smooth(i int, mag2 float64) float64 {
	return float64(i) + 1 - math.Log(math.Log(mag2)/2)/math.Ln2
}
