package escape

import (
	"math"
	"testing"
)

func sameResult(a, b Result) bool {
	return a.Iter == b.Iter &&
		math.Float64bits(a.Smooth) == math.Float64bits(b.Smooth) &&
		math.Float64bits(a.Stripe) == math.Float64bits(b.Stripe)
}

func TestEvaluateDeterministic(t *testing.T) {
	points := [][2]float64{{-0.5, 0}, {0.26, 0}, {-0.75, 0.1}, {-1.8, -0.1}, {0.3, 0.5}, {2, 2}}
	params := []Params{
		{MaxIter: 128},
		{MaxIter: 128, Kind: BurningShip},
		{MaxIter: 128, Julia: true, SeedR: -0.8, SeedI: 0.156},
		{MaxIter: 128, Stripes: true, StripeFrequency: 5},
		{MaxIter: 64, Inner: true},
	}
	for _, p := range params {
		for _, pt := range points {
			a := Evaluate(pt[0], pt[1], p)
			b := Evaluate(pt[0], pt[1], p)
			if !sameResult(a, b) {
				t.Errorf("Evaluate(%v, %+v) not deterministic: %+v vs %+v", pt, p, a, b)
			}
		}
	}
}

func TestBailoutAgreesWithIteration(t *testing.T) {
	inside := [][2]float64{{-0.5, 0}, {0, 0}, {-0.1, 0.1}, {0.1, -0.2}, {-1, 0}, {-1.1, 0.1}, {-0.95, -0.1}}
	for _, pt := range inside {
		if !InCardioid(pt[0], pt[1]) && !InBulb(pt[0], pt[1]) {
			t.Fatalf("%v should be inside the cardioid or bulb", pt)
		}
		quick := Evaluate(pt[0], pt[1], Params{MaxIter: 500})
		if quick.Iter != Interior {
			t.Errorf("Evaluate(%v) = %d, want Interior", pt, quick.Iter)
		}
		// Inner disables the shortcut, so this iterates all the way.
		brute := Evaluate(pt[0], pt[1], Params{MaxIter: 500, Inner: true})
		if brute.Iter != 500 {
			t.Errorf("brute force %v escaped at %d, want cap 500", pt, brute.Iter)
		}
	}
}

func TestBailoutNoFalsePositives(t *testing.T) {
	escaping := [][2]float64{{2, 2}, {-0.75, 0.1}, {0.26, 0}, {-1.8, -0.1}, {0.5, 0.5}, {-2.1, 0}}
	for _, pt := range escaping {
		if InCardioid(pt[0], pt[1]) || InBulb(pt[0], pt[1]) {
			t.Errorf("%v misclassified as interior", pt)
		}
		if r := Evaluate(pt[0], pt[1], Params{MaxIter: 1000}); r.Iter <= 0 {
			t.Errorf("Evaluate(%v).Iter = %d, want escape", pt, r.Iter)
		}
	}

	// Every grid point the shortcut claims must survive brute-force iteration.
	for i := 0; i < 60; i++ {
		for j := 0; j < 60; j++ {
			cr := -2.5 + 3.5*float64(i)/59
			ci := -1.5 + 3*float64(j)/59
			if !InCardioid(cr, ci) && !InBulb(cr, ci) {
				continue
			}
			if r := Evaluate(cr, ci, Params{MaxIter: 1000, Inner: true}); r.Iter != 1000 {
				t.Errorf("shortcut claims (%g, %g) but it escaped at %d", cr, ci, r.Iter)
			}
		}
	}
}

func TestBurningShipDiffers(t *testing.T) {
	m := Evaluate(-1.8, -0.1, Params{MaxIter: 128, Kind: Mandelbrot})
	b := Evaluate(-1.8, -0.1, Params{MaxIter: 128, Kind: BurningShip})
	if m.Iter == Interior || b.Iter == Interior {
		t.Fatalf("expected both to escape, got %d and %d", m.Iter, b.Iter)
	}
	if sameResult(m, b) {
		t.Errorf("Mandelbrot and BurningShip agree at (-1.8, -0.1): %+v", m)
	}
}

func TestJuliaAtOriginMatchesMandelbrotOrbit(t *testing.T) {
	// z0 = 0 with constant c follows the same orbit as the Mandelbrot point c.
	seeds := [][2]float64{{-0.8, 0.156}, {-0.75, 0.1}, {0.26, 0}}
	for _, s := range seeds {
		j := Evaluate(0, 0, Params{MaxIter: 300, Julia: true, SeedR: s[0], SeedI: s[1], Inner: true})
		m := Evaluate(s[0], s[1], Params{MaxIter: 300, Inner: true})
		if !sameResult(j, m) {
			t.Errorf("seed %v: julia %+v, mandelbrot %+v", s, j, m)
		}
	}
}

func TestCapCountsAsInterior(t *testing.T) {
	// (2, 2) escapes on step 3.
	if r := Evaluate(2, 2, Params{MaxIter: 4}); r.Iter != 3 {
		t.Fatalf("Evaluate(2,2).Iter = %d, want 3", r.Iter)
	}
	if r := Evaluate(2, 2, Params{MaxIter: 3}); r.Iter != Interior {
		t.Errorf("escape on the last step: Iter = %d, want Interior", r.Iter)
	}
	if r := Evaluate(2, 2, Params{MaxIter: 3, Inner: true}); r.Iter != 3 {
		t.Errorf("inner at cap: Iter = %d, want 3", r.Iter)
	}
}

func TestInnerCalculation(t *testing.T) {
	r := Evaluate(-0.5, 0, Params{MaxIter: 50, Inner: true})
	if r.Iter != 50 {
		t.Errorf("Iter = %d, want 50", r.Iter)
	}
	if r := Evaluate(-0.5, 0, Params{MaxIter: 50}); r.Iter != Interior {
		t.Errorf("flat interior: Iter = %d, want Interior", r.Iter)
	}
	// Burning Ship has no shortcut but still caps.
	if r := Evaluate(-0.5, 0, Params{MaxIter: 50, Kind: BurningShip}); r.Iter != Interior {
		t.Errorf("burning ship interior: Iter = %d, want Interior", r.Iter)
	}
}

func TestSmoothContinuousAlongRay(t *testing.T) {
	prev := Evaluate(0.6, 0, Params{MaxIter: 1000})
	crossings := 0
	for k := 1; k <= 600; k++ {
		x := 0.6 - float64(k)*0.0005
		r := Evaluate(x, 0, Params{MaxIter: 1000})
		if r.Iter == Interior {
			t.Fatalf("x=%g unexpectedly interior", x)
		}
		d := r.Smooth - prev.Smooth
		if d < 0 {
			t.Errorf("smooth decreased at x=%g: %g -> %g", x, prev.Smooth, r.Smooth)
		}
		if d > 0.5 {
			t.Errorf("smooth jumped by %g at x=%g", d, x)
		}
		if r.Iter != prev.Iter {
			crossings++
		}
		prev = r
	}
	if crossings < 2 {
		t.Errorf("ray crossed %d iteration boundaries, want several", crossings)
	}
}

func TestStripeAccumulator(t *testing.T) {
	off := Evaluate(-0.75, 0.1, Params{MaxIter: 128})
	if off.Stripe != 0 {
		t.Errorf("stripes off: Stripe = %g, want 0", off.Stripe)
	}
	on := Evaluate(-0.75, 0.1, Params{MaxIter: 128, Stripes: true, StripeFrequency: 5})
	if on.Iter != off.Iter || on.Smooth != off.Smooth {
		t.Errorf("stripes changed the orbit: %+v vs %+v", on, off)
	}
	if on.Stripe <= 0 || on.Stripe > float64(on.Iter) {
		t.Errorf("Stripe = %g, want in (0, %d]", on.Stripe, on.Iter)
	}
}

func TestKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("newton"); ok {
		t.Error("ParseKind(newton) should fail")
	}
	if Mandelbrot.Next() != BurningShip || BurningShip.Next() != Mandelbrot {
		t.Error("Next should toggle between the two kinds")
	}
}
