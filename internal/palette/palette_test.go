package palette

import (
	"math"
	"slices"
	"testing"
)

func TestAtPeriodic(t *testing.T) {
	shades := []float64{0, 0.25, 3.5, 7.75, 14.5, 1.125}
	for pi, p := range Table {
		n := float64(len(p))
		for _, s := range shades {
			want := p.At(s)
			for k := 1; k <= 3; k++ {
				if got := p.At(s + float64(k)*n); got != want {
					t.Errorf("palette %d: At(%g) = %v, At(%g) = %v", pi, s, want, s+float64(k)*n, got)
				}
			}
		}
	}
}

func TestAtIntegerHitsEntry(t *testing.T) {
	for i, c := range Classic {
		if got := Classic.At(float64(i)); got != c {
			t.Errorf("At(%d) = %v, want %v", i, got, c)
		}
	}
}

func TestAtWraps(t *testing.T) {
	last := Classic[len(Classic)-1]
	tests := []struct {
		shade float64
		want  RGB
	}{
		{14.5, Lerp(last, Classic[0], 0.5)},
		{-1, last},
		{-0.5, Lerp(last, Classic[0], 0.5)},
		{-15, Classic[0]},
		{1e9, Classic[int(math.Mod(1e9, 15))]},
	}
	for _, tt := range tests {
		if got := Classic.At(tt.shade); got != tt.want {
			t.Errorf("At(%g) = %v, want %v", tt.shade, got, tt.want)
		}
	}
}

func TestAtNonFinite(t *testing.T) {
	for _, s := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Classic.At(s); got != Classic[0] {
			t.Errorf("At(%g) = %v, want %v", s, got, Classic[0])
		}
	}
}

func TestLerpTruncates(t *testing.T) {
	got := Lerp(RGB{66, 30, 15}, RGB{25, 7, 26}, 0.5)
	want := RGB{45, 18, 20}
	if got != want {
		t.Errorf("Lerp() = %v, want %v", got, want)
	}
	if got := Lerp(RGB{1, 2, 3}, RGB{200, 100, 50}, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("Lerp(t=0) = %v", got)
	}
}

func TestGetWraps(t *testing.T) {
	n := len(Table)
	if !slices.Equal(Get(0), Classic) {
		t.Error("Get(0) should be Classic")
	}
	if !slices.Equal(Get(n), Table[0]) {
		t.Errorf("Get(%d) should wrap to Table[0]", n)
	}
	if !slices.Equal(Get(-1), Table[n-1]) {
		t.Error("Get(-1) should wrap to the last palette")
	}
}

func TestHueWheel(t *testing.T) {
	if len(Hue) != 12 {
		t.Fatalf("len(Hue) = %d, want 12", len(Hue))
	}
	red := Hue[0]
	if red.R <= red.G || red.G != red.B {
		t.Errorf("Hue[0] = %v, want a red", red)
	}
	if slices.Contains(Hue[1:], red) {
		t.Error("hue steps should be distinct")
	}
}
