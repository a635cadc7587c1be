package postprocess

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"fractal-renderer/internal/view"
)

const (
	overlayPad  = 4
	lineSpacing = 2
)

var overlayBackdrop = image.NewUniform(color.NRGBA{0, 0, 0, 160})

// FormatInfo describes a view in the lines drawn by DrawInfo.
func FormatInfo(v view.Config, elapsed time.Duration) []string {
	mode := v.Kind.String()
	if v.Julia {
		mode += fmt.Sprintf(" julia (%.6f, %.6f)", v.SeedR, v.SeedI)
	}
	iter := fmt.Sprintf("iterations %d", v.MaxIter)
	if v.AutoIter {
		iter += " (auto)"
	}
	return []string{
		fmt.Sprintf("center (%.15f, %.15f)", v.CenterX, v.CenterY),
		fmt.Sprintf("zoom %.3gx  height %.3g", v.Zoom(), v.Height),
		iter + fmt.Sprintf("  density %.4f  palette %d", v.Density, v.Palette),
		mode,
		fmt.Sprintf("render %dms", elapsed.Milliseconds()),
	}
}

// DrawInfo writes lines in the top-left corner of dst over a translucent
// backdrop.
func DrawInfo(dst draw.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	lineH := face.Metrics().Height.Ceil() + lineSpacing
	width := 0
	for _, l := range lines {
		width = max(width, d.MeasureString(l).Ceil())
	}
	box := image.Rect(0, 0, width+2*overlayPad, len(lines)*lineH+2*overlayPad).
		Add(dst.Bounds().Min).Intersect(dst.Bounds())
	draw.Draw(dst, box, overlayBackdrop, image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(dst.Bounds().Min.X+overlayPad, dst.Bounds().Min.Y+overlayPad+ascent+i*lineH)
		d.DrawString(l)
	}
}
