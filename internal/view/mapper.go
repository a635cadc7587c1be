package view

// Mapper converts pixel positions to plane points for one output size.
type Mapper struct {
	left, top      float64
	pixelW, pixelH float64
}

// NewMapper precomputes the viewport edges and pixel pitch.
func NewMapper(c Config, w, h int) Mapper {
	vw := c.Width(w, h)
	return Mapper{
		left:   c.CenterX - vw/2,
		top:    c.CenterY - c.Height/2,
		pixelW: vw / float64(w),
		pixelH: c.Height / float64(h),
	}
}

// Point returns the plane point at sub-pixel offset (fx, fy) inside pixel
// (x, y). The pixel center is (0.5, 0.5).
func (m Mapper) Point(x, y int, fx, fy float64) (cr, ci float64) {
	cr = m.left + (float64(x)+fx)*m.pixelW
	ci = m.top + (float64(y)+fy)*m.pixelH
	return cr, ci
}

// PixelSize is the plane extent of one pixel.
func (m Mapper) PixelSize() (w, h float64) {
	return m.pixelW, m.pixelH
}

// PlanePoint is the one-shot form of NewMapper(c, w, h).Point(x, y, fx, fy).
func PlanePoint(c Config, x, y, w, h int, fx, fy float64) (cr, ci float64) {
	return NewMapper(c, w, h).Point(x, y, fx, fy)
}
