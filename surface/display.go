package surface

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Display adapts a Surface, or a rectangular region of it, to
// drivers.Displayer.
//
// Coordinates are relative to the region origin; writes outside the region
// are dropped. Display does not present: Present on the Surface does.
type Display struct {
	s    *Surface
	x, y int
	w, h int
}

var _ drivers.Displayer = (*Display)(nil)

func (d *Display) Size() (x, y int16) {
	return int16(d.w), int16(d.h)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	ix += d.x
	iy += d.y
	if ix < 0 || ix >= d.s.width || iy < 0 || iy >= d.s.height {
		return
	}
	buf := d.s.Pixels()
	off := (iy*d.s.width + ix) * 4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off+0] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *Display) Display() error { return nil }

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, d.w)
	y0 := clampInt(int(y), 0, d.h)
	x1 := clampInt(int(x)+int(width), 0, d.w)
	y1 := clampInt(int(y)+int(height), 0, d.h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	buf := d.s.Pixels()
	for py := y0; py < y1; py++ {
		sy := py + d.y
		if sy < 0 || sy >= d.s.height {
			continue
		}
		for px := x0; px < x1; px++ {
			sx := px + d.x
			if sx < 0 || sx >= d.s.width {
				continue
			}
			off := (sy*d.s.width + sx) * 4
			buf[off+0] = c.R
			buf[off+1] = c.G
			buf[off+2] = c.B
			buf[off+3] = 0xFF
		}
	}
	return nil
}

func (d *Display) SetScroll(line int16) {
	_ = line
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// Region returns a view of the w x h rectangle at (x, y), clipped to this
// display.
func (d *Display) Region(x, y, w, h int) *Display {
	x0 := clampInt(x, 0, d.w)
	y0 := clampInt(y, 0, d.h)
	x1 := clampInt(x+w, 0, d.w)
	y1 := clampInt(y+h, 0, d.h)
	return &Display{s: d.s, x: d.x + x0, y: d.y + y0, w: x1 - x0, h: y1 - y0}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
