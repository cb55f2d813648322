// Package surface owns the drawable area a backend renders into.
package surface

import (
	"fmt"
	"image"
	"image/color"

	"canvashost/hal"

	"github.com/gogpu/gg"
)

// Surface is a pixel buffer sized to the host viewport.
//
// A Surface is created once and resized in place. Both dimensions are at
// least 1. It is not safe for concurrent use; hosts touch it only from their
// dispatch goroutine.
type Surface struct {
	id     string
	width  int
	height int

	dc     *gg.Context
	target hal.Canvas

	overlays []overlay
	nextID   int
}

type overlay struct {
	id   int
	draw func(*Display)
}

// New returns a surface of the given size presenting to target. Dimensions
// below 1 are clamped to 1.
func New(id string, width, height int, target hal.Canvas) *Surface {
	width, height = clampSize(width, height)
	return &Surface{
		id:     id,
		width:  width,
		height: height,
		dc:     gg.NewContext(width, height),
		target: target,
	}
}

func (s *Surface) ID() string  { return s.id }
func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// Context returns the drawing context. It stays valid across resizes.
func (s *Surface) Context() *gg.Context { return s.dc }

// Pixels returns the RGBA buffer, 4 bytes per pixel, row-major. The slice is
// replaced on resize.
func (s *Surface) Pixels() []byte { return s.dc.ResizeTarget().Data() }

// Resize changes the dimensions in place. Contents are cleared when the size
// changes.
func (s *Surface) Resize(width, height int) {
	width, height = clampSize(width, height)
	if width == s.width && height == s.height {
		return
	}
	// Dimensions are clamped, so Resize cannot fail.
	_ = s.dc.Resize(width, height)
	s.width, s.height = width, height
}

// Acquire obtains the host rendering context when the target needs one.
func (s *Surface) Acquire() error {
	if a, ok := s.target.(hal.Acquirer); ok {
		return a.Acquire()
	}
	return nil
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.RGBA) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// FillRect fills r, clipped to the surface, with c.
func (s *Surface) FillRect(r image.Rectangle, c color.RGBA) error {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return nil
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	return s.dc.Fill()
}

// Display returns a pixel-level view usable by tinyfont and tinyterm.
func (s *Surface) Display() *Display {
	return &Display{s: s, w: s.width, h: s.height}
}

// AddOverlay registers draw to run on every Present after the backend drew.
func (s *Surface) AddOverlay(draw func(*Display)) (remove func()) {
	s.nextID++
	id := s.nextID
	s.overlays = append(s.overlays, overlay{id: id, draw: draw})
	return func() {
		for i, o := range s.overlays {
			if o.id == id {
				s.overlays = append(s.overlays[:i:i], s.overlays[i+1:]...)
				return
			}
		}
	}
}

// Present draws overlays and hands the pixels to the host canvas.
func (s *Surface) Present() error {
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("surface: flush: %w", err)
	}
	if len(s.overlays) > 0 {
		d := s.Display()
		for _, o := range s.overlays {
			o.draw(d)
		}
	}
	if s.target == nil {
		return nil
	}
	if err := s.target.Blit(s.Pixels(), s.width, s.height); err != nil {
		return fmt.Errorf("surface: present: %w", err)
	}
	return nil
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
