// Package ui is a tiny retained widget set drawn on a surface.
package ui

import (
	"image"
	"image/color"

	"canvashost/fonts/glyph5x5"
	"canvashost/surface"

	"tinygo.org/x/tinyfont"
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, A: 255}
	Green = color.RGBA{G: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
	Gray  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Black = color.RGBA{A: 255}
)

// Widget is something with a size that can be drawn at a point.
type Widget interface {
	Size() image.Point
	Draw(s *surface.Surface, at image.Point) error
}

// Element is a widget that knows where it goes.
type Element interface {
	Render(s *surface.Surface) error
}

// Text is a single line in the 5x5 glyph font.
type Text struct {
	Label string
	Scale int
	Color color.RGBA
}

func (t Text) font() *glyph5x5.Font { return glyph5x5.New(t.Scale) }

func (t Text) Size() image.Point {
	f := t.font()
	n := len([]rune(t.Label))
	return image.Pt(f.TextWidth(n), glyph5x5.GlyphSize*f.Scale())
}

// Draw writes the label with its top-left corner at at.
func (t Text) Draw(s *surface.Surface, at image.Point) error {
	f := t.font()
	baseline := at.Y + glyph5x5.GlyphSize*f.Scale() - 1
	tinyfont.WriteLine(s.Display(), f, int16(at.X), int16(baseline), t.Label, t.Color)
	return nil
}

// Rectangle is a solid block.
type Rectangle struct {
	W, H  int
	Color color.RGBA
}

func (r Rectangle) Size() image.Point { return image.Pt(r.W, r.H) }

func (r Rectangle) Draw(s *surface.Surface, at image.Point) error {
	return s.FillRect(image.Rectangle{Min: at, Max: at.Add(image.Pt(r.W, r.H))}, r.Color)
}

// Positioned places a widget at a fixed point.
type Positioned struct {
	At    image.Point
	Child Widget
}

func (p Positioned) Render(s *surface.Surface) error {
	return p.Child.Draw(s, p.At)
}

// HCenter centers a widget horizontally on the current surface width, at
// row At.Y and shifted by At.X.
type HCenter struct {
	At    image.Point
	Child Widget
}

func (h HCenter) Render(s *surface.Surface) error {
	x := h.At.X + (s.Width()-h.Child.Size().X)/2
	return h.Child.Draw(s, image.Pt(x, h.At.Y))
}
