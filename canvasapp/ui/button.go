package ui

import (
	"image"
	"image/color"

	"canvashost/surface"
)

// ButtonMargin is the padding between a button's edge and its label.
const ButtonMargin = 5

// Button is a labelled rectangle that toggles between two color sets when
// tapped.
type Button struct {
	At        image.Point
	Label     string
	Scale     int
	Color     color.RGBA
	TextColor color.RGBA

	PressedColor     color.RGBA
	PressedTextColor color.RGBA

	// OnTap runs after the pressed state flipped.
	OnTap func(b *Button)

	pressed bool
}

func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) text() Text {
	c := b.TextColor
	if b.pressed {
		c = b.PressedTextColor
	}
	return Text{Label: b.Label, Scale: b.Scale, Color: c}
}

// Bounds is the collision rectangle: the label plus the margin on every
// side.
func (b *Button) Bounds() image.Rectangle {
	sz := b.text().Size().Add(image.Pt(2*ButtonMargin, 2*ButtonMargin))
	return image.Rectangle{Min: b.At, Max: b.At.Add(sz)}
}

func (b *Button) Render(s *surface.Surface) error {
	bg := b.Color
	if b.pressed {
		bg = b.PressedColor
	}
	if err := s.FillRect(b.Bounds(), bg); err != nil {
		return err
	}
	return b.text().Draw(s, b.At.Add(image.Pt(ButtonMargin, ButtonMargin)))
}

func (b *Button) OnGesture(g Gesture) {
	if g.Kind != GestureTap {
		return
	}
	b.pressed = !b.pressed
	if b.OnTap != nil {
		b.OnTap(b)
	}
}
