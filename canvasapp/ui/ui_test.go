package ui

import (
	"image"
	"image/color"
	"math"
	"testing"

	"canvashost/hal"
	"canvashost/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixelAt(s *surface.Surface, x, y int) color.RGBA {
	p := s.Pixels()
	i := (y*s.Width() + x) * 4
	return color.RGBA{R: p[i], G: p[i+1], B: p[i+2], A: p[i+3]}
}

func TestTextSize(t *testing.T) {
	assert.Equal(t, image.Pt(4*16, 15), Text{Label: "BOOP", Scale: 3}.Size())
	assert.Equal(t, image.Pt(0, 5), Text{Scale: 1}.Size())
}

func TestTextDrawsFromTopLeft(t *testing.T) {
	s := surface.New("c", 20, 20, nil)
	require.NoError(t, Text{Label: "I", Scale: 1, Color: Green}.Draw(s, image.Pt(2, 3)))

	// I is a full top bar.
	for x := 2; x < 7; x++ {
		assert.Equal(t, Green, pixelAt(s, x, 3), "x=%d", x)
	}
	// Bottom bar lands on row 3+4.
	assert.Equal(t, Green, pixelAt(s, 2, 7))
	assert.Equal(t, color.RGBA{}, pixelAt(s, 2, 8))
	assert.Equal(t, color.RGBA{}, pixelAt(s, 2, 2))
}

func TestHCenter(t *testing.T) {
	s := surface.New("c", 100, 20, nil)
	require.NoError(t, HCenter{At: image.Pt(0, 5), Child: Rectangle{W: 10, H: 2, Color: White}}.Render(s))

	got := pixelAt(s, 50, 5)
	assert.InDelta(t, 255, got.R, 1)
	assert.Equal(t, color.RGBA{}, pixelAt(s, 44, 5))
	assert.Equal(t, color.RGBA{}, pixelAt(s, 56, 5))
}

func TestButtonBoundsAndToggle(t *testing.T) {
	taps := 0
	b := &Button{
		At:               image.Pt(10, 190),
		Label:            "BOOP",
		Scale:            3,
		Color:            Gray,
		TextColor:        White,
		PressedColor:     White,
		PressedTextColor: Gray,
		OnTap:            func(*Button) { taps++ },
	}
	assert.Equal(t, image.Rect(10, 190, 10+64+10, 190+15+10), b.Bounds())

	b.OnGesture(Gesture{Kind: GestureTap})
	assert.True(t, b.Pressed())
	b.OnGesture(Gesture{Kind: GestureTap})
	assert.False(t, b.Pressed())
	assert.Equal(t, 2, taps)
}

func TestButtonRender(t *testing.T) {
	s := surface.New("c", 120, 60, nil)
	b := &Button{At: image.Pt(0, 0), Label: "A", Scale: 1, Color: Gray, TextColor: White, PressedColor: Red, PressedTextColor: White}
	require.NoError(t, b.Render(s))
	// Margin pixel takes the button color.
	got := pixelAt(s, 1, 1)
	assert.InDelta(t, 120, got.R, 1)

	b.OnGesture(Gesture{Kind: GestureTap})
	require.NoError(t, b.Render(s))
	got = pixelAt(s, 1, 1)
	assert.InDelta(t, 255, got.R, 1)
	assert.InDelta(t, 0, got.G, 1)
}

func TestGestureOf(t *testing.T) {
	g, ok := GestureOf(hal.ClickEvent{X: 12.7, Y: 3})
	require.True(t, ok)
	assert.Equal(t, Gesture{Kind: GestureTap, At: image.Pt(12, 3)}, g)

	for _, ev := range []hal.ClickEvent{
		{X: -1, Y: 0},
		{X: 0, Y: math.NaN()},
		{X: math.Inf(1), Y: 0},
		{X: 1, Y: 1, Button: 2},
	} {
		_, ok := GestureOf(ev)
		assert.False(t, ok, "%+v", ev)
	}
}

func TestHitTestTopmostFirst(t *testing.T) {
	under := &Button{At: image.Pt(0, 0), Label: "AAAA", Scale: 2}
	over := &Button{At: image.Pt(5, 5), Label: "B", Scale: 1}
	handlers := []GestureHandler{under, over}

	h, ok := HitTest(handlers, image.Pt(6, 6))
	require.True(t, ok)
	assert.Same(t, over, h)

	h, ok = HitTest(handlers, image.Pt(1, 1))
	require.True(t, ok)
	assert.Same(t, under, h)

	_, ok = HitTest(handlers, image.Pt(500, 500))
	assert.False(t, ok)
}
