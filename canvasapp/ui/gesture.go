package ui

import (
	"image"
	"math"

	"canvashost/hal"
)

// GestureKind classifies pointer input.
type GestureKind uint8

const (
	GestureTap GestureKind = iota + 1
)

// Gesture is recognized pointer input at a surface point.
type Gesture struct {
	Kind GestureKind
	At   image.Point
}

// GestureOf recognizes a primary-button click as a tap. Clicks with
// coordinates that are not finite or lie left of or above the origin are not
// gestures.
func GestureOf(ev hal.ClickEvent) (Gesture, bool) {
	if ev.Button != 0 || !finite(ev.X) || !finite(ev.Y) || ev.X < 0 || ev.Y < 0 {
		return Gesture{}, false
	}
	return Gesture{Kind: GestureTap, At: image.Pt(int(ev.X), int(ev.Y))}, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// GestureHandler is an element that reacts to gestures inside its bounds.
type GestureHandler interface {
	Element
	Bounds() image.Rectangle
	OnGesture(g Gesture)
}

// HitTest returns the topmost handler whose bounds contain p. Later
// handlers are on top.
func HitTest(handlers []GestureHandler, p image.Point) (GestureHandler, bool) {
	for i := len(handlers) - 1; i >= 0; i-- {
		if p.In(handlers[i].Bounds()) {
			return handlers[i], true
		}
	}
	return nil, false
}
