package host

import (
	"fmt"

	"canvashost/hal"
)

// EventKind tags an Event.
type EventKind uint8

const (
	EventClick EventKind = iota + 1
	EventResize
	EventFrame
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventResize:
		return "resize"
	case EventFrame:
		return "frame"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one unit of work for a backend. Click is set for EventClick and
// Timestamp for EventFrame; resize carries nothing.
type Event struct {
	Kind      EventKind
	Click     hal.ClickEvent
	Timestamp float64
}

func ClickEvent(ev hal.ClickEvent) Event { return Event{Kind: EventClick, Click: ev} }
func ResizeEvent() Event                 { return Event{Kind: EventResize} }
func FrameEvent(ts float64) Event        { return Event{Kind: EventFrame, Timestamp: ts} }

func (e Event) String() string {
	switch e.Kind {
	case EventClick:
		return fmt.Sprintf("click(%g,%g)", e.Click.X, e.Click.Y)
	case EventFrame:
		return fmt.Sprintf("frame(%g)", e.Timestamp)
	default:
		return e.Kind.String()
	}
}

// Dispatcher delivers events to a backend.
type Dispatcher interface {
	Dispatch(ev Event) error
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(ev Event) error

func (f DispatchFunc) Dispatch(ev Event) error { return f(ev) }
