package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoCanvas       = errors.New("hal: canvas unavailable")
)

// ClickEvent is a pointer click in surface pixel coordinates.
//
// Coordinates are forwarded as the host reported them; they may lie outside
// the surface.
type ClickEvent struct {
	X, Y   float64
	Button int
}

// FrameCallback receives one display refresh timestamp in milliseconds since
// the environment was created.
type FrameCallback func(timestampMs float64)

// Canvas is the host-side presentation target of a surface.
type Canvas interface {
	Blit(pix []byte, width, height int) error
}

// Acquirer is implemented by canvases whose rendering context is obtained
// lazily. Acquire is safe to call more than once.
type Acquirer interface {
	Acquire() error
}

// Window reports the viewport and notifies about its changes.
type Window interface {
	InnerSize() (width, height int)
	OnResize(fn func()) (release func())
}

// Pointer delivers clicks.
type Pointer interface {
	OnClick(fn func(ClickEvent)) (release func())
}

// Display schedules work on the display refresh and owns the canvas.
//
// RequestFrame asks for exactly one invocation of fn on the next refresh.
type Display interface {
	Canvas() Canvas
	RequestFrame(fn FrameCallback) (cancel func())
}

// Audio plays short feedback tones.
type Audio interface {
	Tone(freqHz float64, d time.Duration) error
}

// Env provides the only contact point between the host and the outside world.
//
// Every callback registered through an Env runs on one goroutine, one at a
// time.
type Env interface {
	Logger() Logger
	Window() Window
	Pointer() Pointer
	Display() Display
	Audio() Audio
}

// Runtime is what a host runner drives after boot.
type Runtime interface {
	Done() <-chan struct{}
	Err() error
	Close() error
}

// BootFunc builds and starts a runtime against env.
type BootFunc func(env Env) (Runtime, error)

// NopAudio discards tones.
type NopAudio struct{}

func (NopAudio) Tone(float64, time.Duration) error { return nil }
