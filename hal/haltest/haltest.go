// Package haltest provides an in-memory hal.Env for tests.
package haltest

import (
	"sync"
	"time"

	"canvashost/hal"
)

// Env is a hal.Env whose events are injected by the test.
//
// Frames, clicks and resizes run synchronously on the calling goroutine.
type Env struct {
	Hub    *hal.Hub
	Canvas *Canvas
	Log    *Logger
	Sound  *Audio

	env hal.Env
}

// New returns an Env with the given viewport.
func New(width, height int) *Env {
	e := &Env{
		Hub:    hal.NewHub(width, height),
		Canvas: &Canvas{},
		Log:    &Logger{},
		Sound:  &Audio{},
	}
	e.env = hal.NewEnv(e.Log, e.Hub, e.Canvas, e.Sound)
	return e
}

func (e *Env) Logger() hal.Logger   { return e.env.Logger() }
func (e *Env) Window() hal.Window   { return e.env.Window() }
func (e *Env) Pointer() hal.Pointer { return e.env.Pointer() }
func (e *Env) Display() hal.Display { return e.env.Display() }
func (e *Env) Audio() hal.Audio     { return e.env.Audio() }

// Frames delivers one frame per timestamp.
func (e *Env) Frames(ts ...float64) {
	for _, t := range ts {
		e.Hub.Frame(t)
	}
}

// Resize changes the viewport and notifies listeners.
func (e *Env) Resize(width, height int) { e.Hub.SetSize(width, height) }

// Click injects a left click.
func (e *Env) Click(x, y float64) { e.Hub.Click(hal.ClickEvent{X: x, Y: y}) }

// Canvas records presented frames.
type Canvas struct {
	Blits         int
	Width, Height int
	Pix           []byte
	Err           error

	// AcquireErr is returned by Acquire.
	AcquireErr error
}

func (c *Canvas) Acquire() error { return c.AcquireErr }

func (c *Canvas) Blit(pix []byte, width, height int) error {
	if c.Err != nil {
		return c.Err
	}
	c.Blits++
	c.Width, c.Height = width, height
	c.Pix = append(c.Pix[:0], pix...)
	return nil
}

// Logger records lines.
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *Logger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, s)
}

func (l *Logger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

// Snapshot returns a copy of the recorded lines.
func (l *Logger) Snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.Lines...)
}

// Tone is one recorded tone.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Audio records tones.
type Audio struct {
	Tones []Tone
}

func (a *Audio) Tone(freqHz float64, d time.Duration) error {
	a.Tones = append(a.Tones, Tone{Freq: freqHz, Duration: d})
	return nil
}
