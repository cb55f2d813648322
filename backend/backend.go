// Package backend defines the contract between the render-loop host and the
// drawable module it drives.
package backend

import (
	"fmt"
	"io"
	"strings"

	"canvashost/hal"
	"canvashost/surface"
)

// Backend receives the events of one session.
//
// OnResize carries no size: the backend reads the Surface it was created
// with. OnFrame gets the refresh timestamp only; the backend keeps its own
// previous timestamp and treats the first delta as zero. A non-nil error
// from OnFrame is fatal to the session.
type Backend interface {
	OnClick(ev hal.ClickEvent)
	OnResize()
	OnFrame(timestampMs float64) error
}

// Module builds backends. Exactly one of its entry points is used per
// session.
//
// Init is the explicit entry point: the host owns listeners and the frame
// loop and forwards every event to the returned Backend. Each call makes an
// independent backend.
//
// Start is the self-driving entry point: the module installs its own
// listeners and frame loop on env and returns once they are installed.
// Closing the returned value releases them.
type Module interface {
	Init(s *surface.Surface) (Backend, error)
	Start(env hal.Env, s *surface.Surface) (io.Closer, error)
}

// Mode selects the entry point a session uses.
type Mode string

const (
	ModeExplicit    Mode = "explicit"
	ModeSelfDriving Mode = "self"
)

func (m Mode) String() string { return string(m) }

// ParseMode accepts "explicit" and "self" (also "self-driving").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "explicit":
		return ModeExplicit, nil
	case "self", "self-driving", "selfdriving":
		return ModeSelfDriving, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Funcs implements Backend with optional callbacks.
type Funcs struct {
	Click  func(hal.ClickEvent)
	Resize func()
	Frame  func(timestampMs float64) error
}

func (f Funcs) OnClick(ev hal.ClickEvent) {
	if f.Click != nil {
		f.Click(ev)
	}
}

func (f Funcs) OnResize() {
	if f.Resize != nil {
		f.Resize()
	}
}

func (f Funcs) OnFrame(ts float64) error {
	if f.Frame != nil {
		return f.Frame(ts)
	}
	return nil
}
