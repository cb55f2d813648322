// Package app wires a host session for the canvas app against a hal.Env.
package app

import (
	"fmt"

	"canvashost/backend"
	"canvashost/canvasapp"
	"canvashost/console"
	"canvashost/hal"
	"canvashost/host"
	"canvashost/surface"
)

// DefaultCanvasID is the id of the surface, and of the canvas element in the
// browser.
const DefaultCanvasID = "theCanvas"

type Config struct {
	Mode     backend.Mode
	FPS      int
	CanvasID string

	// Console, when set, is drawn over the bottom of every frame.
	Console *console.Console
}

// System is a running session plus what it was built from.
type System struct {
	*host.Session

	Surface *surface.Surface
	Console *console.Console
	env     hal.Env
}

// Boot creates the surface at the current viewport size and starts a
// session in cfg.Mode.
func Boot(env hal.Env, cfg Config) (*System, error) {
	if cfg.Mode == "" {
		cfg.Mode = backend.ModeExplicit
	}
	if cfg.CanvasID == "" {
		cfg.CanvasID = DefaultCanvasID
	}

	w, h := env.Window().InnerSize()
	s := surface.New(cfg.CanvasID, w, h, env.Display().Canvas())
	if cfg.Console != nil {
		s.AddOverlay(cfg.Console.Draw)
	}

	module := canvasapp.NewModule(canvasapp.Config{FPS: cfg.FPS, Audio: env.Audio()})
	sess := host.NewSession(env, s, module, cfg.Mode)
	sys := &System{Session: sess, Surface: s, Console: cfg.Console, env: env}
	if err := sess.Start(); err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	if l := env.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("boot: %s session on %q %dx%d", cfg.Mode, cfg.CanvasID, s.Width(), s.Height()))
	}
	return sys, nil
}

// Close ends the session. A session that ended with a fault leaves the
// fault screen on the surface.
func (sys *System) Close() error {
	err := sys.Session.Close()
	if ferr := sys.Err(); ferr != nil {
		sys.showFault(ferr)
	}
	return err
}

// BootFunc adapts Boot to hal.BootFunc.
func BootFunc(cfg Config) hal.BootFunc {
	return func(env hal.Env) (hal.Runtime, error) {
		sys, err := Boot(env, cfg)
		if err != nil {
			return nil, err
		}
		return sys, nil
	}
}
