// Package canvasapp is the demo backend: a throttled scene renderer with a
// tappable button.
package canvasapp

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"time"

	"canvashost/backend"
	"canvashost/canvasapp/ui"
	"canvashost/fonts/glyph5x5"
	"canvashost/hal"
	"canvashost/host"
	"canvashost/surface"
)

const (
	DefaultFPS = 15

	toneHz       = 880
	toneDuration = 100 * time.Millisecond
	statsScale   = 2
)

// Config configures the app.
type Config struct {
	// FPS caps how often a frame is actually drawn. Zero means DefaultFPS.
	FPS int
	// Audio plays the button tone. Nil is silent.
	Audio hal.Audio
	// Scene overrides DefaultScene.
	Scene func(onTap func(b *ui.Button)) Scene
}

// Module implements backend.Module.
type Module struct {
	cfg Config
}

var _ backend.Module = (*Module)(nil)

func NewModule(cfg Config) *Module {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Audio == nil {
		cfg.Audio = hal.NopAudio{}
	}
	if cfg.Scene == nil {
		cfg.Scene = DefaultScene
	}
	return &Module{cfg: cfg}
}

// Init acquires the surface and returns a new App bound to it.
func (m *Module) Init(s *surface.Surface) (backend.Backend, error) {
	return m.newApp(s)
}

// Start creates an App and drives it from env until the returned handle is
// closed.
func (m *Module) Start(env hal.Env, s *surface.Surface) (io.Closer, error) {
	app, err := m.newApp(s)
	if err != nil {
		return nil, err
	}
	return startDriver(env, s, app)
}

func (m *Module) newApp(s *surface.Surface) (*App, error) {
	if s == nil {
		return nil, &backend.InitError{Op: "init", Reason: "no surface", Err: backend.ErrNoSurface}
	}
	if err := s.Acquire(); err != nil {
		return nil, &backend.InitError{Op: "init", Reason: "2d context unavailable", Err: fmt.Errorf("%w: %w", backend.ErrUnsupportedContext, err)}
	}
	a := &App{
		s:        s,
		interval: 1000 / float64(m.cfg.FPS),
		audio:    m.cfg.Audio,
	}
	a.scene = m.cfg.Scene(a.tapped)
	host.Logger().Info("canvas app loaded", "width", s.Width(), "height", s.Height(), "fps", m.cfg.FPS)
	return a, nil
}

// App renders the scene at most FPS times per second.
type App struct {
	s        *surface.Surface
	scene    Scene
	audio    hal.Audio
	interval float64

	tick      int
	last      float64
	started   bool
	frameTime float64
}

var _ backend.Backend = (*App)(nil)

// Tick reports how many frames were drawn.
func (a *App) Tick() int { return a.tick }

// FrameTime reports how far past the frame interval the last drawn frame
// arrived, in milliseconds.
func (a *App) FrameTime() float64 { return a.frameTime }

func (a *App) Scene() Scene { return a.scene }

func (a *App) OnFrame(ts float64) error {
	var delta float64
	if a.started {
		elapsed := ts - a.last
		if elapsed <= a.interval {
			return nil
		}
		delta = elapsed - a.interval
	}
	if err := a.render(delta); err != nil {
		return err
	}
	a.last = ts
	a.started = true
	a.frameTime = delta
	a.tick++
	return nil
}

// OnResize makes the next frame draw immediately at the new size.
func (a *App) OnResize() {
	a.started = false
	a.last = 0
}

func (a *App) OnClick(ev hal.ClickEvent) {
	g, ok := ui.GestureOf(ev)
	if !ok {
		return
	}
	if !g.At.In(a.s.Bounds()) {
		return
	}
	if h, ok := ui.HitTest(a.scene.Handlers, g.At); ok {
		host.Logger().Debug("gesture", "x", g.At.X, "y", g.At.Y)
		h.OnGesture(g)
	}
}

func (a *App) tapped(b *ui.Button) {
	if err := a.audio.Tone(toneHz, toneDuration); err != nil {
		host.Logger().Warn("tone failed", "button", b.Label, "err", err)
	}
}

func (a *App) render(delta float64) error {
	a.s.Clear(backdrop(a.tick))

	for _, e := range a.scene.Elements {
		if err := e.Render(a.s); err != nil {
			return err
		}
	}
	for _, h := range a.scene.Handlers {
		if err := h.Render(a.s); err != nil {
			return err
		}
	}

	stats := ui.Text{Label: fmt.Sprintf("FRAME %d . FRAMETIME %d", a.tick, int(delta)), Scale: statsScale, Color: ui.Green}
	if err := stats.Draw(a.s, image.Pt(0, a.s.Height()-glyph5x5.GlyphSize*statsScale)); err != nil {
		return err
	}

	return a.s.Present()
}

// backdrop is a blue that fades in and out with the tick.
func backdrop(tick int) color.RGBA {
	v := 255*math.Sin(math.Pi*float64(tick)/255) + 255
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return color.RGBA{B: uint8(v), A: 255}
}
