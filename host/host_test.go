package host

import (
	"io"

	"canvashost/backend"
	"canvashost/hal"
	"canvashost/surface"
)

type call struct {
	kind          string
	click         hal.ClickEvent
	ts            float64
	width, height int
}

// recorder is a backend that records every call together with the surface
// dimensions it observed.
type recorder struct {
	s       *surface.Surface
	calls   []call
	frameFn func(ts float64) error
	clickFn func(ev hal.ClickEvent)
	closed  bool
}

func (r *recorder) OnClick(ev hal.ClickEvent) {
	r.calls = append(r.calls, call{kind: "click", click: ev, width: r.s.Width(), height: r.s.Height()})
	if r.clickFn != nil {
		r.clickFn(ev)
	}
}

func (r *recorder) OnResize() {
	r.calls = append(r.calls, call{kind: "resize", width: r.s.Width(), height: r.s.Height()})
}

func (r *recorder) OnFrame(ts float64) error {
	r.calls = append(r.calls, call{kind: "frame", ts: ts})
	if r.frameFn != nil {
		return r.frameFn(ts)
	}
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func (r *recorder) kinds(kind string) []call {
	var out []call
	for _, c := range r.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// recordModule hands out recorders and counts entry point calls.
type recordModule struct {
	inits    int
	starts   int
	initErr  error
	startErr error
	last     *recorder
	driver   *selfDriver
}

func (m *recordModule) Init(s *surface.Surface) (backend.Backend, error) {
	m.inits++
	if m.initErr != nil {
		return nil, m.initErr
	}
	m.last = &recorder{s: s}
	return m.last, nil
}

func (m *recordModule) Start(env hal.Env, s *surface.Surface) (io.Closer, error) {
	m.starts++
	if m.startErr != nil {
		return nil, m.startErr
	}
	m.last = &recorder{s: s}
	m.driver = startSelfDriver(env, s, m.last)
	return m.driver, nil
}

// selfDriver is a minimal self-driving loop built from the same pieces a
// real backend would use.
type selfDriver struct {
	router *Router
	loop   *FrameLoop
}

func startSelfDriver(env hal.Env, s *surface.Surface, b backend.Backend) *selfDriver {
	d := DispatchFunc(func(ev Event) error {
		switch ev.Kind {
		case EventClick:
			b.OnClick(ev.Click)
		case EventResize:
			b.OnResize()
		case EventFrame:
			return b.OnFrame(ev.Timestamp)
		}
		return nil
	})
	sd := &selfDriver{router: NewRouter(env, s, d), loop: NewFrameLoop(env.Display(), d)}
	_ = sd.router.Bind()
	_ = sd.loop.Start()
	return sd
}

func (d *selfDriver) Done() <-chan struct{} { return d.loop.Done() }
func (d *selfDriver) Err() error            { return d.loop.Err() }

func (d *selfDriver) Close() error {
	d.router.Release()
	d.loop.Stop()
	return nil
}
