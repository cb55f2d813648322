package host

import (
	"context"
	"errors"
	"io"
	"sync"

	"canvashost/backend"
	"canvashost/hal"
	"canvashost/surface"
)

// Session is the composition root of one run: one Surface, one backend,
// one mode.
//
// In explicit mode the session calls Module.Init once, binds a Router and
// runs a FrameLoop, and every event reaches the backend through Dispatch.
// In self-driving mode it calls Module.Start once and stays out of the way.
type Session struct {
	env     hal.Env
	surface *surface.Surface
	module  backend.Module
	mode    backend.Mode

	backend backend.Backend
	router  *Router
	loop    *FrameLoop
	driver  io.Closer

	started     bool
	closed      bool
	dispatching bool

	mu   sync.Mutex
	once sync.Once
	done chan struct{}
	err  error
}

// NewSession returns a session that has not started yet.
func NewSession(env hal.Env, s *surface.Surface, module backend.Module, mode backend.Mode) *Session {
	return &Session{
		env:     env,
		surface: s,
		module:  module,
		mode:    mode,
		done:    make(chan struct{}),
	}
}

// Mode reports which entry point the session uses.
func (s *Session) Mode() backend.Mode { return s.mode }

// Surface returns the surface the backend draws on.
func (s *Session) Surface() *surface.Surface { return s.surface }

// Loop returns the frame loop of an explicit session, nil otherwise.
func (s *Session) Loop() *FrameLoop { return s.loop }

// Backend returns the backend of an explicit session, nil otherwise.
func (s *Session) Backend() backend.Backend { return s.backend }

// Start runs the mode's entry point. A failing entry point ends the session
// with a *backend.InitError.
func (s *Session) Start() error {
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	if s.surface == nil {
		err := &backend.InitError{Op: "init", Reason: "session has no surface", Err: backend.ErrNoSurface}
		s.finish(err)
		return err
	}

	log := Logger().With("mode", s.mode.String(), "surface", s.surface.ID())
	switch s.mode {
	case backend.ModeExplicit:
		if err := s.startExplicit(); err != nil {
			log.Error("session start failed", "err", err)
			s.finish(err)
			return err
		}
	case backend.ModeSelfDriving:
		if err := s.startSelfDriving(); err != nil {
			log.Error("session start failed", "err", err)
			s.finish(err)
			return err
		}
	default:
		err := &backend.InitError{Op: "start", Reason: "unknown mode " + s.mode.String(), Err: backend.ErrUnknownMode}
		s.finish(err)
		return err
	}
	log.Info("session started", "width", s.surface.Width(), "height", s.surface.Height())
	return nil
}

func (s *Session) startExplicit() error {
	b, err := s.module.Init(s.surface)
	if err != nil {
		return backend.AsInitError("init", err)
	}
	if b == nil {
		return &backend.InitError{Op: "init", Reason: "module returned no backend", Err: backend.ErrNoSurface}
	}
	s.backend = b

	s.router = NewRouter(s.env, s.surface, s)
	if err := s.router.Bind(); err != nil {
		return err
	}
	s.loop = NewFrameLoop(s.env.Display(), s)
	s.loop.OnStop(func(err error) {
		s.router.Release()
		s.finish(err)
	})
	return s.loop.Start()
}

// driverState is implemented by self-driving handles that can stop on their
// own.
type driverState interface {
	Done() <-chan struct{}
	Err() error
}

func (s *Session) startSelfDriving() error {
	d, err := s.module.Start(s.env, s.surface)
	if err != nil {
		return backend.AsInitError("start", err)
	}
	s.driver = d
	if st, ok := d.(driverState); ok {
		go func() {
			select {
			case <-st.Done():
				s.finish(st.Err())
			case <-s.done:
			}
		}()
	}
	return nil
}

// Dispatch delivers ev to the backend of an explicit session.
//
// Clicks and resizes never fail once delivered; a frame returns the
// backend's error. A panic in the backend is returned as *PanicError and
// ends the session.
func (s *Session) Dispatch(ev Event) (err error) {
	switch {
	case !s.started:
		return ErrNotStarted
	case s.mode != backend.ModeExplicit:
		return ErrSelfDriving
	case s.closed || s.isDone():
		return ErrSessionClosed
	case s.backend == nil:
		return ErrNotStarted
	case s.dispatching:
		return ErrReentrantDispatch
	}

	s.dispatching = true
	defer func() {
		s.dispatching = false
		var pe *PanicError
		if ev.Kind != EventFrame && errors.As(err, &pe) {
			// The frame loop stops itself on a frame error.
			if s.loop != nil {
				s.loop.Fail(err)
			} else {
				s.finish(err)
			}
		}
	}()
	defer RecoverPanic(ev, &err)

	switch ev.Kind {
	case EventClick:
		s.backend.OnClick(ev.Click)
	case EventResize:
		s.backend.OnResize()
	case EventFrame:
		return s.backend.OnFrame(ev.Timestamp)
	default:
		return ErrUnknownEvent
	}
	return nil
}

// Close tears the session down: listeners are released, the frame loop
// stops and the backend or self-driving handle is closed. It is safe to
// call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.router != nil {
		s.router.Release()
	}
	if s.loop != nil {
		s.loop.Stop()
	}
	if s.driver != nil {
		if err := s.driver.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c, ok := s.backend.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.finish(nil)
	Logger().Info("session closed", "mode", s.mode.String())
	return errors.Join(errs...)
}

// Stop is Close without the error.
func (s *Session) Stop() { _ = s.Close() }

// Done is closed once the session ends, by Close or by a fault.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err returns the fault that ended the session, nil after a clean Close.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until the session ends or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) isDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.done)
	})
}
