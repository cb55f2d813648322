package host

import (
	"errors"

	"canvashost/hal"
	"canvashost/surface"
)

// Router owns the click and resize listeners of an explicit-mode session.
//
// Resize first resizes the Surface to the viewport, then dispatches, so the
// backend always reads current dimensions.
type Router struct {
	env     hal.Env
	surface *surface.Surface
	d       Dispatcher

	releaseClick  func()
	releaseResize func()
}

func NewRouter(env hal.Env, s *surface.Surface, d Dispatcher) *Router {
	return &Router{env: env, surface: s, d: d}
}

// Bind registers exactly one click and one resize listener.
func (r *Router) Bind() error {
	if r.Bound() {
		return ErrAlreadyBound
	}
	r.releaseClick = r.env.Pointer().OnClick(r.click)
	r.releaseResize = r.env.Window().OnResize(r.resize)
	return nil
}

func (r *Router) Bound() bool { return r.releaseClick != nil }

// Release unbinds both listeners. It is safe to call more than once.
func (r *Router) Release() {
	if r.releaseClick != nil {
		r.releaseClick()
		r.releaseClick = nil
	}
	if r.releaseResize != nil {
		r.releaseResize()
		r.releaseResize = nil
	}
}

func (r *Router) click(ev hal.ClickEvent) {
	r.dispatch(ClickEvent(ev))
}

func (r *Router) resize() {
	w, h := r.env.Window().InnerSize()
	r.surface.Resize(w, h)
	r.dispatch(ResizeEvent())
}

func (r *Router) dispatch(ev Event) {
	err := r.d.Dispatch(ev)
	if err == nil {
		return
	}
	var pe *PanicError
	if errors.As(err, &pe) {
		Logger().Error("backend panicked", "event", ev.String(), "panic", pe.Value)
		return
	}
	Logger().Warn("event not delivered", "event", ev.String(), "err", err)
}
