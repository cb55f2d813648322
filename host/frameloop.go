package host

import (
	"canvashost/hal"
)

// LoopState is the state of a FrameLoop.
type LoopState uint8

const (
	LoopIdle LoopState = iota
	LoopScheduled
	LoopRunning
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopScheduled:
		return "scheduled"
	case LoopRunning:
		return "running"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// FrameLoop requests one frame at a time from a display and dispatches each
// as an EventFrame.
//
// Deliveries never go backwards: a timestamp lower than the previous one is
// dropped and the loop waits for the next refresh. A dispatch error stops
// the loop and is kept as a *FrameError.
//
// All methods must be called from the display's callback goroutine, except
// Done which may be watched from anywhere.
type FrameLoop struct {
	display hal.Display
	d       Dispatcher

	state   LoopState
	cancel  func()
	last    float64
	hasLast bool
	n       int

	err    error
	done   chan struct{}
	onStop func(error)
}

func NewFrameLoop(display hal.Display, d Dispatcher) *FrameLoop {
	return &FrameLoop{display: display, d: d, done: make(chan struct{})}
}

// OnStop registers fn to run once when the loop stops, with the fault that
// stopped it or nil.
func (l *FrameLoop) OnStop(fn func(error)) { l.onStop = fn }

func (l *FrameLoop) State() LoopState { return l.state }

// Delivered reports how many frames were dispatched.
func (l *FrameLoop) Delivered() int { return l.n }

// Start schedules the first frame. Starting a running loop is a no-op;
// starting a stopped one fails with ErrLoopStopped.
func (l *FrameLoop) Start() error {
	switch l.state {
	case LoopIdle:
		l.schedule()
		return nil
	case LoopStopped:
		return ErrLoopStopped
	default:
		return nil
	}
}

// Stop cancels the pending frame. It is safe to call more than once.
func (l *FrameLoop) Stop() {
	l.stop(nil)
}

// Fail stops the loop with err as its fault. It does nothing once the loop
// is stopped.
func (l *FrameLoop) Fail(err error) {
	l.stop(err)
}

func (l *FrameLoop) Done() <-chan struct{} { return l.done }

// Err returns the fault that stopped the loop, if any.
func (l *FrameLoop) Err() error { return l.err }

func (l *FrameLoop) schedule() {
	l.state = LoopScheduled
	l.cancel = l.display.RequestFrame(l.frame)
}

func (l *FrameLoop) frame(ts float64) {
	if l.state != LoopScheduled {
		return
	}
	l.cancel = nil

	if l.hasLast && ts < l.last {
		Logger().Debug("frame dropped", "timestamp", ts, "last", l.last)
		l.schedule()
		return
	}

	l.state = LoopRunning
	l.last, l.hasLast = ts, true
	l.n++
	if err := l.d.Dispatch(FrameEvent(ts)); err != nil {
		l.stop(&FrameError{Timestamp: ts, Err: err})
		return
	}
	if l.state == LoopRunning {
		l.schedule()
	}
}

func (l *FrameLoop) stop(err error) {
	if l.state == LoopStopped {
		return
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.state = LoopStopped
	l.err = err
	if err != nil {
		Logger().Error("frame loop stopped", "err", err)
	}
	close(l.done)
	if l.onStop != nil {
		l.onStop(err)
	}
}
