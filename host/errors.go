package host

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrAlreadyBound      = errors.New("router already bound")
	ErrLoopStopped       = errors.New("frame loop stopped")
	ErrAlreadyStarted    = errors.New("session already started")
	ErrNotStarted        = errors.New("session not started")
	ErrSessionClosed     = errors.New("session closed")
	ErrSelfDriving       = errors.New("session is self-driving")
	ErrReentrantDispatch = errors.New("dispatch called from inside dispatch")
	ErrUnknownEvent      = errors.New("unknown event kind")
)

// FrameError is the fault that stopped a frame loop.
type FrameError struct {
	Timestamp float64
	Err       error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %g: %v", e.Timestamp, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// PanicError is a panic recovered while dispatching an event.
type PanicError struct {
	Event Event
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during %s: %v", e.Event, e.Value)
}

// RecoverPanic turns a panic in the deferring function into a *PanicError
// for ev stored in *err. It must be deferred directly:
//
//	defer host.RecoverPanic(ev, &err)
func RecoverPanic(ev Event, err *error) {
	if v := recover(); v != nil {
		*err = &PanicError{Event: ev, Value: v, Stack: debug.Stack()}
	}
}
