package backend

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedContext = errors.New("unsupported rendering context")
	ErrNoSurface          = errors.New("no surface")
	ErrUnknownMode        = errors.New("unknown backend mode")
)

// InitError reports that a backend could not acquire its surface. It is
// fatal to the session and never retried.
type InitError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InitError) Error() string {
	var b strings.Builder
	b.WriteString("backend")
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}
	b.WriteString(": ")
	if e.Reason != "" {
		b.WriteString(e.Reason)
	} else {
		b.WriteString("init failed")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *InitError) Unwrap() error { return e.Err }

// AsInitError wraps err as an InitError for op unless it already is one.
func AsInitError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ie *InitError
	if errors.As(err, &ie) {
		return err
	}
	return &InitError{Op: op, Reason: "surface unavailable", Err: err}
}
