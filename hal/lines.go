package hal

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

type lineLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineLogger returns a Logger that writes each line to w.
func NewLineLogger(w io.Writer) Logger {
	return &lineLogger{w: w}
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *lineLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// MultiLogger duplicates lines to every non-nil logger.
func MultiLogger(loggers ...Logger) Logger {
	var out multiLogger
	for _, l := range loggers {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

type multiLogger []Logger

func (m multiLogger) WriteLineString(s string) {
	for _, l := range m {
		l.WriteLineString(s)
	}
}

func (m multiLogger) WriteLineBytes(b []byte) {
	for _, l := range m {
		l.WriteLineBytes(b)
	}
}

// NewSlog returns a text slog.Logger whose records end up as lines on l.
func NewSlog(l Logger, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(&lineWriter{l: l}, &slog.HandlerOptions{Level: level}))
}

// lineWriter splits written bytes on newlines and forwards complete lines.
type lineWriter struct {
	mu  sync.Mutex
	l   Logger
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.l.WriteLineBytes(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) == 0 {
		w.buf = nil
	}
	return len(p), nil
}
