//go:build !js

package hal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stubRuntime struct {
	once   sync.Once
	done   chan struct{}
	err    error
	closed bool
}

func newStubRuntime() *stubRuntime { return &stubRuntime{done: make(chan struct{})} }

func (r *stubRuntime) Done() <-chan struct{} { return r.done }
func (r *stubRuntime) Err() error            { return r.err }
func (r *stubRuntime) Close() error {
	r.closed = true
	r.stop(nil)
	return nil
}

func (r *stubRuntime) stop(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

func TestRunHeadlessStopsAfterFrameBudget(t *testing.T) {
	rt := newStubRuntime()
	var frames []float64
	var sizes [][2]int

	boot := func(env Env) (Runtime, error) {
		var loop FrameCallback
		loop = func(ts float64) {
			frames = append(frames, ts)
			env.Display().RequestFrame(loop)
		}
		env.Display().RequestFrame(loop)
		env.Window().OnResize(func() {
			w, h := env.Window().InnerSize()
			sizes = append(sizes, [2]int{w, h})
		})
		return rt, nil
	}

	err := RunHeadless(context.Background(), boot, HeadlessConfig{
		Hz:           1000,
		Frames:       5,
		Width:        800,
		Height:       600,
		ResizeAt:     3,
		ResizeWidth:  1024,
		ResizeHeight: 768,
		Logger:       &recordLogger{},
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] < frames[i-1] {
			t.Fatalf("timestamps decreased: %v", frames)
		}
	}
	if len(sizes) != 1 || sizes[0] != [2]int{1024, 768} {
		t.Fatalf("unexpected resizes: %v", sizes)
	}
	if !rt.closed {
		t.Fatal("runtime was not closed")
	}
}

func TestRunHeadlessReturnsRuntimeError(t *testing.T) {
	boom := errors.New("boom")
	rt := newStubRuntime()
	boot := func(env Env) (Runtime, error) {
		env.Display().RequestFrame(func(float64) { rt.stop(boom) })
		return rt, nil
	}

	err := RunHeadless(context.Background(), boot, HeadlessConfig{Hz: 1000, Logger: &recordLogger{}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunHeadlessBootError(t *testing.T) {
	boom := errors.New("no surface")
	err := RunHeadless(context.Background(), func(Env) (Runtime, error) { return nil, boom }, HeadlessConfig{Logger: &recordLogger{}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boot error, got %v", err)
	}
}

func TestRunHeadlessHonorsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	rt := newStubRuntime()
	err := RunHeadless(ctx, func(Env) (Runtime, error) { return rt, nil }, HeadlessConfig{Hz: 100, Logger: &recordLogger{}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
