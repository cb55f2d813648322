//go:build !js

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64

	Width  int
	Height int

	// ResizeAt, when non-zero, changes the viewport to ResizeWidth x
	// ResizeHeight right before that frame.
	ResizeAt     uint64
	ResizeWidth  int
	ResizeHeight int

	Logger Logger
	Audio  Audio

	// Canvas receives presented frames. Nil discards them.
	Canvas Canvas
}

// RunHeadless boots a runtime without opening a window and drives frames
// from a ticker until ctx is done, the frame budget is spent, or the
// runtime stops on its own.
func RunHeadless(ctx context.Context, boot BootFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLineLogger(os.Stdout)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	hub := NewHub(cfg.Width, cfg.Height)
	canvas := cfg.Canvas
	if canvas == nil {
		canvas = discardCanvas{}
	}
	rt, err := boot(NewEnv(cfg.Logger, hub, canvas, cfg.Audio))
	if err != nil {
		return err
	}
	defer rt.Close()

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-rt.Done():
			return rt.Err()
		case <-t.C:
			frame++
			if cfg.ResizeAt > 0 && frame == cfg.ResizeAt {
				hub.SetSize(cfg.ResizeWidth, cfg.ResizeHeight)
			}
			hub.Tick()
			if err := rt.Err(); err != nil {
				return err
			}
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}

type discardCanvas struct{}

func (discardCanvas) Blit([]byte, int, int) error { return nil }
