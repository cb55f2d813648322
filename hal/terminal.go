//go:build !js

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	Hz     int
	Logger Logger
	Audio  Audio

	// Screen overrides the terminal screen; nil opens the controlling
	// terminal.
	Screen tcell.Screen
}

// RunTerminal renders a runtime into the terminal, two pixels per cell, and
// blocks until Esc or Ctrl-C, ctx cancellation, or the runtime stopping.
func RunTerminal(ctx context.Context, boot BootFunc, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLineLogger(io.Discard)
	}

	screen := cfg.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()
	screen.Clear()

	quit := make(chan struct{})
	defer close(quit)
	defer screen.Fini()

	cols, rows := screen.Size()
	hub := NewHub(cols, rows*2)
	rt, err := boot(NewEnv(cfg.Logger, hub, &terminalCanvas{screen: screen}, cfg.Audio))
	if err != nil {
		return err
	}
	defer rt.Close()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var held bool
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-rt.Done():
			return rt.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				w, h := ev.Size()
				hub.SetSize(w, h*2)
			case *tcell.EventMouse:
				down := ev.Buttons()&tcell.Button1 != 0
				if down && !held {
					x, y := ev.Position()
					hub.Click(ClickEvent{X: float64(x), Y: float64(y * 2)})
				}
				held = down
			}
		case <-t.C:
			hub.Tick()
		}
	}
}

// terminalCanvas draws two vertically stacked pixels per cell using the
// upper half block: foreground is the top pixel, background the bottom.
type terminalCanvas struct {
	screen tcell.Screen
}

func (c *terminalCanvas) Blit(pix []byte, width, height int) error {
	if len(pix) < width*height*4 {
		return errors.New("terminal: short pixel buffer")
	}
	cols, rows := c.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := cellColors(pix, width, height, col, row)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			c.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	c.screen.Show()
	return nil
}

// cellColors returns the colors of the two pixels covered by a cell. Pixels
// outside the frame are black.
func cellColors(pix []byte, width, height, col, row int) (top, bottom tcell.Color) {
	return pixelColor(pix, width, height, col, row*2), pixelColor(pix, width, height, col, row*2+1)
}

func pixelColor(pix []byte, width, height, x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= width || y >= height {
		return tcell.NewRGBColor(0, 0, 0)
	}
	i := (y*width + x) * 4
	return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
}
