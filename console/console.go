// Package console keeps recent log lines and draws them in a strip at the
// bottom of a surface.
package console

import (
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"canvashost/surface"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	fontHeight = 10
	fontOffset = 6

	DefaultRows = 6
)

var font = &proggy.TinySZ8pt7b

// Console is a hal.Logger that remembers the last Rows lines.
type Console struct {
	mu    sync.Mutex
	rows  int
	lines []string
	next  int
	n     int

	// Bottom leaves this many pixels free below the strip.
	Bottom int
}

// New returns a console showing rows lines; rows below 1 means DefaultRows.
func New(rows int) *Console {
	if rows < 1 {
		rows = DefaultRows
	}
	return &Console{rows: rows, lines: make([]string, rows)}
}

func (c *Console) WriteLineString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines[c.next] = s
	c.next = (c.next + 1) % len(c.lines)
	if c.n < len(c.lines) {
		c.n++
	}
}

func (c *Console) WriteLineBytes(b []byte) { c.WriteLineString(string(b)) }

// Lines returns the kept lines, oldest first.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, c.n)
	start := (c.next - c.n + len(c.lines)) % len(c.lines)
	for i := 0; i < c.n; i++ {
		out = append(out, c.lines[(start+i)%len(c.lines)])
	}
	return out
}

// Height is the strip height in pixels.
func (c *Console) Height() int { return c.rows * fontHeight }

// Draw renders the lines into the bottom strip of d. It is meant to be
// registered with Surface.AddOverlay.
func (c *Console) Draw(d *surface.Display) {
	lines := c.Lines()
	if len(lines) == 0 {
		return
	}
	w, h := d.Size()
	region := d.Region(0, int(h)-c.Bottom-c.Height(), int(w), c.Height())
	rw, rh := region.Size()
	if rw <= 0 || rh < fontHeight {
		return
	}
	_ = region.FillRectangle(0, 0, rw, rh, color.RGBA{A: 255})

	t := tinyterm.NewTerminal(region)
	// At most rows lines go into a strip rows*fontHeight tall, so the
	// terminal never scrolls.
	t.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: fontHeight,
		FontOffset: fontOffset,
	})

	_, charWidth := tinyfont.LineWidth(font, "0")
	cols := 1
	if charWidth > 0 {
		cols = int(rw) / int(charWidth)
	}
	for i, line := range lines {
		if i > 0 {
			_, _ = t.Write([]byte("\r\n"))
		}
		_, _ = t.Write([]byte(fit(line, cols)))
	}
}

// fit drops control characters and cuts s to n runes so that a line never
// wraps.
func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	count := 0
	for _, r := range s {
		if count >= n {
			break
		}
		if r < 0x20 || r == 0x7f || r == utf8.RuneError {
			r = ' '
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
