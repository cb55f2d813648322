package app

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"canvashost/host"
	"canvashost/surface"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	faultFontHeight = 10
	faultFontOffset = 7
)

// showFault logs err and paints it on the surface.
func (sys *System) showFault(err error) {
	lines := faultLines(err)
	if l := sys.env.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	s := sys.Surface
	s.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = s.Present()
		return
	}

	d := s.Display()
	fg := color.RGBA{A: 255}
	maxW, maxH := s.Width(), s.Height()
	cols := int16(maxW) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y)+faultFontHeight > maxH {
				_ = s.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, faultFontOffset, 0, y, chunk, fg)
			y += faultFontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = s.Present()
}

func faultLines(err error) []string {
	lines := []string{"Session fault:", err.Error()}

	var fe *host.FrameError
	if errors.As(err, &fe) {
		lines = append(lines, fmt.Sprintf("frame: %g", fe.Timestamp))
	}
	var pe *host.PanicError
	if errors.As(err, &pe) {
		lines = append(lines, fmt.Sprintf("panic: %v", pe.Value))
		if len(pe.Stack) > 0 {
			lines = append(lines, "stack:")
			for _, line := range strings.Split(string(pe.Stack), "\n") {
				if line == "" {
					continue
				}
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func drawTextLine(d *surface.Display, font tinyfont.Fonter, fontWidth, fontOffset, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+fontOffset, r, fg)
		x += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
