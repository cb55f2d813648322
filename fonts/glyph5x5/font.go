// Package glyph5x5 is an uppercase 5x5 bitmap font with integer scaling.
package glyph5x5

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// GlyphSize is the unscaled glyph edge in pixels.
	GlyphSize = 5
	// Kerning is the gap between glyphs. It does not scale.
	Kerning = 1
	// MaxScale keeps glyph metrics within tinyfont's 8-bit fields.
	MaxScale = 25
)

// Font implements tinyfont.Fonter for one scale.
//
// Concurrent access is not safe due to internal glyph reuse.
type Font struct {
	scale int
	g     glyph
}

// New returns the font at scale, clamped to [1, MaxScale].
func New(scale int) *Font {
	if scale < 1 {
		scale = 1
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	return &Font{scale: scale, g: glyph{scale: scale}}
}

func (f *Font) Scale() int { return f.scale }

// GetYAdvance returns the line height: one glyph plus one scaled pixel.
func (f *Font) GetYAdvance() uint8 { return uint8((GlyphSize + 1) * f.scale) }

func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.bits = Bits(r)
	return &f.g
}

// Advance returns the horizontal advance of one glyph.
func (f *Font) Advance() int { return GlyphSize*f.scale + Kerning }

// TextWidth returns the width of n glyphs laid out on one line, trailing
// kerning included.
func (f *Font) TextWidth(n int) int { return n * f.Advance() }

type glyph struct {
	r     rune
	bits  uint32
	scale int
}

// Draw paints the glyph with (x, y) on the baseline, which is the bottom
// glyph row.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	top := int(y) - (GlyphSize*g.scale - 1)
	for row := 0; row < GlyphSize; row++ {
		for col := 0; col < GlyphSize; col++ {
			if g.bits&(1<<(row*GlyphSize+col)) == 0 {
				continue
			}
			px := int(x) + col*g.scale
			py := top + row*g.scale
			for dy := 0; dy < g.scale; dy++ {
				for dx := 0; dx < g.scale; dx++ {
					display.SetPixel(int16(px+dx), int16(py+dy), c)
				}
			}
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	h := GlyphSize * g.scale
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(h),
		Height:   uint8(h),
		XAdvance: uint8(h + Kerning),
		XOffset:  0,
		YOffset:  int8(-(h - 1)),
	}
}
