//go:build js && wasm

package hal

import (
	"errors"
	"time"

	"syscall/js"
)

// Browser is the Env of a page: the DOM window and document, and one canvas
// element appended to the body.
type Browser struct {
	window   js.Value
	document js.Value
	element  js.Value
	canvas   *browserCanvas
	logger   consoleLogger
	audio    *webAudio
	funcs    []js.Func
}

// NewBrowser creates the canvas element with the given id, sizes it to the
// viewport and appends it to the body.
func NewBrowser(canvasID string) (*Browser, error) {
	window := js.Global()
	document := window.Get("document")
	if document.IsUndefined() || document.IsNull() {
		return nil, errors.New("browser: no document")
	}
	body := document.Get("body")
	body.Get("style").Set("margin", "0")
	body.Get("style").Set("overflow", "hidden")

	el := document.Call("createElement", "canvas")
	el.Set("id", canvasID)
	el.Get("style").Set("display", "block")
	b := &Browser{
		window:   window,
		document: document,
		element:  el,
		logger:   consoleLogger{console: window.Get("console")},
		audio:    &webAudio{window: window},
	}
	w, h := b.InnerSize()
	el.Set("width", w)
	el.Set("height", h)
	body.Call("appendChild", el)
	b.canvas = &browserCanvas{element: el}
	return b, nil
}

func (b *Browser) Logger() Logger   { return b.logger }
func (b *Browser) Window() Window   { return b }
func (b *Browser) Pointer() Pointer { return b }
func (b *Browser) Display() Display { return b }
func (b *Browser) Audio() Audio     { return b.audio }
func (b *Browser) Canvas() Canvas   { return b.canvas }

func (b *Browser) InnerSize() (width, height int) {
	return b.window.Get("innerWidth").Int(), b.window.Get("innerHeight").Int()
}

func (b *Browser) OnResize(fn func()) (release func()) {
	return b.listen(b.window, "resize", func(js.Value) { fn() })
}

func (b *Browser) OnClick(fn func(ClickEvent)) (release func()) {
	return b.listen(b.element, "click", func(e js.Value) {
		fn(ClickEvent{
			X:      e.Get("offsetX").Float(),
			Y:      e.Get("offsetY").Float(),
			Button: e.Get("button").Int(),
		})
	})
}

func (b *Browser) RequestFrame(fn FrameCallback) (cancel func()) {
	var cb js.Func
	released := false
	release := func() {
		if !released {
			released = true
			cb.Release()
		}
	}
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		fn(args[0].Float())
		return nil
	})
	id := b.window.Call("requestAnimationFrame", cb)
	return func() {
		if released {
			return
		}
		b.window.Call("cancelAnimationFrame", id)
		release()
	}
}

// Close releases every listener still registered.
func (b *Browser) Close() error {
	for _, f := range b.funcs {
		f.Release()
	}
	b.funcs = nil
	return nil
}

func (b *Browser) listen(target js.Value, event string, fn func(js.Value)) func() {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	target.Call("addEventListener", event, f)
	b.funcs = append(b.funcs, f)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, f)
		for i, g := range b.funcs {
			if g.Value.Equal(f.Value) {
				b.funcs = append(b.funcs[:i:i], b.funcs[i+1:]...)
				break
			}
		}
		f.Release()
	}
}

type browserCanvas struct {
	element js.Value
	ctx     js.Value
	buf     js.Value
	bufLen  int
}

// Acquire obtains the 2d rendering context.
func (c *browserCanvas) Acquire() error {
	if c.ctx.Truthy() {
		return nil
	}
	ctx := c.element.Call("getContext", "2d")
	if !ctx.Truthy() {
		return ErrNoCanvas
	}
	c.ctx = ctx
	return nil
}

func (c *browserCanvas) Blit(pix []byte, width, height int) error {
	if err := c.Acquire(); err != nil {
		return err
	}
	n := width * height * 4
	if len(pix) < n {
		return errors.New("browser: short pixel buffer")
	}
	if c.element.Get("width").Int() != width {
		c.element.Set("width", width)
	}
	if c.element.Get("height").Int() != height {
		c.element.Set("height", height)
	}
	if c.bufLen != n {
		c.buf = js.Global().Get("Uint8ClampedArray").New(n)
		c.bufLen = n
	}
	js.CopyBytesToJS(c.buf, pix[:n])
	img := js.Global().Get("ImageData").New(c.buf, width, height)
	c.ctx.Call("putImageData", img, 0, 0)
	return nil
}

type consoleLogger struct {
	console js.Value
}

func (l consoleLogger) WriteLineString(s string) { l.console.Call("log", s) }
func (l consoleLogger) WriteLineBytes(b []byte)  { l.console.Call("log", string(b)) }

// webAudio plays tones with an oscillator node.
type webAudio struct {
	window js.Value
	ctx    js.Value
}

func (a *webAudio) Tone(freqHz float64, d time.Duration) error {
	if freqHz <= 0 || d <= 0 {
		return errors.New("audio: invalid tone")
	}
	if !a.ctx.Truthy() {
		ctor := a.window.Get("AudioContext")
		if !ctor.Truthy() {
			return ErrNotImplemented
		}
		a.ctx = ctor.New()
	}
	osc := a.ctx.Call("createOscillator")
	osc.Get("frequency").Set("value", freqHz)
	osc.Call("connect", a.ctx.Get("destination"))
	now := a.ctx.Get("currentTime").Float()
	osc.Call("start", now)
	osc.Call("stop", now+d.Seconds())
	return nil
}
