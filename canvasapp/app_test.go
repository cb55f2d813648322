package canvasapp

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"canvashost/backend"
	"canvashost/canvasapp/ui"
	"canvashost/hal"
	"canvashost/hal/haltest"
	"canvashost/host"
	"canvashost/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, fps int) (*haltest.Env, *surface.Surface, *App) {
	t.Helper()
	env := haltest.New(400, 300)
	s := surface.New("theCanvas", 400, 300, env.Canvas)
	b, err := NewModule(Config{FPS: fps, Audio: env.Sound}).Init(s)
	require.NoError(t, err)
	return env, s, b.(*App)
}

func TestFrameThrottle(t *testing.T) {
	env, _, a := newApp(t, 10) // 100ms interval

	require.NoError(t, a.OnFrame(5))
	assert.Equal(t, 1, a.Tick())
	assert.Zero(t, a.FrameTime())
	assert.Equal(t, 1, env.Canvas.Blits)

	for _, ts := range []float64{16, 50, 105} {
		require.NoError(t, a.OnFrame(ts))
	}
	assert.Equal(t, 1, a.Tick())

	require.NoError(t, a.OnFrame(120))
	assert.Equal(t, 2, a.Tick())
	assert.InDelta(t, 15, a.FrameTime(), 1e-9)
	assert.Equal(t, 2, env.Canvas.Blits)
}

func TestResizeDrawsNextFrameImmediately(t *testing.T) {
	env, s, a := newApp(t, 10)
	require.NoError(t, a.OnFrame(1000))

	s.Resize(200, 100)
	a.OnResize()
	require.NoError(t, a.OnFrame(1010))

	assert.Equal(t, 2, a.Tick())
	assert.Zero(t, a.FrameTime())
	assert.Equal(t, 200, env.Canvas.Width)
	assert.Equal(t, 100, env.Canvas.Height)
}

func TestRenderBackdropAndStats(t *testing.T) {
	env, s, a := newApp(t, 15)
	require.NoError(t, a.OnFrame(0))

	// Backdrop at tick 0 is full blue, away from every widget.
	i := (60*s.Width() + 390) * 4
	assert.Equal(t, []byte{0, 0, 255, 255}, env.Canvas.Pix[i:i+4])

	// "F" of the stats line starts with a lit pixel on the bottom rows.
	j := ((s.Height()-10)*s.Width() + 0) * 4
	assert.Equal(t, []byte{0, 255, 0, 255}, env.Canvas.Pix[j:j+4])
}

func TestBackdropFades(t *testing.T) {
	assert.Equal(t, color.RGBA{B: 255, A: 255}, backdrop(0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, backdrop(100))
	// Past half a period the sine goes negative.
	got := backdrop(255 + 127)
	assert.Less(t, got.B, uint8(10))
}

func TestClickBoopTogglesAndPlaysTone(t *testing.T) {
	env, _, a := newApp(t, 15)
	btn := a.Scene().Handlers[0].(*ui.Button)

	a.OnClick(hal.ClickEvent{X: 20, Y: 200})
	assert.True(t, btn.Pressed())
	require.Len(t, env.Sound.Tones, 1)
	assert.Equal(t, float64(toneHz), env.Sound.Tones[0].Freq)

	a.OnClick(hal.ClickEvent{X: 20, Y: 200})
	assert.False(t, btn.Pressed())
	assert.Len(t, env.Sound.Tones, 2)
}

func TestClickOutsideIsIgnored(t *testing.T) {
	env, _, a := newApp(t, 15)
	btn := a.Scene().Handlers[0].(*ui.Button)

	for _, ev := range []hal.ClickEvent{
		{X: -20, Y: 200},
		{X: 5000, Y: 5000},
		{X: math.NaN(), Y: 1},
		{X: 300, Y: 10},
	} {
		a.OnClick(ev)
	}
	assert.False(t, btn.Pressed())
	assert.Empty(t, env.Sound.Tones)
}

func TestInitFailsWithoutContext(t *testing.T) {
	env := haltest.New(10, 10)
	env.Canvas.AcquireErr = hal.ErrNoCanvas
	s := surface.New("c", 10, 10, env.Canvas)

	_, err := NewModule(Config{}).Init(s)
	var ie *backend.InitError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, backend.ErrUnsupportedContext)
	assert.ErrorIs(t, err, hal.ErrNoCanvas)

	_, err = NewModule(Config{}).Init(nil)
	assert.ErrorIs(t, err, backend.ErrNoSurface)
}

func TestPresentErrorIsFrameFault(t *testing.T) {
	env, _, a := newApp(t, 15)
	boom := errors.New("context lost")
	env.Canvas.Err = boom
	assert.ErrorIs(t, a.OnFrame(0), boom)
}

func TestSelfDrivingStart(t *testing.T) {
	env := haltest.New(400, 300)
	s := surface.New("theCanvas", 400, 300, env.Canvas)
	h, err := NewModule(Config{FPS: 10, Audio: env.Sound}).Start(env, s)
	require.NoError(t, err)
	d := h.(*driver)

	env.Frames(0, 50, 150)
	assert.Equal(t, 2, d.App().Tick())

	env.Resize(640, 480)
	assert.Equal(t, 640, s.Width())
	env.Frames(160)
	assert.Equal(t, 3, d.App().Tick())
	assert.Equal(t, 640, env.Canvas.Width)

	env.Click(20, 200)
	assert.Len(t, env.Sound.Tones, 1)

	require.NoError(t, h.Close())
	click, resize := env.Hub.Listeners()
	assert.Zero(t, click)
	assert.Zero(t, resize)
	assert.Zero(t, env.Hub.Pending())
}

func TestSessionDrivesApp(t *testing.T) {
	env := haltest.New(400, 300)
	s := surface.New("theCanvas", 400, 300, env.Canvas)
	sess := host.NewSession(env, s, NewModule(Config{FPS: 10}), backend.ModeExplicit)
	require.NoError(t, sess.Start())

	env.Frames(0, 99, 101)
	a := sess.Backend().(*App)
	assert.Equal(t, 2, a.Tick())
	assert.Equal(t, image.Pt(400, 300), image.Pt(env.Canvas.Width, env.Canvas.Height))
	require.NoError(t, sess.Close())
}

type panicElement struct{}

func (panicElement) Render(*surface.Surface) error { panic("bad scene") }

type panicHandler struct{}

func (panicHandler) Render(*surface.Surface) error { return nil }
func (panicHandler) Bounds() image.Rectangle       { return image.Rect(0, 0, 400, 300) }
func (panicHandler) OnGesture(ui.Gesture)          { panic("bad tap") }

func startSelfDriving(t *testing.T, scene Scene) (*haltest.Env, *surface.Surface, *host.Session) {
	t.Helper()
	env := haltest.New(400, 300)
	s := surface.New("theCanvas", 400, 300, env.Canvas)
	m := NewModule(Config{Scene: func(func(*ui.Button)) Scene { return scene }})
	sess := host.NewSession(env, s, m, backend.ModeSelfDriving)
	require.NoError(t, sess.Start())
	return env, s, sess
}

func waitSession(t *testing.T, sess *host.Session) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := sess.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded)
	return err
}

func TestSelfDrivingFramePanicEndsSession(t *testing.T) {
	env, s, sess := startSelfDriving(t, Scene{Elements: []ui.Element{panicElement{}}})

	require.NotPanics(t, func() { env.Frames(1) })

	err := waitSession(t, sess)
	var fe *host.FrameError
	require.ErrorAs(t, err, &fe)
	var pe *host.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad scene", pe.Value)
	assert.Equal(t, host.EventFrame, pe.Event.Kind)

	click, resize := env.Hub.Listeners()
	assert.Zero(t, click)
	assert.Zero(t, resize)
	assert.Zero(t, env.Hub.Pending())

	env.Resize(640, 480)
	assert.Equal(t, 400, s.Width())
	require.NoError(t, sess.Close())
}

func TestSelfDrivingClickPanicEndsSession(t *testing.T) {
	env, _, sess := startSelfDriving(t, Scene{Handlers: []ui.GestureHandler{panicHandler{}}})

	require.NotPanics(t, func() { env.Click(10, 10) })

	var pe *host.PanicError
	require.ErrorAs(t, waitSession(t, sess), &pe)
	assert.Equal(t, "bad tap", pe.Value)
	assert.Equal(t, host.EventClick, pe.Event.Kind)

	click, resize := env.Hub.Listeners()
	assert.Zero(t, click)
	assert.Zero(t, resize)
	assert.Zero(t, env.Hub.Pending())
}
