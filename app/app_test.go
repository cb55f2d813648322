package app

import (
	"errors"
	"strings"
	"testing"

	"canvashost/backend"
	"canvashost/console"
	"canvashost/hal"
	"canvashost/hal/haltest"
	"canvashost/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootExplicit(t *testing.T) {
	env := haltest.New(800, 600)
	sys, err := Boot(env, Config{FPS: 10})
	require.NoError(t, err)
	defer sys.Close()

	assert.Equal(t, backend.ModeExplicit, sys.Mode())
	assert.Equal(t, DefaultCanvasID, sys.Surface.ID())
	assert.Equal(t, 800, sys.Surface.Width())

	env.Frames(0)
	assert.Equal(t, 1, env.Canvas.Blits)

	env.Resize(1024, 768)
	assert.Equal(t, 1024, sys.Surface.Width())
	env.Frames(5)
	assert.Equal(t, 1024, env.Canvas.Width)
	assert.Equal(t, 768, env.Canvas.Height)

	lines := env.Log.Snapshot()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "explicit session")
}

func TestBootSelfDriving(t *testing.T) {
	env := haltest.New(320, 240)
	sys, err := Boot(env, Config{Mode: backend.ModeSelfDriving})
	require.NoError(t, err)

	env.Frames(0)
	assert.Equal(t, 1, env.Canvas.Blits)
	assert.ErrorIs(t, sys.Dispatch(host.FrameEvent(1)), host.ErrSelfDriving)

	require.NoError(t, sys.Close())
	assert.Zero(t, env.Hub.Pending())
}

func TestBootInitError(t *testing.T) {
	env := haltest.New(10, 10)
	env.Canvas.AcquireErr = hal.ErrNoCanvas

	_, err := Boot(env, Config{})
	var ie *backend.InitError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, hal.ErrNoCanvas)
}

func TestBootConsoleOverlay(t *testing.T) {
	env := haltest.New(300, 200)
	con := console.New(2)
	sys, err := Boot(env, Config{Console: con})
	require.NoError(t, err)
	defer sys.Close()

	con.WriteLineString("hello")
	env.Frames(0)

	// Bottom-right pixel lies in the console strip, which is black.
	p := env.Canvas.Pix
	i := (199*300 + 299) * 4
	assert.Equal(t, []byte{0, 0, 0, 255}, p[i:i+4])
}

func TestCloseAfterFaultDrawsFaultScreen(t *testing.T) {
	env := haltest.New(200, 100)
	sys, err := Boot(env, Config{})
	require.NoError(t, err)

	boom := errors.New("context lost")
	env.Canvas.Err = boom
	env.Frames(0)
	require.ErrorIs(t, sys.Err(), boom)

	env.Canvas.Err = nil
	require.NoError(t, sys.Close())
	assert.Equal(t, 1, env.Canvas.Blits)
	// White background of the fault screen.
	assert.Equal(t, []byte{255, 255, 255, 255}, env.Canvas.Pix[len(env.Canvas.Pix)-4:])

	var fault bool
	for _, l := range env.Log.Snapshot() {
		if strings.HasPrefix(l, "Session fault:") {
			fault = true
		}
	}
	assert.True(t, fault)
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo world", 5)
	assert.Equal(t, "héllo", p)
	assert.Equal(t, " world", r)

	p, r = takeRunes("abc", 10)
	assert.Equal(t, "abc", p)
	assert.Empty(t, r)
}

func TestFaultLines(t *testing.T) {
	err := &host.FrameError{Timestamp: 16.5, Err: &host.PanicError{Event: host.FrameEvent(16.5), Value: "nil map", Stack: []byte("a\n\nb\n")}}
	lines := faultLines(err)
	assert.Equal(t, "Session fault:", lines[0])
	assert.Contains(t, lines, "frame: 16.5")
	assert.Contains(t, lines, "panic: nil map")
	assert.Equal(t, []string{"stack:", "a", "b"}, lines[len(lines)-3:])
}
