package canvasapp

import (
	"errors"

	"canvashost/hal"
	"canvashost/host"
	"canvashost/surface"
)

// driver runs an App on its own: it owns the listeners and the frame loop
// the host would otherwise own.
type driver struct {
	app    *App
	router *host.Router
	loop   *host.FrameLoop
}

func startDriver(env hal.Env, s *surface.Surface, app *App) (*driver, error) {
	d := &driver{app: app}
	d.router = host.NewRouter(env, s, d)
	d.loop = host.NewFrameLoop(env.Display(), d)
	// A stopped app takes no more clicks or resizes.
	d.loop.OnStop(func(error) { d.router.Release() })
	if err := d.router.Bind(); err != nil {
		return nil, err
	}
	if err := d.loop.Start(); err != nil {
		d.router.Release()
		return nil, err
	}
	return d, nil
}

// Dispatch delivers ev to the app. A panic comes back as *host.PanicError
// and stops the driver, whatever the event kind.
func (d *driver) Dispatch(ev host.Event) (err error) {
	defer func() {
		var pe *host.PanicError
		if ev.Kind != host.EventFrame && errors.As(err, &pe) {
			d.loop.Fail(err)
		}
	}()
	defer host.RecoverPanic(ev, &err)

	switch ev.Kind {
	case host.EventClick:
		d.app.OnClick(ev.Click)
	case host.EventResize:
		d.app.OnResize()
	case host.EventFrame:
		return d.app.OnFrame(ev.Timestamp)
	default:
		return host.ErrUnknownEvent
	}
	return nil
}

// App returns the driven app.
func (d *driver) App() *App { return d.app }

func (d *driver) Done() <-chan struct{} { return d.loop.Done() }
func (d *driver) Err() error            { return d.loop.Err() }

// Close releases the listeners and stops the loop.
func (d *driver) Close() error {
	d.router.Release()
	d.loop.Stop()
	return nil
}
