package hal

// NewEnv assembles an Env around a hub.
//
// A nil audio plays nothing.
func NewEnv(logger Logger, hub *Hub, canvas Canvas, audio Audio) Env {
	if audio == nil {
		audio = NopAudio{}
	}
	return &hubEnv{logger: logger, hub: hub, canvas: canvas, audio: audio}
}

type hubEnv struct {
	logger Logger
	hub    *Hub
	canvas Canvas
	audio  Audio
}

func (e *hubEnv) Logger() Logger   { return e.logger }
func (e *hubEnv) Window() Window   { return e.hub }
func (e *hubEnv) Pointer() Pointer { return e.hub }
func (e *hubEnv) Display() Display { return hubDisplay{e} }
func (e *hubEnv) Audio() Audio     { return e.audio }

type hubDisplay struct {
	e *hubEnv
}

func (d hubDisplay) Canvas() Canvas { return d.e.canvas }

func (d hubDisplay) RequestFrame(fn FrameCallback) (cancel func()) {
	return d.e.hub.RequestFrame(fn)
}
