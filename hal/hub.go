package hal

import "time"

// Hub is the event source behind the non-browser hosts.
//
// It keeps the viewport size, the click and resize listeners, and the
// pending frame requests. A Hub is not safe for concurrent use: the host
// that owns it calls every method from its run loop goroutine, which is what
// gives listeners their one-at-a-time guarantee.
type Hub struct {
	width  int
	height int

	resize listenerSet[struct{}]
	click  listenerSet[ClickEvent]
	frames frameQueue

	origin time.Time
	now    func() time.Time
}

// NewHub returns a hub reporting the given viewport.
func NewHub(width, height int) *Hub {
	h := &Hub{width: width, height: height, now: time.Now}
	h.origin = h.now()
	return h
}

func (h *Hub) InnerSize() (width, height int) { return h.width, h.height }

func (h *Hub) OnResize(fn func()) (release func()) {
	return h.resize.add(func(struct{}) { fn() })
}

func (h *Hub) OnClick(fn func(ClickEvent)) (release func()) {
	return h.click.add(fn)
}

func (h *Hub) RequestFrame(fn FrameCallback) (cancel func()) {
	return h.frames.request(fn)
}

// SetSize records a new viewport and notifies resize listeners.
func (h *Hub) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.resize.emit(struct{}{})
}

// Click notifies click listeners.
func (h *Hub) Click(ev ClickEvent) {
	h.click.emit(ev)
}

// Frame delivers ts to every callback requested before the call and returns
// how many ran. Callbacks requested while delivering wait for the next
// frame.
func (h *Hub) Frame(ts float64) int {
	return h.frames.run(ts)
}

// Tick delivers a frame stamped with the hub clock.
func (h *Hub) Tick() int {
	return h.Frame(h.Now())
}

// Now returns milliseconds elapsed since the hub was created.
func (h *Hub) Now() float64 {
	return float64(h.now().Sub(h.origin)) / float64(time.Millisecond)
}

// Pending reports queued frame requests.
func (h *Hub) Pending() int { return len(h.frames.pending) }

// Listeners reports registered click and resize listeners.
func (h *Hub) Listeners() (click, resize int) {
	return len(h.click.entries), len(h.resize.entries)
}

type listenerEntry[T any] struct {
	id uint64
	fn func(T)
}

type listenerSet[T any] struct {
	seq     uint64
	entries []listenerEntry[T]
}

func (s *listenerSet[T]) add(fn func(T)) func() {
	s.seq++
	id := s.seq
	s.entries = append(s.entries, listenerEntry[T]{id: id, fn: fn})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, e := range s.entries {
			if e.id == id {
				s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
				return
			}
		}
	}
}

func (s *listenerSet[T]) emit(v T) {
	// Listeners may release themselves while running.
	for _, e := range s.entries[:len(s.entries):len(s.entries)] {
		e.fn(v)
	}
}

type frameRequest struct {
	fn       FrameCallback
	canceled bool
}

type frameQueue struct {
	pending []*frameRequest
}

func (q *frameQueue) request(fn FrameCallback) func() {
	r := &frameRequest{fn: fn}
	q.pending = append(q.pending, r)
	return func() {
		if r.canceled {
			return
		}
		r.canceled = true
		for i, p := range q.pending {
			if p == r {
				q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
				return
			}
		}
	}
}

func (q *frameQueue) run(ts float64) int {
	batch := q.pending
	q.pending = nil

	n := 0
	for _, r := range batch {
		if r.canceled {
			continue
		}
		r.canceled = true
		r.fn(ts)
		n++
	}
	return n
}
