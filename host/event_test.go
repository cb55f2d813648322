package host

import (
	"testing"

	"canvashost/hal"

	"github.com/stretchr/testify/assert"
)

func TestEventConstructors(t *testing.T) {
	c := ClickEvent(hal.ClickEvent{X: 1.5, Y: 2})
	assert.Equal(t, EventClick, c.Kind)
	assert.Equal(t, "click(1.5,2)", c.String())

	assert.Equal(t, EventResize, ResizeEvent().Kind)
	assert.Equal(t, "resize", ResizeEvent().String())

	f := FrameEvent(16.6)
	assert.Equal(t, EventFrame, f.Kind)
	assert.Equal(t, 16.6, f.Timestamp)
	assert.Equal(t, "frame(16.6)", f.String())

	assert.Equal(t, "EventKind(9)", EventKind(9).String())
}
