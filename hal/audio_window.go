//go:build !js && cgo

package hal

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const windowSampleRate = 44100

// windowAudio plays tones through ebiten's audio context, which the window
// host already owns.
type windowAudio struct {
	mu   sync.Mutex
	ctx  *audio.Context
	vol  float64
	last *audio.Player
}

func newWindowAudio() *windowAudio {
	return &windowAudio{vol: 0.25}
}

func (a *windowAudio) Tone(freqHz float64, d time.Duration) error {
	if freqHz <= 0 || d <= 0 {
		return errors.New("window audio: invalid tone")
	}

	a.mu.Lock()
	if a.ctx == nil {
		a.ctx = audio.NewContext(windowSampleRate)
	}
	p := a.ctx.NewPlayerFromBytes(sineStereo16(freqHz, d, windowSampleRate))
	p.SetVolume(a.vol)
	p.Play()
	a.last = p
	a.mu.Unlock()
	return nil
}

// sineStereo16 renders a tone as 16-bit little-endian stereo samples.
func sineStereo16(freqHz float64, d time.Duration, sampleRate int) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		s := int16(math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate)) * math.MaxInt16)
		j := i * 4
		buf[j+0] = byte(s)
		buf[j+1] = byte(s >> 8)
		buf[j+2] = byte(s)
		buf[j+3] = byte(s >> 8)
	}
	return buf
}
