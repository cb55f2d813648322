//go:build !js

package hal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const toneSampleRate = beep.SampleRate(48000)

// speakerAudio plays tones through the system speaker.
type speakerAudio struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// NewAudio opens the default audio device. When the device cannot be
// opened the failure is logged and a silent Audio is returned.
func NewAudio(logger Logger) Audio {
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.WriteLineString(fmt.Sprintf("audio: unavailable: %v", err))
		}
		return NopAudio{}
	}
	a := &speakerAudio{mixer: &beep.Mixer{}}
	speaker.Play(a.mixer)
	return a
}

func (a *speakerAudio) Tone(freqHz float64, d time.Duration) error {
	if freqHz <= 0 || d <= 0 {
		return errors.New("audio: invalid tone")
	}
	sine, err := generators.SineTone(toneSampleRate, freqHz)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	speaker.Lock()
	a.mixer.Add(beep.Take(toneSampleRate.N(d), sine))
	speaker.Unlock()
	return nil
}
