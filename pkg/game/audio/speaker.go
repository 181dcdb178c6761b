package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SpeakerPlayer plays effects through the system audio device.
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerPlayer opens the audio device.
func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	p := &SpeakerPlayer{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play queues s on the mixer and returns immediately.
func (p *SpeakerPlayer) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(Streamer(sampleRate, s))
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
	return nil
}
