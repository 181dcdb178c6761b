package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Note is one step of a sound effect. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// melodies holds the notes of every sound effect.
var melodies = map[Sound][]Note{
	SoundReveal:  {{Freq: 880, Duration: 30 * time.Millisecond}},
	SoundFlag:    {{Freq: 660, Duration: 40 * time.Millisecond}, {Freq: 990, Duration: 40 * time.Millisecond}},
	SoundExplode: {{Freq: 110, Duration: 250 * time.Millisecond}, {Freq: 80, Duration: 300 * time.Millisecond}},
	SoundWin: {
		{Freq: 523, Duration: 100 * time.Millisecond},
		{Freq: 659, Duration: 100 * time.Millisecond},
		{Freq: 784, Duration: 100 * time.Millisecond},
		{Freq: 1047, Duration: 200 * time.Millisecond},
	},
	SoundNewGame: {{Freq: 440, Duration: 60 * time.Millisecond}, {Duration: 20 * time.Millisecond}, {Freq: 440, Duration: 60 * time.Millisecond}},
}

// Melody returns the notes of s.
func Melody(s Sound) []Note {
	return melodies[s]
}

// ToneGenerator streams a sine tone with a short attack and release so notes
// don't click.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

// NewToneGenerator creates a finite sine tone
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, length: sr.N(d)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	ramp := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Min(1, math.Min(float64(g.pos)/ramp, float64(g.length-g.pos)/ramp))
		sample := 0.25 * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Streamer renders the melody of s at the given sample rate.
func Streamer(sr beep.SampleRate, s Sound) beep.Streamer {
	notes := Melody(s)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.Duration)))
			continue
		}
		parts = append(parts, NewToneGenerator(sr, n.Freq, n.Duration))
	}
	return beep.Seq(parts...)
}

// Length returns the total duration of the melody of s.
func Length(s Sound) time.Duration {
	var d time.Duration
	for _, n := range Melody(s) {
		d += n.Duration
	}
	return d
}
