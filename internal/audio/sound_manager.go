// Package audio provides generated sound effects via the beep speaker.
// No sound files are shipped; every effect is a short synthesized tone.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Kind identifies one of the game's sound effects.
type Kind int

const (
	PaddleHit Kind = iota
	WallBounce
	Score
)

// tone describes the synthesized effect for a Kind.
type tone struct {
	freq     float64
	duration time.Duration
}

// Frequencies follow the classic arcade register: mid blip for paddle,
// low thud for walls, high chime for a point.
var tones = map[Kind]tone{
	PaddleHit:  {freq: 440, duration: 100 * time.Millisecond},
	WallBounce: {freq: 220, duration: 100 * time.Millisecond},
	Score:      {freq: 880, duration: 300 * time.Millisecond},
}

// Player is the playback surface the game logic depends on.
// Implementations must never block the caller.
type Player interface {
	Play(k Kind)
}

// Manager owns the speaker and mixes effect tones into it.
// If Initialize fails (no audio device), every Play is a no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a sound manager. Call Initialize before use.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Safe to call twice.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play mixes the effect tone into the speaker and returns immediately.
// A manager that failed to initialize silently drops the trigger.
func (m *Manager) Play(k Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	t, ok := tones[k]
	if !ok {
		return
	}

	streamer := beep.Take(sampleRate.N(t.duration), NewToneGenerator(sampleRate, t.freq))
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup stops playback and releases the mixer.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// ToneGenerator produces a sine tone with a short fade-in and fade-out so
// clipped effects don't click.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator at the given frequency.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(time.Millisecond * 5))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(float64(g.pos)/attack, 1.0)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Muted is a Player that discards every trigger. Used for --mute and for
// SSH sessions, where server-side audio makes no sense.
type Muted struct{}

func (Muted) Play(Kind) {}
