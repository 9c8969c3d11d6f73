// Package audio plays the engine's sound cues through synthesized tones.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/midway/internal/core"
)

// Config controls the synthesized effects.
type Config struct {
	SampleRate   int
	BufferSize   time.Duration
	MasterVolume float64
	// Volumes overrides the per-cue gain; missing cues play at 1.
	Volumes map[core.Cue]float64
}

// DefaultConfig returns the settings used by the CLI.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		BufferSize:   100 * time.Millisecond,
		MasterVolume: 0.5,
		Volumes: map[core.Cue]float64{
			core.CueShot:      0.4,
			core.CueExplosion: 0.8,
			core.CuePowerUp:   0.7,
			core.CueGameOver:  0.9,
		},
	}
}

func (c Config) volume(cue core.Cue) float64 {
	v, ok := c.Volumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// SoundManager mixes cue effects onto the speaker. It implements core.CuePlayer.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize.
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferSize)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted drops every cue while muted.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Play queues the effect for c and returns immediately.
func (sm *SoundManager) Play(c core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := Effect(c, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending effects and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}
