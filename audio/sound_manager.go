// Package audio synthesizes the anomaly sound effects with beep.
// No sample assets; every effect is a generated tone.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/riftpulse/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays synthesized one-shot effects through the speaker.
// Implements core.SoundPlayer.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized sound manager; Play is a no-op
// until Initialize succeeds
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// SetMuted toggles sound output without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted returns the current mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play fires the requested effect. Fire-and-forget; unknown or unplayable
// sounds are dropped silently.
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	if !sm.initialized || sm.muted {
		sm.mu.Unlock()
		return
	}
	sm.mu.Unlock()

	switch sound {
	case core.SoundPulse:
		sm.playTone(660, 60*time.Millisecond)
	case core.SoundDetonation:
		sm.playTone(110, 600*time.Millisecond)
	}
}

// Cleanup closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
