// Package audio plays the game's synthesized sound effects through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids"
)

// SoundManager mixes effects and music onto the speaker.
// It implements roids.Audio; Play never blocks on the audio device.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	lock        func()
	unlock      func()
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	cfg.Volume = core.ClampF(cfg.Volume, 0, 1)
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize opens the speaker. Disabled audio is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Play starts an effect. Music is started at most once and keeps looping.
func (sm *SoundManager) Play(e roids.Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch e {
	case roids.EffectMusic:
		if !sm.cfg.Music || sm.music != nil {
			return
		}
		sm.music = &beep.Ctrl{Streamer: withVolume(newMusic(sampleRate), 0.35)}
		s = sm.music
	case roids.EffectShoot:
		s = shootSound(sampleRate)
	case roids.EffectExplode:
		s = explodeSound(sampleRate)
	default:
		return
	}

	sm.lock()
	sm.mixer.Add(withVolume(s, sm.cfg.Volume))
	sm.unlock()
}

// SetMusicPaused pauses or resumes the background music.
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	sm.lock()
	sm.music.Paused = paused
	sm.unlock()
}

// Playing returns the number of streams in the mix.
func (sm *SoundManager) Playing() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}
