package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/knife-master/internal/core"
)

// DefaultSampleRate is used when the configured rate is not positive.
const DefaultSampleRate = 44100

// SoundManager plays the game's effects on the system speaker. It satisfies
// the game's Audio interface. Every method is safe to call before Initialize,
// after Cleanup and when no audio device exists: it just stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	rng         *rand.Rand
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager creates a manager with the given sample rate and master
// volume in [0, 1].
func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(sampleRate),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		volume:  core.ClampF(volume, 0, 1),
		enabled: true,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// The speaker has no Close in beep v1; clearing the mixer stops all output.
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetEnabled turns sound on or off. Disabling does not cut sounds already
// playing.
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// Enabled reports whether effects are played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Initialized reports whether the speaker is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) PlayThrow()     { sm.Play(SoundThrow) }
func (sm *SoundManager) PlayHit()       { sm.Play(SoundHit) }
func (sm *SoundManager) PlayFail()      { sm.Play(SoundFail) }
func (sm *SoundManager) PlayWoodBreak() { sm.Play(SoundWoodBreak) }
func (sm *SoundManager) PlayUnlock()    { sm.Play(SoundUnlock) }

// Play starts an effect. It returns immediately.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	streamer := Create(s, sm.rate, sm.rng)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, sm.volume))
	speaker.Unlock()
}
