package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and a central mixer all effects are played
// through. Every Play method is a no-op until Initialize succeeds or while
// muted, so the game runs fine without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker Close; clearing the mixer
// is enough to stop output.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.muted {
		return
	}
	sm.mixer.Add(s)
}

// PlayShot fires the gunshot crack: a filtered noise burst with a fast decay.
func (sm *SoundManager) PlayShot() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*180), NewNoiseBurst(sampleRate, 0.9)))
}

// PlayDryFire clicks when the trigger is pulled on an empty magazine.
func (sm *SoundManager) PlayDryFire() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*40), NewClick(sampleRate, 2200)))
}

// PlayReload racks the slide: two clicks separated by a short gap.
func (sm *SoundManager) PlayReload() {
	first := beep.Take(sampleRate.N(time.Millisecond*60), NewClick(sampleRate, 900))
	gap := beep.Silence(sampleRate.N(time.Millisecond * 120))
	second := beep.Take(sampleRate.N(time.Millisecond*80), NewClick(sampleRate, 600))
	sm.play(beep.Seq(first, gap, second))
}

// PlayHit thuds when a shot lands on a ghost.
func (sm *SoundManager) PlayHit() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*120), NewThud(sampleRate, 140)))
}

// PlayHurt buzzes when the player takes contact damage.
func (sm *SoundManager) PlayHurt() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*250), NewBuzz(sampleRate, 110)))
}

// PlayWaveHorn announces an incoming wave with a rising tone.
func (sm *SoundManager) PlayWaveHorn() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*400), NewSweep(sampleRate, 220, 440)))
}
