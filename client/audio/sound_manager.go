package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/penaltykick/pkg/game/types"
	"github.com/cbodonnell/penaltykick/pkg/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays short cues for game events. Until Initialize succeeds,
// or while muted, every Play call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %v", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all cues and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
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

func (sm *SoundManager) play(cue func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(cue(sampleRate))
	speaker.Unlock()
}

// HandleShoot implements workers.EventHandler.
func (sm *SoundManager) HandleShoot(event types.ShootEvent) {
	sm.play(Whistle)
}

func (sm *SoundManager) HandleOutcome(event types.OutcomeEvent) {
	switch event.Outcome {
	case types.OutcomeSaved:
		sm.play(Thud)
	case types.OutcomeMissed:
		sm.play(Groan)
	}
}

func (sm *SoundManager) HandleCelebration(event types.CelebrationEvent) {
	sm.play(Cheer)
}

func (sm *SoundManager) HandleReset(event types.ResetEvent) {
	log.Trace("Audio cues idle after shot %s", event.ShotID)
}
