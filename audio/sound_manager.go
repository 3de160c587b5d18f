package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lcd-invaders/constants"
)

// Buzzer plays the game's cues through the speaker
// It stands in for the piezo a hardware build would drive from a timer pin.
// All methods are safe before Initialize and after Cleanup; they do nothing.
type Buzzer struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
}

// NewBuzzer creates a buzzer; nil cfg uses DefaultAudioConfig
func NewBuzzer(cfg *AudioConfig) *Buzzer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Buzzer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (b *Buzzer) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized || !b.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	rate := beep.SampleRate(b.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	log.Printf("audio initialized at %d Hz", b.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (b *Buzzer) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (b *Buzzer) ToggleMute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
	return b.muted
}

// Muted reports whether cues are suppressed
func (b *Buzzer) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// PlayFire plays the bullet chirp
func (b *Buzzer) PlayFire() {
	b.Play(SoundFire)
}

// PlayHit plays the explosion crunch
func (b *Buzzer) PlayHit() {
	b.Play(SoundHit)
}

// Play queues a cue on the mixer; repeats inside MinSoundGap are dropped
func (b *Buzzer) Play(st SoundType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.shouldPlay(st) {
		return
	}
	streamer := GetSoundEffect(st, b.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

// shouldPlay applies mute and rate limiting; caller holds mu
func (b *Buzzer) shouldPlay(st SoundType) bool {
	if !b.initialized || b.muted || st < 0 || st >= soundTypeCount {
		return false
	}
	now := b.now()
	if now.Sub(b.lastPlayed[st]) < constants.MinSoundGap {
		return false
	}
	b.lastPlayed[st] = now
	return true
}
