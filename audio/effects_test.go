package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lcd-invaders/constants"
)

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d ok=%v", n, ok)
	}

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorNoise verifies noise stays in range and is not a constant level
func TestOscillatorNoise(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(0, 20*time.Millisecond, WaveNoise, rate)

	samples := make([][2]float64, 160)
	n, _ := osc.Stream(samples)
	if n != 160 {
		t.Fatalf("Expected 160 samples, got %d", n)
	}

	distinct := map[float64]bool{}
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v < -1 || v > 1 {
			t.Errorf("Noise sample %d out of range: %f", i, v)
		}
		if samples[i][1] != v {
			t.Errorf("Expected identical channels at %d", i)
		}
		distinct[v] = true
	}
	if len(distinct) < 2 {
		t.Error("Expected noise to vary between samples")
	}
}

// TestOscillatorDuration verifies the stream ends after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 10*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if n != 10 {
		t.Errorf("Expected 10 samples for 10ms at 1kHz, got %d", n)
	}
	if ok {
		t.Error("Expected stream to report exhaustion")
	}
}

// TestEnvelopeAttackPhase verifies the attack ramps up from silence
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // phase stays 0: constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 10)
	env.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[9][0] <= samples[1][0] {
		t.Errorf("Expected attack to ramp up, got first=%f last=%f", samples[1][0], samples[9][0])
	}
}

// TestSoundEffects verifies both cues stream audible samples in range
func TestSoundEffects(t *testing.T) {
	cfg := DefaultAudioConfig()

	tests := []struct {
		soundType SoundType
		duration  time.Duration
	}{
		{SoundFire, constants.FireSoundDuration},
		{SoundHit, constants.HitSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.soundType.String(), func(t *testing.T) {
			sound := GetSoundEffect(tt.soundType, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %v", tt.soundType)
			}

			total := beep.SampleRate(cfg.SampleRate).N(tt.duration)
			samples := make([][2]float64, total+100)
			n, _ := sound.Stream(samples)
			if n == 0 {
				t.Fatal("Expected sound to produce samples")
			}

			peak := 0.0
			for i := 0; i < n; i++ {
				peak = math.Max(peak, math.Abs(samples[i][0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Expected peak amplitude in (0, 1], got %f", peak)
			}
		})
	}
}

func TestGetSoundEffectInvalid(t *testing.T) {
	if GetSoundEffect(SoundType(999), DefaultAudioConfig()) != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestZeroVolumeIsSilent verifies a muted master volume produces silence
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	samples := make([][2]float64, 200)
	n, _ := CreateHitSound(cfg).Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence at sample %d, got %f", i, samples[i][0])
		}
	}
}
