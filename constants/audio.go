package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two cues of the same type
	MinSoundGap = 30 * time.Millisecond
)

// Fire Sound Timing (short piezo chirp)
const (
	FireSoundDuration = 40 * time.Millisecond
	FireSoundAttack   = 2 * time.Millisecond
	FireSoundRelease  = 15 * time.Millisecond
	FireSoundFreq     = 1760.0
)

// Hit Sound Timing (noise burst over a low square)
const (
	HitSoundDuration = 180 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 140 * time.Millisecond
	HitSoundFreq     = 110.0
)
