package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire SoundType = iota // Bullet leaves the gun
	SoundHit                   // Bullet destroys an invader
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}
