package constants

import "time"

// Game Loop & Engine Timing
const (
	// FramePeriod is the minimum gap between frames (busy-wait after render)
	FramePeriod = 10 * time.Millisecond

	// SpawnPeriod is the number of frames between fire/spawn attempts
	SpawnPeriod = 32

	// MovePeriod is the number of frames between bullet/invader steps
	MovePeriod = 8
)

// Entity Pool Limits
const (
	// MaxBullets is the bullet pool capacity, one glyph slot per bullet
	MaxBullets = 4

	// MaxInvaders is the invader pool capacity
	MaxInvaders = 8
)

// Movement speeds in columns per movement tick
const (
	BulletSpeed  = 1
	InvaderSpeed = 1
)
