package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/lcd-invaders/constants"
)

// Config holds the loop tunables
type Config struct {
	// FramePeriod is the delay after each rendered frame
	FramePeriod time.Duration

	// SpawnPeriod is the frame interval between fire/spawn attempts
	SpawnPeriod uint16

	// MovePeriod is the frame interval between movement steps
	MovePeriod uint16
}

// DefaultConfig returns the stock timing of the game
func DefaultConfig() Config {
	return Config{
		FramePeriod: constants.FramePeriod,
		SpawnPeriod: constants.SpawnPeriod,
		MovePeriod:  constants.MovePeriod,
	}
}

// Validate rejects periods the loop cannot honour
func (c Config) Validate() error {
	if c.FramePeriod < 0 {
		return fmt.Errorf("frame period must not be negative, got %v", c.FramePeriod)
	}
	if c.SpawnPeriod == 0 {
		return fmt.Errorf("spawn period must be at least 1 frame")
	}
	if c.MovePeriod == 0 {
		return fmt.Errorf("move period must be at least 1 frame")
	}
	return nil
}

// Every reports whether frame falls on a multiple of period
func Every(frame, period uint16) bool {
	return period != 0 && frame%period == 0
}
