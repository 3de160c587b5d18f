package systems

import (
	"github.com/lixenwraith/lcd-invaders/engine"
)

// MovementSystem steps bullets right and invaders left every period frames
// Entities leaving the grid return to their pool
type MovementSystem struct {
	period uint16
}

// NewMovementSystem creates a movement system with the given frame period
func NewMovementSystem(period uint16) *MovementSystem {
	return &MovementSystem{period: period}
}

func (s *MovementSystem) Update(state *engine.GameState) {
	if !engine.Every(state.Frame, s.period) {
		return
	}
	state.MoveBullets()
	state.MoveInvaders()
}
