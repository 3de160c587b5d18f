package systems

import (
	"github.com/lixenwraith/lcd-invaders/engine"
	"github.com/lixenwraith/lcd-invaders/input"
)

// PlayerSystem samples the stick once per frame and moves the player
type PlayerSystem struct {
	axis input.AxisReader
}

// NewPlayerSystem creates a player system reading from axis
func NewPlayerSystem(axis input.AxisReader) *PlayerSystem {
	return &PlayerSystem{axis: axis}
}

func (s *PlayerSystem) Update(state *engine.GameState) {
	state.MovePlayer(input.Delta(s.axis.ReadAxis()))
}
