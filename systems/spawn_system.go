package systems

import (
	"github.com/lixenwraith/lcd-invaders/engine"
)

// SpawnSystem fires a bullet and spawns an invader every period frames
// Each pool gains at most one entity per invocation; a full pool is skipped
type SpawnSystem struct {
	period uint16
}

// NewSpawnSystem creates a spawn system with the given frame period
func NewSpawnSystem(period uint16) *SpawnSystem {
	return &SpawnSystem{period: period}
}

func (s *SpawnSystem) Update(state *engine.GameState) {
	if !engine.Every(state.Frame, s.period) {
		return
	}
	state.FireBullet()
	state.SpawnInvader()
}
