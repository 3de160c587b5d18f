package systems

import (
	"github.com/lixenwraith/lcd-invaders/engine"
	"github.com/lixenwraith/lcd-invaders/input"
)

// NewUpdateStage returns the systems of one frame in execution order:
// input, spawn, movement, collision
func NewUpdateStage(config engine.Config, axis input.AxisReader) []engine.System {
	return []engine.System{
		NewPlayerSystem(axis),
		NewSpawnSystem(config.SpawnPeriod),
		NewMovementSystem(config.MovePeriod),
		NewCollisionSystem(),
	}
}

// Register adds the update stage to game
func Register(game *engine.Game, axis input.AxisReader) {
	for _, sys := range NewUpdateStage(game.Config(), axis) {
		game.AddSystem(sys)
	}
}
