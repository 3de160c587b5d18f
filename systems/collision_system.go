package systems

import (
	"log"

	"github.com/lixenwraith/lcd-invaders/engine"
)

// CollisionSystem resolves bullet/invader hits once per frame, after movement
type CollisionSystem struct{}

// NewCollisionSystem creates the collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(state *engine.GameState) {
	if state.CheckHit() == 0 {
		return
	}
	for _, h := range state.Events.Hits() {
		log.Printf("frame %d: bullet %d hit invader %d at col %d row %d",
			state.Frame, h.Bullet, h.Invader, h.BulletCell.Column, h.BulletCell.Row)
	}
}
