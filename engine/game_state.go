package engine

import (
	"github.com/lixenwraith/lcd-invaders/constants"
	"github.com/lixenwraith/lcd-invaders/glyph"
)

// NoSlot marks an event field with nothing to report
const NoSlot = -1

// Hit records one bullet/invader collision resolved this frame
type Hit struct {
	Bullet      int
	Invader     int
	BulletCell  Cell
	InvaderCell Cell
}

// FrameEvents collects what happened during the current frame's update
// Reset at the start of every frame, read by the renderer and sound hooks
type FrameEvents struct {
	Fired    int // bullet index fired this frame or NoSlot
	Spawned  int // invader index spawned this frame or NoSlot
	hits     [constants.MaxBullets]Hit
	hitCount int
}

// Reset clears the events for a new frame
func (e *FrameEvents) Reset() {
	e.Fired = NoSlot
	e.Spawned = NoSlot
	e.hitCount = 0
}

// Hits returns the collisions of this frame
func (e *FrameEvents) Hits() []Hit {
	return e.hits[:e.hitCount]
}

func (e *FrameEvents) addHit(h Hit) {
	// A bullet is consumed by its first hit so there is at most one per bullet
	if e.hitCount < len(e.hits) {
		e.hits[e.hitCount] = h
		e.hitCount++
	}
}

// GameState is the complete mutable state of one game
// Owned by the loop goroutine; systems and renderers receive it by pointer
type GameState struct {
	// Frame counts loop iterations and wraps like the 16-bit firmware counter
	Frame uint16

	// PlayerOffset is the player's downward pixel shift in [0, MaxPlayerOffset]
	PlayerOffset int

	Bullets  [constants.MaxBullets]Bullet
	Invaders [constants.MaxInvaders]Invader

	Events FrameEvents

	// Totals for the session summary
	Shots uint32
	Kills uint32
}

// NewGameState returns a state with empty pools and the player at the top
func NewGameState() *GameState {
	s := &GameState{}
	s.Events.Reset()
	return s
}

// ===== PLAYER =====

// SetPlayerOffset stores h clamped to the legal range
func (s *GameState) SetPlayerOffset(h int) {
	if h < 0 {
		h = 0
	} else if h > constants.MaxPlayerOffset {
		h = constants.MaxPlayerOffset
	}
	s.PlayerOffset = h
}

// MovePlayer shifts the player by delta pixel rows
func (s *GameState) MovePlayer(delta int) {
	s.SetPlayerOffset(s.PlayerOffset + delta)
}

// ===== SPAWN =====

// InvaderRow picks the spawn row of an invader from the frame and slot
// Cheap and deterministic so replays and tests see the same sequence
func InvaderRow(frame uint16, slot int) int {
	return int((frame + uint16(slot)*7) & 0x01)
}

// BulletSpawn returns the cell row and glyph pixel row for a bullet fired
// at the given player offset; the gun sits on sprite row GunPixelRow
func BulletSpawn(offset int) (row, pixelRow int) {
	pixelRow = constants.GunPixelRow + glyph.ClampShift(offset)
	if pixelRow >= glyph.Rows {
		return 1, pixelRow - glyph.Rows
	}
	return 0, pixelRow
}

// SpawnInvader activates the first free invader at the right edge
// At most one invader per call; returns false when the pool is full
func (s *GameState) SpawnInvader() (int, bool) {
	i := firstInactive(s.Invaders[:])
	if i < 0 {
		return NoSlot, false
	}
	s.Invaders[i].Activate(Cell{Column: constants.InvaderSpawnColumn, Row: InvaderRow(s.Frame, i)})
	s.Events.Spawned = i
	return i, true
}

// FireBullet activates the first free bullet next to the player
// At most one bullet per call; returns false when the pool is full
func (s *GameState) FireBullet() (int, bool) {
	i := firstInactive(s.Bullets[:])
	if i < 0 {
		return NoSlot, false
	}
	row, pixelRow := BulletSpawn(s.PlayerOffset)
	s.Bullets[i].Activate(Cell{Column: constants.BulletSpawnColumn, Row: row})
	s.Bullets[i].PixelRow = pixelRow
	s.Events.Fired = i
	s.Shots++
	return i, true
}

// BulletGlyph returns the glyph bitmap of bullet i, fixed at fire time
func (s *GameState) BulletGlyph(i int) glyph.Bitmap {
	return glyph.BulletBitmap(s.Bullets[i].PixelRow)
}

// ===== MOVEMENT =====

// MoveBullets steps every live bullet right, freeing those past the edge
func (s *GameState) MoveBullets() {
	for i := range s.Bullets {
		b := &s.Bullets[i]
		if !b.Active() {
			continue
		}
		b.Column += constants.BulletSpeed
		if b.Column > constants.LastColumn {
			b.Deactivate()
		}
	}
}

// MoveInvaders steps every live invader left
// An invader already at column 0 leaves the screen instead
func (s *GameState) MoveInvaders() {
	for i := range s.Invaders {
		v := &s.Invaders[i]
		if !v.Active() {
			continue
		}
		if v.Column < 1 {
			v.Deactivate()
			continue
		}
		v.Column -= constants.InvaderSpeed
	}
}

// ===== COLLISION =====

// CheckHit resolves every bullet/invader overlap, freeing both entities
// and recording the cells that must be blanked; returns the hit count
func (s *GameState) CheckHit() int {
	hits := 0
	for i := range s.Bullets {
		b := &s.Bullets[i]
		if !b.Active() {
			continue
		}
		for j := range s.Invaders {
			v := &s.Invaders[j]
			if !v.Covers(b.Cell) {
				continue
			}
			s.Events.addHit(Hit{Bullet: i, Invader: j, BulletCell: b.Cell, InvaderCell: v.Cell})
			b.Deactivate()
			v.Deactivate()
			s.Kills++
			hits++
			break
		}
	}
	return hits
}

// ===== QUERIES =====

// ActiveBullets returns the number of live bullets
func (s *GameState) ActiveBullets() int {
	return countActive(s.Bullets[:])
}

// ActiveInvaders returns the number of live invaders
func (s *GameState) ActiveInvaders() int {
	return countActive(s.Invaders[:])
}
