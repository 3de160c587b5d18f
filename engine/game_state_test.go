package engine

import (
	"testing"

	"github.com/lixenwraith/lcd-invaders/constants"
	"github.com/lixenwraith/lcd-invaders/glyph"
)

// TestGameStateInitialization verifies pools start empty
func TestGameStateInitialization(t *testing.T) {
	s := NewGameState()

	if s.ActiveBullets() != 0 {
		t.Errorf("Expected 0 bullets, got %d", s.ActiveBullets())
	}
	if s.ActiveInvaders() != 0 {
		t.Errorf("Expected 0 invaders, got %d", s.ActiveInvaders())
	}
	if s.PlayerOffset != 0 {
		t.Errorf("Expected player offset 0, got %d", s.PlayerOffset)
	}
	if s.Events.Fired != NoSlot || s.Events.Spawned != NoSlot {
		t.Error("Expected no events on a new state")
	}
}

func TestSetPlayerOffsetClamps(t *testing.T) {
	s := NewGameState()

	s.SetPlayerOffset(-3)
	if s.PlayerOffset != 0 {
		t.Errorf("Expected 0, got %d", s.PlayerOffset)
	}
	s.SetPlayerOffset(42)
	if s.PlayerOffset != constants.MaxPlayerOffset {
		t.Errorf("Expected %d, got %d", constants.MaxPlayerOffset, s.PlayerOffset)
	}
	s.MovePlayer(-1)
	if s.PlayerOffset != constants.MaxPlayerOffset-1 {
		t.Errorf("Expected %d, got %d", constants.MaxPlayerOffset-1, s.PlayerOffset)
	}
}

// TestSpawnInvaderSingle verifies one spawn per call at the spawn column
func TestSpawnInvaderSingle(t *testing.T) {
	s := NewGameState()

	i, ok := s.SpawnInvader()
	if !ok || i != 0 {
		t.Fatalf("Expected slot 0 to spawn, got %d ok=%v", i, ok)
	}
	if s.ActiveInvaders() != 1 {
		t.Errorf("Expected exactly 1 active invader, got %d", s.ActiveInvaders())
	}
	if s.Invaders[0].Column != constants.InvaderSpawnColumn {
		t.Errorf("Expected column %d, got %d", constants.InvaderSpawnColumn, s.Invaders[0].Column)
	}
	if s.Invaders[0].Row != InvaderRow(0, 0) {
		t.Errorf("Expected row %d, got %d", InvaderRow(0, 0), s.Invaders[0].Row)
	}
	if s.Events.Spawned != 0 {
		t.Errorf("Expected spawn event for slot 0, got %d", s.Events.Spawned)
	}
}

// TestSpawnInvaderFullPool verifies a full pool is left untouched
func TestSpawnInvaderFullPool(t *testing.T) {
	s := NewGameState()
	for i := 0; i < constants.MaxInvaders; i++ {
		s.Frame = uint16(i)
		if _, ok := s.SpawnInvader(); !ok {
			t.Fatalf("Expected spawn %d to succeed", i)
		}
	}

	before := s.Invaders
	s.Events.Reset()
	if _, ok := s.SpawnInvader(); ok {
		t.Error("Expected spawn on full pool to fail")
	}
	if s.Invaders != before {
		t.Error("Expected full pool to be unchanged")
	}
	if s.Events.Spawned != NoSlot {
		t.Error("Expected no spawn event")
	}
}

// TestSpawnInvaderFirstFreeSlot verifies the scan order
func TestSpawnInvaderFirstFreeSlot(t *testing.T) {
	s := NewGameState()
	s.SpawnInvader()
	s.SpawnInvader()
	s.SpawnInvader()
	s.Invaders[1].Deactivate()

	i, ok := s.SpawnInvader()
	if !ok || i != 1 {
		t.Errorf("Expected refill of slot 1, got %d ok=%v", i, ok)
	}
}

func TestInvaderRowDeterministic(t *testing.T) {
	for frame := uint16(0); frame < 64; frame++ {
		for slot := 0; slot < constants.MaxInvaders; slot++ {
			row := InvaderRow(frame, slot)
			if row != InvaderRow(frame, slot) {
				t.Fatal("Expected row selection to be repeatable")
			}
			if row != int(frame+uint16(slot)*7)&1 {
				t.Errorf("frame %d slot %d: unexpected row %d", frame, slot, row)
			}
		}
	}
	if InvaderRow(0, 0) == InvaderRow(0, 1) {
		t.Error("Expected neighbouring slots to alternate rows")
	}
}

// TestFireBulletOverflowRow verifies offset 5 lands on the bottom row, pixel row 0
func TestFireBulletOverflowRow(t *testing.T) {
	s := NewGameState()
	s.SetPlayerOffset(5)

	i, ok := s.FireBullet()
	if !ok {
		t.Fatal("Expected bullet to fire")
	}
	b := s.Bullets[i]
	if b.Row != 1 {
		t.Errorf("Expected bullet row 1, got %d", b.Row)
	}
	if b.PixelRow != 0 {
		t.Errorf("Expected pixel row 0, got %d", b.PixelRow)
	}
	if b.Column != constants.BulletSpawnColumn {
		t.Errorf("Expected column %d, got %d", constants.BulletSpawnColumn, b.Column)
	}

	g := s.BulletGlyph(i)
	if g[0] == 0 {
		t.Error("Expected glyph row 0 lit")
	}
	for r := 1; r < glyph.Rows; r++ {
		if g[r] != 0 {
			t.Errorf("Expected glyph row %d blank, got %#x", r, g[r])
		}
	}
	if s.Events.Fired != i || s.Shots != 1 {
		t.Errorf("Expected fire event and shot count, got fired=%d shots=%d", s.Events.Fired, s.Shots)
	}
}

func TestBulletSpawn(t *testing.T) {
	tests := []struct {
		offset, row, pixelRow int
	}{
		{0, 0, 3},
		{4, 0, 7},
		{5, 1, 0},
		{9, 1, 4},
		{15, 1, 4}, // clamped
	}
	for _, tt := range tests {
		row, pixelRow := BulletSpawn(tt.offset)
		if row != tt.row || pixelRow != tt.pixelRow {
			t.Errorf("offset %d: expected (%d,%d), got (%d,%d)", tt.offset, tt.row, tt.pixelRow, row, pixelRow)
		}
	}
}

// TestFireBulletPoolLimit verifies bullets stop at pool capacity
func TestFireBulletPoolLimit(t *testing.T) {
	s := NewGameState()
	for i := 0; i < constants.MaxBullets; i++ {
		if got, ok := s.FireBullet(); !ok || got != i {
			t.Fatalf("Expected bullet %d to fire, got %d ok=%v", i, got, ok)
		}
	}
	if _, ok := s.FireBullet(); ok {
		t.Error("Expected fire on full pool to fail")
	}
	if s.Shots != constants.MaxBullets {
		t.Errorf("Expected %d shots, got %d", constants.MaxBullets, s.Shots)
	}
}

// TestMoveBulletsDespawn verifies a bullet leaves after the last column
func TestMoveBulletsDespawn(t *testing.T) {
	s := NewGameState()
	s.FireBullet()

	steps := 0
	for s.Bullets[0].Active() {
		s.MoveBullets()
		steps++
		if steps > 100 {
			t.Fatal("Bullet never despawned")
		}
	}
	// Column 1 to 15 is 14 steps; the 15th pushes it past the edge
	if steps != constants.LastColumn {
		t.Errorf("Expected %d steps, got %d", constants.LastColumn, steps)
	}
}

// TestMoveInvadersDespawn verifies the invader reaches column 0 and then leaves
func TestMoveInvadersDespawn(t *testing.T) {
	s := NewGameState()
	s.SpawnInvader()

	for step := 1; step <= constants.InvaderSpawnColumn; step++ {
		s.MoveInvaders()
		if !s.Invaders[0].Active() {
			t.Fatalf("Invader despawned early at step %d", step)
		}
		if want := constants.InvaderSpawnColumn - step; s.Invaders[0].Column != want {
			t.Errorf("step %d: expected column %d, got %d", step, want, s.Invaders[0].Column)
		}
	}
	s.MoveInvaders()
	if s.Invaders[0].Active() {
		t.Error("Expected invader to leave after column 0")
	}
}

func TestMoveSkipsInactive(t *testing.T) {
	s := NewGameState()
	s.MoveBullets()
	s.MoveInvaders()
	if s.ActiveBullets() != 0 || s.ActiveInvaders() != 0 {
		t.Error("Expected moves on empty pools to activate nothing")
	}
}

// TestCheckHitColumns covers both invader halves, a miss and a row mismatch
func TestCheckHitColumns(t *testing.T) {
	tests := []struct {
		name      string
		bullet    Cell
		invader   Cell
		expectHit bool
	}{
		{"Right half", Cell{Column: 5, Row: 0}, Cell{Column: 4, Row: 0}, true},
		{"Left half", Cell{Column: 5, Row: 0}, Cell{Column: 5, Row: 0}, true},
		{"Ahead of invader", Cell{Column: 5, Row: 0}, Cell{Column: 6, Row: 0}, false},
		{"Behind invader", Cell{Column: 5, Row: 0}, Cell{Column: 3, Row: 0}, false},
		{"Row mismatch", Cell{Column: 5, Row: 0}, Cell{Column: 4, Row: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameState()
			s.Bullets[0].Activate(tt.bullet)
			s.Invaders[0].Activate(tt.invader)

			hits := s.CheckHit()
			if (hits == 1) != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %d hits", tt.expectHit, hits)
			}
			if tt.expectHit {
				if s.Bullets[0].Active() || s.Invaders[0].Active() {
					t.Error("Expected both entities inactive after hit")
				}
				h := s.Events.Hits()
				if len(h) != 1 || h[0].BulletCell != tt.bullet || h[0].InvaderCell != tt.invader {
					t.Errorf("Expected hit record with original cells, got %+v", h)
				}
				if s.Kills != 1 {
					t.Errorf("Expected 1 kill, got %d", s.Kills)
				}
			} else if !s.Bullets[0].Active() || !s.Invaders[0].Active() {
				t.Error("Expected both entities to survive a miss")
			}
		})
	}
}

// TestCheckHitOneInvaderPerBullet verifies a bullet is consumed by its first hit
func TestCheckHitOneInvaderPerBullet(t *testing.T) {
	s := NewGameState()
	s.Bullets[0].Activate(Cell{Column: 5, Row: 0})
	s.Invaders[0].Activate(Cell{Column: 4, Row: 0})
	s.Invaders[1].Activate(Cell{Column: 5, Row: 0})

	if hits := s.CheckHit(); hits != 1 {
		t.Fatalf("Expected 1 hit, got %d", hits)
	}
	if s.Invaders[0].Active() {
		t.Error("Expected first invader in scan order to be hit")
	}
	if !s.Invaders[1].Active() {
		t.Error("Expected second invader to survive")
	}
}

func TestCheckHitIgnoresInactive(t *testing.T) {
	s := NewGameState()
	// Stale coordinates on free slots must never collide
	s.Bullets[0].Cell = Cell{Column: 5, Row: 0}
	s.Invaders[0].Cell = Cell{Column: 4, Row: 0}
	s.Bullets[1].Activate(Cell{Column: 5, Row: 0})

	if hits := s.CheckHit(); hits != 0 {
		t.Errorf("Expected no hits against inactive slots, got %d", hits)
	}
}

func TestFrameEventsReset(t *testing.T) {
	s := NewGameState()
	s.Bullets[0].Activate(Cell{Column: 5, Row: 0})
	s.Invaders[0].Activate(Cell{Column: 5, Row: 0})
	s.CheckHit()
	s.FireBullet()

	s.Events.Reset()
	if len(s.Events.Hits()) != 0 || s.Events.Fired != NoSlot || s.Events.Spawned != NoSlot {
		t.Error("Expected reset to clear all events")
	}
}
