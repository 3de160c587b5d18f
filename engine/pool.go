package engine

// SlotState tags a pool entry as free or in use
type SlotState uint8

const (
	// SlotInactive is the zero value so freshly allocated pools start empty
	SlotInactive SlotState = iota
	SlotActive
)

func (s SlotState) String() string {
	switch s {
	case SlotInactive:
		return "Inactive"
	case SlotActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Cell is a position on the character grid
type Cell struct {
	Column int
	Row    int
}

// Slot is one entry of a fixed-capacity entity pool
type Slot struct {
	State SlotState
	Cell
}

// Active reports whether the slot holds a live entity
func (s Slot) Active() bool {
	return s.State == SlotActive
}

// Position returns the cell of a live entity; ok is false for a free slot
func (s Slot) Position() (c Cell, ok bool) {
	if s.State != SlotActive {
		return Cell{}, false
	}
	return s.Cell, true
}

// Activate marks the slot live at c
func (s *Slot) Activate(c Cell) {
	s.State = SlotActive
	s.Cell = c
}

// Deactivate frees the slot
func (s *Slot) Deactivate() {
	*s = Slot{}
}

// Bullet travels right from the player; it owns glyph slot SlotBulletBase+index
type Bullet struct {
	Slot
	// PixelRow is the lit row inside the bullet's glyph, fixed at fire time
	PixelRow int
}

// Invader travels left and covers Column and Column+1
type Invader struct {
	Slot
}

// Covers reports whether the invader's two-cell hitbox contains c
func (v Invader) Covers(c Cell) bool {
	if !v.Active() || v.Row != c.Row {
		return false
	}
	return c.Column == v.Column || c.Column == v.Column+1
}

type pooled interface {
	Active() bool
}

// firstInactive returns the lowest free index, or -1 when the pool is full
func firstInactive[T pooled](pool []T) int {
	for i := range pool {
		if !pool[i].Active() {
			return i
		}
	}
	return -1
}

// countActive returns the number of live entries
func countActive[T pooled](pool []T) int {
	n := 0
	for i := range pool {
		if pool[i].Active() {
			n++
		}
	}
	return n
}
