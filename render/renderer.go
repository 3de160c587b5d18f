package render

import (
	"log"

	"github.com/lixenwraith/lcd-invaders/constants"
	"github.com/lixenwraith/lcd-invaders/engine"
	"github.com/lixenwraith/lcd-invaders/glyph"
)

// maxDrawn is every cell a frame can occupy besides the player
const maxDrawn = constants.MaxBullets + 2*constants.MaxInvaders

// Renderer runs the erase-then-redraw stage against a Display
// It remembers the cells it drew last frame and blanks all of them before
// drawing the current positions, so a despawned entity never lingers and
// nothing depends on the previous frame's state surviving in GameState.
type Renderer struct {
	display Display

	drawn  [maxDrawn]engine.Cell
	nDrawn int

	playerOffset int
	playerValid  bool
}

// NewRenderer creates a renderer on display
func NewRenderer(display Display) *Renderer {
	return &Renderer{display: display}
}

// Init uploads the fixed invader glyphs and forgets earlier frames
// Call once after the display is initialized.
func (r *Renderer) Init() {
	r.display.DefineGlyph(constants.SlotInvaderLeft, glyph.InvaderLeft)
	r.display.DefineGlyph(constants.SlotInvaderRight, glyph.InvaderRight)
	r.nDrawn = 0
	r.playerValid = false
	log.Printf("renderer: invader glyphs loaded into slots %d,%d", constants.SlotInvaderLeft, constants.SlotInvaderRight)
}

// Render implements engine.FrameRenderer
func (r *Renderer) Render(s *engine.GameState) {
	// ===== ERASE =====
	for _, h := range s.Events.Hits() {
		r.erase(h.BulletCell)
		r.erase(h.InvaderCell)
		r.erase(engine.Cell{Column: h.InvaderCell.Column + 1, Row: h.InvaderCell.Row})
	}
	for i := 0; i < r.nDrawn; i++ {
		r.erase(r.drawn[i])
	}
	r.nDrawn = 0

	// ===== DRAW =====
	if i := s.Events.Fired; i != engine.NoSlot {
		r.display.DefineGlyph(constants.SlotBulletBase+i, s.BulletGlyph(i))
	}

	for i := range s.Bullets {
		if c, ok := s.Bullets[i].Position(); ok {
			r.draw(c, byte(constants.SlotBulletBase+i))
		}
	}

	for i := range s.Invaders {
		c, ok := s.Invaders[i].Position()
		if !ok {
			continue
		}
		r.draw(c, constants.SlotInvaderLeft)
		r.draw(engine.Cell{Column: c.Column + 1, Row: c.Row}, constants.SlotInvaderRight)
	}

	r.drawPlayer(s.PlayerOffset)
}

// drawPlayer is last so the ship stays on top of an invader leaving column 0
func (r *Renderer) drawPlayer(offset int) {
	offset = glyph.ClampShift(offset)
	if !r.playerValid || offset != r.playerOffset {
		top, bottom := glyph.ComposeTopBottom(glyph.Player, offset)
		r.display.DefineGlyph(constants.SlotPlayerTop, top)
		r.display.DefineGlyph(constants.SlotPlayerBottom, bottom)
		r.playerOffset = offset
		r.playerValid = true
	}
	r.display.SetCursor(constants.PlayerColumn, 0)
	r.display.WriteGlyphRef(constants.SlotPlayerTop)
	r.display.SetCursor(constants.PlayerColumn, 1)
	r.display.WriteGlyphRef(constants.SlotPlayerBottom)
}

func (r *Renderer) draw(c engine.Cell, ref byte) {
	if !addressable(c) {
		return
	}
	r.display.SetCursor(c.Column, c.Row)
	r.display.WriteGlyphRef(ref)
	if r.nDrawn < len(r.drawn) {
		r.drawn[r.nDrawn] = c
		r.nDrawn++
	}
}

func (r *Renderer) erase(c engine.Cell) {
	if !addressable(c) {
		return
	}
	r.display.SetCursor(c.Column, c.Row)
	r.display.WriteGlyphRef(glyph.Blank)
}

// addressable reports whether c lies inside a DDRAM line
// Invaders spawn past the visible edge; those cells exist in DDRAM and are
// drawn, anything at or past the line length is not.
func addressable(c engine.Cell) bool {
	return c.Column >= 0 && c.Column < constants.LineLength && c.Row >= 0 && c.Row < constants.GridRows
}
