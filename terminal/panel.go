package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lcd-invaders/engine"
	"github.com/lixenwraith/lcd-invaders/glyph"
	"github.com/lixenwraith/lcd-invaders/lcd"
)

// Pixel view geometry
const (
	cellWidth  = glyph.Columns  // terminal columns per LCD cell
	cellHeight = glyph.Rows / 2 // terminal rows per LCD cell (half blocks)
	cellGap    = 1              // blank columns/rows between LCD cells
	border     = 1              // frame around the glass
	statusRows = 1
)

// PixelWidth and PixelHeight are the terminal size the pixel view needs
const (
	PixelWidth  = lcd.Columns*(cellWidth+cellGap) - cellGap + 2*border
	PixelHeight = lcd.Rows*(cellHeight+cellGap) - cellGap + 2*border + statusRows
)

// TextWidth and TextHeight are the terminal size the text view needs
const (
	TextWidth  = lcd.Columns + 2*border
	TextHeight = lcd.Rows + 2*border + statusRows
)

// Colours of a green STN panel
var (
	colorBacklight = tcell.NewRGBColor(140, 180, 40)
	colorPixel     = tcell.NewRGBColor(30, 50, 20)
	colorGhost     = tcell.NewRGBColor(125, 165, 35)
	colorFrame     = tcell.ColorDarkGray
	colorStatus    = tcell.ColorSilver
)

// Runes approximate each custom glyph slot in the text view
var defaultTextRunes = [glyph.SlotCount]rune{'>', '>', '-', '-', '-', '-', '<', ']'}

// Panel draws a Controller's visible window into a screen
// Not safe for concurrent use; the game loop calls Render once per frame.
type Panel struct {
	screen tcell.Screen
	ctrl   *lcd.Controller

	textRunes [glyph.SlotCount]rune
	muted     bool
	status    string
}

// NewPanel creates a panel showing ctrl on screen
func NewPanel(screen tcell.Screen, ctrl *lcd.Controller) *Panel {
	return &Panel{
		screen:    screen,
		ctrl:      ctrl,
		textRunes: defaultTextRunes,
	}
}

// SetMuted updates the sound indicator on the status line
func (p *Panel) SetMuted(muted bool) {
	p.muted = muted
}

// Render implements engine.FrameRenderer
func (p *Panel) Render(s *engine.GameState) {
	p.status = fmt.Sprintf("frame %05d  shots %d  kills %d", s.Frame, s.Shots, s.Kills)
	p.Present()
}

// Present repaints the panel with the last status line
func (p *Panel) Present() {
	p.Draw()
	p.screen.Show()
}

// Resize forces a full repaint after the terminal size changed
func (p *Panel) Resize() {
	p.screen.Sync()
	p.Present()
}

// Draw fills the screen buffer without showing it
func (p *Panel) Draw() {
	p.screen.Clear()
	w, h := p.screen.Size()

	switch {
	case w >= PixelWidth && h >= PixelHeight:
		p.drawPixels(w, h)
	case w >= TextWidth && h >= TextHeight:
		p.drawText(w, h)
	default:
		drawString(p.screen, 0, 0, "LCD: terminal too small", tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
}

// origin centers a box of the given size
func origin(w, h, boxW, boxH int) (int, int) {
	return (w - boxW) / 2, (h - boxH) / 2
}

func (p *Panel) drawPixels(w, h int) {
	x0, y0 := origin(w, h, PixelWidth, PixelHeight)
	glassW := PixelWidth - 2*border
	glassH := PixelHeight - 2*border - statusRows
	drawFrame(p.screen, x0, y0, glassW+2, glassH+2)

	glass := tcell.StyleDefault.Background(colorBacklight)
	for y := 0; y < glassH; y++ {
		for x := 0; x < glassW; x++ {
			p.screen.SetContent(x0+border+x, y0+border+y, ' ', nil, glass)
		}
	}

	for row := 0; row < lcd.Rows; row++ {
		for col := 0; col < lcd.Columns; col++ {
			cx := x0 + border + col*(cellWidth+cellGap)
			cy := y0 + border + row*(cellHeight+cellGap)
			p.drawCell(cx, cy, p.ctrl.VisibleAt(col, row))
		}
	}

	p.drawStatus(x0, y0+PixelHeight-statusRows, PixelWidth)
}

// drawCell paints one 5x8 character as 5x4 half blocks
func (p *Panel) drawCell(x, y int, code byte) {
	bitmap, custom := p.ctrl.Glyph(code)
	on := p.ctrl.DisplayOn()

	for r := 0; r < cellHeight; r++ {
		for c := 0; c < cellWidth; c++ {
			top := colorGhost
			bottom := colorGhost
			if on && custom {
				if bitmap.Pixel(c, 2*r) {
					top = colorPixel
				}
				if bitmap.Pixel(c, 2*r+1) {
					bottom = colorPixel
				}
			}
			p.screen.SetContent(x+c, y+r, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	// No character ROM: plain text is shown as a single rune in the cell
	if on && !custom && code != glyph.Blank {
		style := tcell.StyleDefault.Foreground(colorPixel).Background(colorGhost).Bold(true)
		p.screen.SetContent(x+cellWidth/2, y+cellHeight/2-1, rune(code), nil, style)
	}
}

func (p *Panel) drawText(w, h int) {
	x0, y0 := origin(w, h, TextWidth, TextHeight)
	drawFrame(p.screen, x0, y0, TextWidth, TextHeight-statusRows)

	style := tcell.StyleDefault.Foreground(colorPixel).Background(colorBacklight)
	for row := 0; row < lcd.Rows; row++ {
		for col := 0; col < lcd.Columns; col++ {
			r := ' '
			if p.ctrl.DisplayOn() {
				r = p.textRune(p.ctrl.VisibleAt(col, row))
			}
			p.screen.SetContent(x0+border+col, y0+border+row, r, nil, style)
		}
	}

	p.drawStatus(x0, y0+TextHeight-statusRows, w-x0)
}

// textRune maps a character code to one rune; custom glyphs that are
// blank show as space
func (p *Panel) textRune(code byte) rune {
	if bitmap, ok := p.ctrl.Glyph(code); ok {
		if bitmap == (glyph.Bitmap{}) {
			return ' '
		}
		return p.textRunes[code&7]
	}
	if code < 0x20 || code > 0x7E {
		return '?'
	}
	return rune(code)
}

func (p *Panel) drawStatus(x, y, width int) {
	text := p.status
	if p.muted {
		text += "  [muted]"
	}
	if len(text) > width {
		text = text[:width]
	}
	drawString(p.screen, x, y, text, tcell.StyleDefault.Foreground(colorStatus))
}

func drawFrame(s tcell.Screen, x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(colorFrame)
	for i := 1; i < w-1; i++ {
		s.SetContent(x+i, y, '─', nil, style)
		s.SetContent(x+i, y+h-1, '─', nil, style)
	}
	for j := 1; j < h-1; j++ {
		s.SetContent(x, y+j, '│', nil, style)
		s.SetContent(x+w-1, y+j, '│', nil, style)
	}
	s.SetContent(x, y, '┌', nil, style)
	s.SetContent(x+w-1, y, '┐', nil, style)
	s.SetContent(x, y+h-1, '└', nil, style)
	s.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
