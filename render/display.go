package render

import "github.com/lixenwraith/lcd-invaders/glyph"

// Display is the drawing surface of a character LCD
// lcd.Driver implements it; tests use a recording fake.
type Display interface {
	SetCursor(column, row int)
	WriteGlyphRef(ref byte)
	DefineGlyph(slot int, bitmap glyph.Bitmap)
}

// TextDisplay adds the text and shift instructions used by the title and
// score screens
type TextDisplay interface {
	Display
	Clear()
	Home()
	WriteString(s string)
	WriteNumber(n uint16)
	ScrollLeft()
	ScrollRight()
}
