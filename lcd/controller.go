package lcd

import (
	"strings"

	"github.com/lixenwraith/lcd-invaders/glyph"
)

// Controller emulates the HD44780 side of the bus: it reassembles nibbles,
// decodes instructions and keeps DDRAM, CGRAM and the display registers.
// It is not safe for concurrent use; the game loop owns it.
type Controller struct {
	fourBit   bool
	pending   bool
	high      byte
	highRS    bool
	ddram     [Rows][LineLength]byte
	cgram     [CGRAMSize]byte
	addr      byte
	inCGRAM   bool
	decr      bool
	autoShift bool
	display   bool
	cursor    bool
	blink     bool
	twoLine   bool
	shift     int
	writes    uint64
}

// NewController returns a controller in its power-on state: 8-bit
// interface, display off, DDRAM blank
func NewController() *Controller {
	c := &Controller{}
	c.Reset()
	return c
}

// Reset returns to the power-on state
func (c *Controller) Reset() {
	*c = Controller{}
	c.clearDDRAM()
}

func (c *Controller) clearDDRAM() {
	for r := range c.ddram {
		for i := range c.ddram[r] {
			c.ddram[r][i] = glyph.Blank
		}
	}
}

// WriteNibble implements Bus
// In 8-bit mode only DB4..DB7 are wired, so each nibble is a whole
// transfer with the low data lines read as zero.
func (c *Controller) WriteNibble(rs bool, nibble byte) error {
	nibble &= 0x0F
	if !c.fourBit {
		c.exec(rs, nibble<<4)
		return nil
	}
	if !c.pending {
		c.pending = true
		c.high = nibble
		c.highRS = rs
		return nil
	}
	c.pending = false
	c.exec(c.highRS, c.high<<4|nibble)
	return nil
}

func (c *Controller) exec(rs bool, b byte) {
	c.writes++
	if rs {
		c.writeData(b)
		return
	}

	switch {
	case b&CmdSetDDRAM != 0:
		c.inCGRAM = false
		c.addr = b & 0x7F
	case b&CmdSetCGRAM != 0:
		c.inCGRAM = true
		c.addr = b & 0x3F
	case b&CmdFunctionSet != 0:
		// A mode change resets the nibble phase
		c.fourBit = b&Func8Bit == 0
		c.pending = false
		c.twoLine = b&Func2Line != 0
	case b&CmdShift != 0:
		if b&ShiftDisplay != 0 {
			if b&ShiftRight != 0 {
				c.shiftDisplay(-1)
			} else {
				c.shiftDisplay(1)
			}
		} else {
			c.step(b&ShiftRight == 0)
		}
	case b&CmdDisplayCtrl != 0:
		c.display = b&DisplayOn != 0
		c.cursor = b&CursorOn != 0
		c.blink = b&BlinkOn != 0
	case b&CmdEntryMode != 0:
		c.decr = b&EntryIncrement == 0
		c.autoShift = b&EntryShift != 0
	case b&CmdHome != 0:
		c.inCGRAM = false
		c.addr = 0
		c.shift = 0
	case b&CmdClear != 0:
		c.clearDDRAM()
		c.inCGRAM = false
		c.addr = 0
		c.shift = 0
		c.decr = false
	}
}

func (c *Controller) writeData(b byte) {
	if c.inCGRAM {
		c.cgram[c.addr&(CGRAMSize-1)] = b
		if c.decr {
			c.addr = (c.addr - 1) & (CGRAMSize - 1)
		} else {
			c.addr = (c.addr + 1) & (CGRAMSize - 1)
		}
		return
	}

	col, row := c.cell(c.addr)
	c.ddram[row][col] = b
	c.step(c.decr)
	if c.autoShift {
		if c.decr {
			c.shiftDisplay(-1)
		} else {
			c.shiftDisplay(1)
		}
	}
}

// cell maps a DDRAM address onto the two 40-byte lines
// Addresses past the end of a line alias back into it.
func (c *Controller) cell(addr byte) (col, row int) {
	if addr >= Line2Offset {
		row = 1
		addr -= Line2Offset
	}
	return int(addr) % LineLength, row
}

// step moves the DDRAM address one cell, wrapping from the end of line 1
// to the start of line 2 and back
func (c *Controller) step(back bool) {
	col, row := c.cell(c.addr)
	if back {
		col--
		if col < 0 {
			col = LineLength - 1
			row ^= 1
		}
	} else {
		col++
		if col >= LineLength {
			col = 0
			row ^= 1
		}
	}
	c.addr = ddramAddress(col, row)
}

func (c *Controller) shiftDisplay(n int) {
	c.shift = ((c.shift+n)%LineLength + LineLength) % LineLength
}

// ===== ACCESSORS =====

// CharAt returns the DDRAM code stored at a line position (0-39)
func (c *Controller) CharAt(column, row int) byte {
	if row < 0 || row >= Rows || column < 0 || column >= LineLength {
		return glyph.Blank
	}
	return c.ddram[row][column]
}

// VisibleAt returns the code shown in a visible cell, honouring the display shift
func (c *Controller) VisibleAt(column, row int) byte {
	if column < 0 || column >= Columns {
		return glyph.Blank
	}
	return c.CharAt((column+c.shift)%LineLength, row)
}

// Glyph returns the bitmap a character code displays; codes 0-15 select
// the eight CGRAM slots, anything else has no programmable bitmap
func (c *Controller) Glyph(code byte) (glyph.Bitmap, bool) {
	var b glyph.Bitmap
	if code >= 16 {
		return b, false
	}
	base := int(code&7) * glyph.Rows
	copy(b[:], c.cgram[base:base+glyph.Rows])
	return b.Masked(), true
}

// DisplayOn reports whether the display is enabled
func (c *Controller) DisplayOn() bool { return c.display }

// CursorOn reports whether the underline cursor is enabled
func (c *Controller) CursorOn() bool { return c.cursor }

// FourBit reports whether the 4-bit interface is active
func (c *Controller) FourBit() bool { return c.fourBit }

// TwoLine reports whether two-line mode is set
func (c *Controller) TwoLine() bool { return c.twoLine }

// Shift returns the display shift in cells
func (c *Controller) Shift() int { return c.shift }

// Address returns the address counter and whether it points into CGRAM
func (c *Controller) Address() (byte, bool) { return c.addr, c.inCGRAM }

// Writes returns the number of decoded byte transfers
func (c *Controller) Writes() uint64 { return c.writes }

// String renders the visible window, custom glyph codes shown as digits
func (c *Controller) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.WriteByte('|')
		for col := 0; col < Columns; col++ {
			code := c.VisibleAt(col, row)
			switch {
			case code < 8:
				sb.WriteByte('0' + code)
			case code < 16:
				sb.WriteByte('0' + code - 8)
			case code < 0x20 || code > 0x7E:
				sb.WriteByte('?')
			default:
				sb.WriteByte(code)
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
