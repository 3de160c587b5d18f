package lcd

// Instruction set
const (
	CmdClear       = 0x01
	CmdHome        = 0x02
	CmdEntryMode   = 0x04
	CmdDisplayCtrl = 0x08
	CmdShift       = 0x10
	CmdFunctionSet = 0x20
	CmdSetCGRAM    = 0x40
	CmdSetDDRAM    = 0x80
)

// Entry mode flags
const (
	EntryIncrement = 0x02
	EntryShift     = 0x01
)

// Display control flags
const (
	DisplayOn = 0x04
	CursorOn  = 0x02
	BlinkOn   = 0x01
)

// Cursor/display shift flags
const (
	ShiftDisplay = 0x08
	ShiftRight   = 0x04
)

// Function set flags
const (
	Func8Bit  = 0x10
	Func2Line = 0x08
	Func5x10  = 0x04
)

// Geometry of a 16x2 module
const (
	// Columns is the visible width
	Columns = 16

	// Rows is the number of lines
	Rows = 2

	// LineLength is the DDRAM size of one line in two-line mode
	LineLength = 40

	// Line2Offset is the DDRAM address of the first cell of line 2
	Line2Offset = 0x40

	// CGRAMSize is eight glyphs of eight rows
	CGRAMSize = 64
)

// ddramAddress returns the DDRAM address of a grid cell
func ddramAddress(column, row int) byte {
	addr := byte(column)
	if row > 0 {
		addr += Line2Offset
	}
	return addr & 0x7F
}
