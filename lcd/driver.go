package lcd

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/lcd-invaders/glyph"
)

// Settle times from the datasheet, rounded up
const (
	PowerOnDelay  = 50 * time.Millisecond
	InitStepDelay = 5 * time.Millisecond
	ClearDelay    = 2 * time.Millisecond
)

// Driver speaks the HD44780 instruction set over a 4-bit Bus
// Write errors are sticky: after the first failure every call is a no-op
// and Err reports the failure, so drawing code stays free of error checks.
type Driver struct {
	bus   Bus
	sleep func(time.Duration)
	err   error
}

// NewDriver creates a driver on bus; call Init before anything else
func NewDriver(bus Bus) *Driver {
	return &Driver{bus: bus, sleep: time.Sleep}
}

// SetSleep replaces the settle-time wait, e.g. with a no-op in tests
func (d *Driver) SetSleep(f func(time.Duration)) {
	if f == nil {
		f = func(time.Duration) {}
	}
	d.sleep = f
}

// Init brings the controller from power-on into 4-bit, two-line mode with
// the display on, cursor hidden, left-to-right entry and an empty screen
func (d *Driver) Init() error {
	d.sleep(PowerOnDelay)

	// Three 8-bit function sets resynchronise the nibble phase, then the
	// fourth switches the interface to 4 bits
	d.WriteCmd(0x33)
	d.sleep(InitStepDelay)
	d.WriteCmd(0x32)
	d.sleep(InitStepDelay)

	d.WriteCmd(CmdFunctionSet | Func2Line)
	d.sleep(InitStepDelay)
	d.WriteCmd(CmdDisplayCtrl | DisplayOn)
	d.sleep(InitStepDelay)
	d.WriteCmd(CmdEntryMode | EntryIncrement)
	d.sleep(InitStepDelay)
	d.WriteCmd(CmdClear)
	d.sleep(InitStepDelay)

	if d.err != nil {
		return fmt.Errorf("lcd init: %w", d.err)
	}
	log.Printf("lcd initialized")
	return nil
}

// Err returns the first bus failure
func (d *Driver) Err() error {
	return d.err
}

// WriteCmd sends an instruction byte
func (d *Driver) WriteCmd(cmd byte) {
	d.write(false, cmd)
}

// WriteData sends a data byte to the current DDRAM or CGRAM address
func (d *Driver) WriteData(data byte) {
	d.write(true, data)
}

func (d *Driver) write(rs bool, b byte) {
	if d.err != nil {
		return
	}
	if err := d.bus.WriteNibble(rs, b>>4); err != nil {
		d.err = fmt.Errorf("lcd write %#02x: %w", b, err)
		return
	}
	if err := d.bus.WriteNibble(rs, b&0x0F); err != nil {
		d.err = fmt.Errorf("lcd write %#02x: %w", b, err)
	}
}

// SetCursor moves the DDRAM address to a grid cell
func (d *Driver) SetCursor(column, row int) {
	d.WriteCmd(CmdSetDDRAM | ddramAddress(column, row))
}

// WriteGlyphRef writes a character code at the cursor; codes 0-7 show the
// programmable glyphs, glyph.Blank clears the cell
func (d *Driver) WriteGlyphRef(ref byte) {
	d.WriteData(ref)
}

// DefineGlyph uploads bitmap into CGRAM slot (masked to 0-7)
// Cells showing the slot change immediately. The address counter is left
// in CGRAM, so callers set the cursor before writing characters again.
func (d *Driver) DefineGlyph(slot int, bitmap glyph.Bitmap) {
	slot &= glyph.SlotCount - 1
	d.WriteCmd(CmdSetCGRAM | byte(slot<<3))
	for _, row := range bitmap {
		d.WriteData(row)
	}
}

// ClearPos blanks one cell
func (d *Driver) ClearPos(column, row int) {
	d.SetCursor(column, row)
	d.WriteData(glyph.Blank)
}

// Clear blanks the display and homes the cursor
func (d *Driver) Clear() {
	d.WriteCmd(CmdClear)
	d.sleep(ClearDelay)
}

// Home moves the cursor to (0,0) and undoes any display shift
func (d *Driver) Home() {
	d.WriteCmd(CmdHome)
	d.sleep(ClearDelay)
}

// WriteString writes s from the cursor onward, one byte per cell
func (d *Driver) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		d.WriteData(s[i])
	}
}

// WriteNumber writes n as four zero-padded digits
func (d *Driver) WriteNumber(n uint16) {
	d.WriteString(fmt.Sprintf("%04d", n%10000))
}

// ScrollLeft moves the whole display content one cell left
func (d *Driver) ScrollLeft() {
	d.WriteCmd(CmdShift | ShiftDisplay)
}

// ScrollRight moves the whole display content one cell right
func (d *Driver) ScrollRight() {
	d.WriteCmd(CmdShift | ShiftDisplay | ShiftRight)
}
