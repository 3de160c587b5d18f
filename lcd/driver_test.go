package lcd

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/lcd-invaders/glyph"
)

func newTestDriver() (*Driver, *RecordingBus) {
	bus := &RecordingBus{}
	d := NewDriver(bus)
	d.SetSleep(nil)
	return d, bus
}

func commands(ws []Write) []byte {
	var out []byte
	for _, w := range ws {
		if !w.RS {
			out = append(out, w.Value)
		}
	}
	return out
}

func TestDriverInitSequence(t *testing.T) {
	d, bus := newTestDriver()
	if err := d.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	want := []byte{0x33, 0x32, 0x28, 0x0C, 0x06, 0x01}
	got := commands(bus.Writes())
	if len(got) != len(want) {
		t.Fatalf("Expected %d commands, got %d (% x)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Command %d: expected %#02x, got %#02x", i, want[i], got[i])
		}
	}
}

func TestDriverInitWaits(t *testing.T) {
	bus := &RecordingBus{}
	d := NewDriver(bus)
	var total time.Duration
	d.SetSleep(func(p time.Duration) { total += p })
	if err := d.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if total < PowerOnDelay+6*InitStepDelay {
		t.Errorf("Expected at least %v of settle time, got %v", PowerOnDelay+6*InitStepDelay, total)
	}
}

func TestDriverNibbleOrder(t *testing.T) {
	d, bus := newTestDriver()
	d.WriteData(0xA5)

	if len(bus.Transfers) != 2 {
		t.Fatalf("Expected 2 transfers, got %d", len(bus.Transfers))
	}
	if bus.Transfers[0] != (Transfer{RS: true, Nibble: 0xA}) {
		t.Errorf("Expected high nibble first, got %+v", bus.Transfers[0])
	}
	if bus.Transfers[1] != (Transfer{RS: true, Nibble: 0x5}) {
		t.Errorf("Expected low nibble second, got %+v", bus.Transfers[1])
	}
}

func TestDriverSetCursor(t *testing.T) {
	tests := []struct {
		col, row int
		want     byte
	}{
		{0, 0, 0x80},
		{15, 0, 0x8F},
		{0, 1, 0xC0},
		{7, 1, 0xC7},
		{17, 1, 0xD1},
	}
	for _, tt := range tests {
		d, bus := newTestDriver()
		d.SetCursor(tt.col, tt.row)
		ws := bus.Writes()
		if len(ws) != 1 || ws[0].RS || ws[0].Value != tt.want {
			t.Errorf("SetCursor(%d,%d): expected command %#02x, got %+v", tt.col, tt.row, tt.want, ws)
		}
	}
}

func TestDriverDefineGlyph(t *testing.T) {
	d, bus := newTestDriver()
	d.DefineGlyph(6, glyph.InvaderLeft)

	ws := bus.Writes()
	if len(ws) != 9 {
		t.Fatalf("Expected 9 writes, got %d", len(ws))
	}
	if ws[0].RS || ws[0].Value != 0x40|6<<3 {
		t.Errorf("Expected CGRAM address %#02x, got %+v", 0x40|6<<3, ws[0])
	}
	for i, row := range glyph.InvaderLeft {
		if !ws[i+1].RS || ws[i+1].Value != row {
			t.Errorf("Row %d: expected data %#02x, got %+v", i, row, ws[i+1])
		}
	}
}

func TestDriverDefineGlyphMasksSlot(t *testing.T) {
	d, bus := newTestDriver()
	d.DefineGlyph(9, glyph.Player)
	if ws := bus.Writes(); ws[0].Value != 0x40|1<<3 {
		t.Errorf("Expected slot 9 to alias slot 1, got %#02x", ws[0].Value)
	}
}

func TestDriverClearPos(t *testing.T) {
	d, bus := newTestDriver()
	d.ClearPos(3, 1)

	ws := bus.Writes()
	if len(ws) != 2 {
		t.Fatalf("Expected 2 writes, got %d", len(ws))
	}
	if ws[0].Value != 0xC3 || !ws[1].RS || ws[1].Value != ' ' {
		t.Errorf("Expected cursor 0xc3 then space, got %+v", ws)
	}
}

func TestDriverScroll(t *testing.T) {
	d, bus := newTestDriver()
	d.ScrollLeft()
	d.ScrollRight()
	got := commands(bus.Writes())
	if len(got) != 2 || got[0] != 0x18 || got[1] != 0x1C {
		t.Errorf("Expected 0x18 0x1c, got % x", got)
	}
}

func TestDriverStickyError(t *testing.T) {
	d, bus := newTestDriver()
	boom := errors.New("bus down")
	bus.Fail = boom

	d.WriteCmd(CmdClear)
	if !errors.Is(d.Err(), boom) {
		t.Fatalf("Expected sticky bus error, got %v", d.Err())
	}

	bus.Fail = nil
	d.WriteData('x')
	if len(bus.Transfers) != 0 {
		t.Errorf("Expected no transfers after failure, got %d", len(bus.Transfers))
	}
	if err := d.Init(); !errors.Is(err, boom) {
		t.Errorf("Expected Init to report the sticky error, got %v", err)
	}
}
