package lcd

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// EnablePulse is the E high time; the datasheet minimum is 450ns but slow
// modules and long wires need more
const EnablePulse = 50 * time.Microsecond

// PinBus drives the 4-bit interface on six GPIO lines
// RW is expected to be tied low; the controller is never read back.
type PinBus struct {
	RS gpio.PinOut
	E  gpio.PinOut
	DB [4]gpio.PinOut // DB4..DB7

	sleep func(time.Duration)
}

// NewPinBus wires a bus from explicit pins
func NewPinBus(rs, e gpio.PinOut, db [4]gpio.PinOut) (*PinBus, error) {
	if rs == nil || e == nil {
		return nil, fmt.Errorf("pin bus: RS and E are required")
	}
	for i, p := range db {
		if p == nil {
			return nil, fmt.Errorf("pin bus: DB%d is required", i+4)
		}
	}
	b := &PinBus{RS: rs, E: e, DB: db, sleep: time.Sleep}
	if err := e.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("pin bus: E low: %w", err)
	}
	return b, nil
}

// SetSleep replaces the strobe wait, e.g. with a no-op in tests
func (b *PinBus) SetSleep(f func(time.Duration)) {
	if f == nil {
		f = func(time.Duration) {}
	}
	b.sleep = f
}

// WriteNibble sets RS and DB4..DB7 then strobes E; the controller latches
// on the falling edge
func (b *PinBus) WriteNibble(rs bool, nibble byte) error {
	if err := b.RS.Out(gpio.Level(rs)); err != nil {
		return fmt.Errorf("RS: %w", err)
	}
	for i, p := range b.DB {
		if err := p.Out(gpio.Level(nibble&(1<<i) != 0)); err != nil {
			return fmt.Errorf("DB%d: %w", i+4, err)
		}
	}
	if err := b.E.Out(gpio.High); err != nil {
		return fmt.Errorf("E: %w", err)
	}
	b.sleep(EnablePulse)
	if err := b.E.Out(gpio.Low); err != nil {
		return fmt.Errorf("E: %w", err)
	}
	b.sleep(EnablePulse)
	return nil
}

// PinNames lists the GPIO names for RS, E and DB4..DB7
type PinNames struct {
	RS, E string
	DB    [4]string
}

// DefaultPinNames is a common Raspberry Pi wiring (BCM numbering)
var DefaultPinNames = PinNames{RS: "GPIO25", E: "GPIO24", DB: [4]string{"GPIO23", "GPIO17", "GPIO18", "GPIO22"}}

// ParsePinNames reads "RS,E,D4,D5,D6,D7"
func ParsePinNames(s string) (PinNames, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return PinNames{}, fmt.Errorf("pin list %q: want 6 names RS,E,D4,D5,D6,D7, got %d", s, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return PinNames{}, fmt.Errorf("pin list %q: empty name at position %d", s, i+1)
		}
	}
	return PinNames{
		RS: parts[0],
		E:  parts[1],
		DB: [4]string{parts[2], parts[3], parts[4], parts[5]},
	}, nil
}

func (n PinNames) String() string {
	return strings.Join([]string{n.RS, n.E, n.DB[0], n.DB[1], n.DB[2], n.DB[3]}, ",")
}

// OpenPinBus initializes the host drivers and looks the pins up by name
func OpenPinBus(names PinNames) (*PinBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}
	lookup := func(name string) (gpio.PinOut, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio pin %q not found", name)
		}
		return p, nil
	}

	rs, err := lookup(names.RS)
	if err != nil {
		return nil, err
	}
	e, err := lookup(names.E)
	if err != nil {
		return nil, err
	}
	var db [4]gpio.PinOut
	for i, name := range names.DB {
		if db[i], err = lookup(name); err != nil {
			return nil, err
		}
	}
	return NewPinBus(rs, e, db)
}
