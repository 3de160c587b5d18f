package lcd

import "errors"

// Bus moves one 4-bit transfer to the controller
// rs selects the data register (true) or the instruction register (false);
// the nibble is carried on DB4..DB7 in its low four bits
type Bus interface {
	WriteNibble(rs bool, nibble byte) error
}

// TeeBus repeats every transfer on all its buses, for example a physical
// display and the emulator that mirrors it on screen
type TeeBus []Bus

func (t TeeBus) WriteNibble(rs bool, nibble byte) error {
	var errs []error
	for _, b := range t {
		if err := b.WriteNibble(rs, nibble); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
