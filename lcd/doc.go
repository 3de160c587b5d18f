// Package lcd talks to HD44780-compatible character displays over the
// 4-bit parallel interface.
//
// Driver encodes the controller's instruction set (cursor addressing,
// CGRAM glyph upload, clear, shift) into nibble transfers on a Bus. Two
// buses are provided: PinBus toggles real GPIO lines through periph.io and
// Controller is an in-memory model of the chip that decodes the same
// transfers, so a game can run against a terminal rendering of the display
// or against the hardware, or both through TeeBus.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package lcd
