// Package terminal shows an emulated character LCD in a tcell screen.
//
// Features:
//   - Pixel view: every 5x8 character cell drawn with half blocks, two
//     LCD pixel rows per terminal row, in backlight colours
//   - Text view for small terminals: one terminal cell per LCD cell
//   - Status line with frame counter and session totals
//   - Emergency reset of the terminal after a crash
package terminal
