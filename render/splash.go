package render

import (
	"time"

	"github.com/lixenwraith/lcd-invaders/constants"
)

// Title is the two-line banner shown before the first frame
type Title struct {
	Top, Bottom string

	// Scroll is how many cells the banner slides left after appearing
	Scroll int
	Step   time.Duration
}

// DefaultTitle slides the name in from beyond the right edge
var DefaultTitle = Title{
	Top:    "LCD INVADERS",
	Bottom: "16x2 SHOOTER",
	Scroll: constants.GridColumns,
	Step:   60 * time.Millisecond,
}

// ShowTitle writes the banner just past the visible window and scrolls it
// into view, then restores an unshifted, blank display for the game
// present is called after every step so an emulated panel can repaint.
func ShowTitle(d TextDisplay, t Title, sleep func(time.Duration), present func()) {
	if sleep == nil {
		sleep = time.Sleep
	}
	if present == nil {
		present = func() {}
	}

	d.Clear()
	col := t.Scroll
	if col+len(t.Top) > constants.LineLength || col+len(t.Bottom) > constants.LineLength {
		col = 0
	}
	d.SetCursor(col, 0)
	d.WriteString(t.Top)
	d.SetCursor(col, 1)
	d.WriteString(t.Bottom)
	present()

	for i := 0; i < t.Scroll && col > 0; i++ {
		sleep(t.Step)
		d.ScrollLeft()
		present()
	}

	sleep(t.Step * 10)
	d.Clear()
	present()
}

// ScoreHold is how long the totals stay up before the program exits
const ScoreHold = 2 * time.Second

// ShowScore replaces the playfield with the session totals and leaves them
// on the display; counts wrap at four digits
func ShowScore(d TextDisplay, shots, kills uint32, hold time.Duration, sleep func(time.Duration), present func()) {
	if sleep == nil {
		sleep = time.Sleep
	}
	if present == nil {
		present = func() {}
	}

	d.Clear()
	d.SetCursor(0, 0)
	d.WriteString("SHOTS ")
	d.WriteNumber(uint16(shots % 10000))
	d.SetCursor(0, 1)
	d.WriteString("KILLS ")
	d.WriteNumber(uint16(kills % 10000))
	present()
	sleep(hold)
}
