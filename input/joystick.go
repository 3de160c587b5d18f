package input

import "github.com/lixenwraith/lcd-invaders/constants"

// DefaultHoldFrames is how long one key press keeps the stick deflected
const DefaultHoldFrames = 4

// KeyboardJoystick turns key presses into analog stick samples
// Terminals report presses but not releases, so a press deflects the stick
// to full scale for a number of reads, after which it springs back to centre.
// Key auto-repeat keeps refreshing the hold while a key is held down.
type KeyboardJoystick struct {
	value      int
	hold       int
	holdFrames int
}

// NewKeyboardJoystick creates a centred stick; holdFrames < 1 uses the default
func NewKeyboardJoystick(holdFrames int) *KeyboardJoystick {
	if holdFrames < 1 {
		holdFrames = DefaultHoldFrames
	}
	return &KeyboardJoystick{
		value:      constants.AxisCenter,
		holdFrames: holdFrames,
	}
}

// Apply deflects or centres the stick; other intents are ignored
// Pushing up moves the ship up, which is a smaller pixel offset
func (j *KeyboardJoystick) Apply(intent IntentType) {
	switch intent {
	case IntentStickUp:
		j.value = constants.AxisMin
		j.hold = j.holdFrames
	case IntentStickDown:
		j.value = constants.AxisMax
		j.hold = j.holdFrames
	case IntentStickCenter:
		j.value = constants.AxisCenter
		j.hold = 0
	}
}

// ReadAxis returns the current sample and counts down the hold
func (j *KeyboardJoystick) ReadAxis() int {
	v := j.value
	if j.hold > 0 {
		j.hold--
		if j.hold == 0 {
			j.value = constants.AxisCenter
		}
	}
	return v
}
