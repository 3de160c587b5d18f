package input

// IntentType discriminates what a terminal event asks the game to do
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Joystick deflection
	IntentStickUp     // Up, k, w
	IntentStickDown   // Down, j, s
	IntentStickCenter // Space, 0
)

func (i IntentType) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentResize:
		return "Resize"
	case IntentStickUp:
		return "StickUp"
	case IntentStickDown:
		return "StickDown"
	case IntentStickCenter:
		return "StickCenter"
	default:
		return "Unknown"
	}
}
