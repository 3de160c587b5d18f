package input

import "github.com/gdamore/tcell/v2"

// keyTable maps special keys to intents
var keyTable = map[tcell.Key]IntentType{
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
	tcell.KeyUp:     IntentStickUp,
	tcell.KeyDown:   IntentStickDown,
}

// runeTable maps printable keys to intents
var runeTable = map[rune]IntentType{
	'q': IntentQuit,
	'm': IntentToggleMute,
	'k': IntentStickUp,
	'w': IntentStickUp,
	'j': IntentStickDown,
	's': IntentStickDown,
	' ': IntentStickCenter,
	'0': IntentStickCenter,
}

// Classify translates a terminal event into an intent
func Classify(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return runeTable[ev.Rune()]
		}
		return keyTable[ev.Key()]
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
