package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lcd-invaders/engine"
)

// DefaultQueueSize bounds the events buffered between two frames
const DefaultQueueSize = 64

// EventSource is the blocking half of a tcell screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Handlers receive the intents that are not stick movements
// Nil handlers are skipped.
type Handlers struct {
	Quit       func()
	ToggleMute func()
	Resize     func()
}

// EventPump moves terminal events onto the game loop
// Poll runs on its own goroutine and only sends on the channel; Update runs
// as the first system of a frame and applies everything queued since the
// previous frame, so the joystick and handlers are only touched by the loop.
type EventPump struct {
	events   chan tcell.Event
	joystick *KeyboardJoystick
	handlers Handlers
}

// NewEventPump creates a pump feeding joystick; size < 1 uses the default
func NewEventPump(joystick *KeyboardJoystick, handlers Handlers, size int) *EventPump {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &EventPump{
		events:   make(chan tcell.Event, size),
		joystick: joystick,
		handlers: handlers,
	}
}

// Poll reads src until it returns nil (screen finalized)
// Events arriving while the queue is full are dropped.
func (p *EventPump) Poll(src EventSource) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		p.Push(ev)
	}
}

// Push queues one event without blocking; returns false if it was dropped
func (p *EventPump) Push(ev tcell.Event) bool {
	select {
	case p.events <- ev:
		return true
	default:
		return false
	}
}

// Update implements engine.System
func (p *EventPump) Update(s *engine.GameState) {
	for {
		select {
		case ev := <-p.events:
			p.apply(Classify(ev))
		default:
			return
		}
	}
}

func (p *EventPump) apply(intent IntentType) {
	switch intent {
	case IntentStickUp, IntentStickDown, IntentStickCenter:
		if p.joystick != nil {
			p.joystick.Apply(intent)
		}
	case IntentQuit:
		log.Printf("input: quit requested")
		call(p.handlers.Quit)
	case IntentToggleMute:
		call(p.handlers.ToggleMute)
	case IntentResize:
		call(p.handlers.Resize)
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}
