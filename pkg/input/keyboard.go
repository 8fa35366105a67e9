package input

import (
	"github.com/eiannone/keyboard"

	"github.com/trytobebee/snake_term/pkg/game"
)

// Event is the closed set of inputs the game reacts to. Raw key codes
// never leave this package.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventPause
	EventRestart
	EventUp
	EventDown
	EventLeft
	EventRight
)

// KeyboardHandler reads raw key events and feeds translated Events into
// a channel.
type KeyboardHandler struct {
	events chan Event
}

// NewKeyboardHandler creates a keyboard input handler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		events: make(chan Event, 16),
	}
}

// Start opens the keyboard and begins translating key presses.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			if ev := translate(char, key); ev != EventNone {
				h.events <- ev
			}
		}
	}()

	return nil
}

// Stop closes the keyboard.
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Events returns the translated event channel.
func (h *KeyboardHandler) Events() <-chan Event {
	return h.events
}

// translate maps a raw key press to an Event. Arrow keys and WASD steer,
// q/Esc/Ctrl+C quit, p/space toggle pause, r restarts.
func translate(char rune, key keyboard.Key) Event {
	switch key {
	case keyboard.KeyArrowUp:
		return EventUp
	case keyboard.KeyArrowDown:
		return EventDown
	case keyboard.KeyArrowLeft:
		return EventLeft
	case keyboard.KeyArrowRight:
		return EventRight
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return EventQuit
	case keyboard.KeySpace:
		return EventPause
	}

	switch char {
	case 'w', 'W':
		return EventUp
	case 's', 'S':
		return EventDown
	case 'a', 'A':
		return EventLeft
	case 'd', 'D':
		return EventRight
	case 'q', 'Q':
		return EventQuit
	case 'p', 'P':
		return EventPause
	case 'r', 'R':
		return EventRestart
	}

	return EventNone
}

// Direction converts a direction event to a game.Direction. The second
// return is false for non-direction events.
func Direction(ev Event) (game.Direction, bool) {
	switch ev {
	case EventUp:
		return game.DirUp, true
	case EventDown:
		return game.DirDown, true
	case EventLeft:
		return game.DirLeft, true
	case EventRight:
		return game.DirRight, true
	}
	return 0, false
}
