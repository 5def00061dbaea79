// Package input translates SDL2 events into widget commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Action is a host command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleWave
	ActionToggleBorder
	ActionLevelUp
	ActionLevelDown
	ActionTogglePause
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionToggleWave:
		return "toggle-wave"
	case ActionToggleBorder:
		return "toggle-border"
	case ActionLevelUp:
		return "level-up"
	case ActionLevelDown:
		return "level-down"
	case ActionTogglePause:
		return "toggle-pause"
	case ActionScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// DefaultBindings maps keys to actions.
var DefaultBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_SPACE:  ActionToggleWave,
	sdl.SCANCODE_B:      ActionToggleBorder,
	sdl.SCANCODE_UP:     ActionLevelUp,
	sdl.SCANCODE_DOWN:   ActionLevelDown,
	sdl.SCANCODE_P:      ActionTogglePause,
	sdl.SCANCODE_S:      ActionScreenshot,
}

// Input handles all input processing.
type Input struct {
	events   []Event
	bindings map[sdl.Scancode]Action
}

// New creates a new input handler using DefaultBindings.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: DefaultBindings,
	}
}

// Update polls SDL events and converts them.
// Returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Translate converts a single SDL event. Events the widget host does not
// care about report false.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Action returns the action bound to a key press event.
func (i *Input) Action(e Event) Action {
	if e.Type != EventKeyDown {
		return ActionNone
	}
	return i.bindings[e.Key]
}
