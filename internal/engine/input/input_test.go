package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{
			name:   "quit",
			event:  &sdl.QuitEvent{Type: sdl.QUIT},
			want:   Event{Type: EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 320, Data2: 240},
			want:   Event{Type: EventWindowResize, Width: 320, Height: 240},
			wantOK: true,
		},
		{
			name:   "window moved",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
			wantOK: false,
		},
		{
			name:   "key down",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			want:   Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE},
			wantOK: true,
		},
		{
			name:   "key repeat",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			wantOK: false,
		},
		{
			name:   "key up",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestAction(t *testing.T) {
	in := New()

	tests := []struct {
		key  sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_ESCAPE, ActionQuit},
		{sdl.SCANCODE_SPACE, ActionToggleWave},
		{sdl.SCANCODE_B, ActionToggleBorder},
		{sdl.SCANCODE_UP, ActionLevelUp},
		{sdl.SCANCODE_DOWN, ActionLevelDown},
		{sdl.SCANCODE_P, ActionTogglePause},
		{sdl.SCANCODE_S, ActionScreenshot},
		{sdl.SCANCODE_Q, ActionNone},
	}
	for _, tt := range tests {
		got := in.Action(Event{Type: EventKeyDown, Key: tt.key})
		if got != tt.want {
			t.Errorf("key %d: expected %v, got %v", tt.key, tt.want, got)
		}
	}

	if got := in.Action(Event{Type: EventWindowResize, Key: sdl.SCANCODE_ESCAPE}); got != ActionNone {
		t.Errorf("expected non-key events to map to none, got %v", got)
	}
}
