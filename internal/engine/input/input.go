// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	XRel   int32
	YRel   int32
	Wheel  float32
}

// Input polls SDL once per frame and keeps the key state diff and the
// accumulated mouse motion for that frame.
type Input struct {
	events []Event
	keys   *KeyState

	mouseDX float32
	mouseDY float32
	wheel   float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		keys:   NewKeyState(),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	i.keys.Advance()
	i.mouseDX, i.mouseDY, i.wheel = 0, 0, 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.keys.Set(e.Keysym.Scancode, true)
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.keys.Set(e.Keysym.Scancode, false)
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)
			i.events = append(i.events, Event{Type: EventMouseMove, XRel: e.XRel, YRel: e.YRel})

		case *sdl.MouseWheelEvent:
			i.wheel += float32(e.Y)
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: float32(e.Y)})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Held reports whether a key is down.
func (i *Input) Held(sc sdl.Scancode) bool {
	return i.keys.Held(sc)
}

// Pressed reports whether a key went down since the previous Update.
func (i *Input) Pressed(sc sdl.Scancode) bool {
	return i.keys.Pressed(sc)
}

// MouseDelta returns the relative mouse motion of the last Update in SDL
// screen orientation (positive Y is down).
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}

// Wheel returns the vertical scroll of the last Update.
func (i *Input) Wheel() float32 {
	return i.wheel
}
