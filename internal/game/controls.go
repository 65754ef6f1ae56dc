package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/labyrinth/internal/game/session"
)

// Key bindings.
const (
	KeyForward        sdl.Scancode = sdl.SCANCODE_W
	KeyBackward       sdl.Scancode = sdl.SCANCODE_S
	KeyLeft           sdl.Scancode = sdl.SCANCODE_A
	KeyRight          sdl.Scancode = sdl.SCANCODE_D
	KeySprint         sdl.Scancode = sdl.SCANCODE_LSHIFT
	KeySprintAlt      sdl.Scancode = sdl.SCANCODE_RSHIFT
	KeyNoClip         sdl.Scancode = sdl.SCANCODE_V
	KeyToggleControls sdl.Scancode = sdl.SCANCODE_TAB
	KeyFullscreen     sdl.Scancode = sdl.SCANCODE_F11
	KeyScreenshot     sdl.Scancode = sdl.SCANCODE_F12
	KeyQuit           sdl.Scancode = sdl.SCANCODE_ESCAPE
)

// ControlsHelp lists the bindings shown by the controls overlay.
var ControlsHelp = []string{
	"W A S D   move",
	"Mouse     look",
	"Wheel     zoom",
	"Shift     sprint",
	"V         noclip",
	"Tab       show/hide controls",
	"F11       fullscreen",
	"F12       screenshot",
	"Esc       quit",
}

// KeyReader exposes key state for one frame.
type KeyReader interface {
	Held(sc sdl.Scancode) bool
	Pressed(sc sdl.Scancode) bool
}

// FrameInput maps the frame's key state and mouse motion to a session input.
// dy follows SDL screen orientation and is flipped so that up is positive.
func FrameInput(keys KeyReader, dx, dy, wheel, dt float32) session.FrameInput {
	return session.FrameInput{
		Forward:  keys.Held(KeyForward),
		Backward: keys.Held(KeyBackward),
		Left:     keys.Held(KeyLeft),
		Right:    keys.Held(KeyRight),
		Sprint:   keys.Held(KeySprint) || keys.Held(KeySprintAlt),

		ToggleNoClip:   keys.Pressed(KeyNoClip),
		ToggleControls: keys.Pressed(KeyToggleControls),

		MouseDX: dx,
		MouseDY: -dy,
		Scroll:  wheel,
		Dt:      dt,
	}
}
