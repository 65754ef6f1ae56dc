package input

import "github.com/veandco/go-sdl2/sdl"

// KeyState tracks which keys are held now and which were held at the
// previous frame boundary, so edge events can be derived once per frame.
type KeyState struct {
	current  map[sdl.Scancode]bool
	previous map[sdl.Scancode]bool
}

// NewKeyState returns a state with no keys held.
func NewKeyState() *KeyState {
	return &KeyState{
		current:  make(map[sdl.Scancode]bool),
		previous: make(map[sdl.Scancode]bool),
	}
}

// Advance starts a new frame: the current state becomes the previous one.
func (k *KeyState) Advance() {
	clear(k.previous)
	for sc, down := range k.current {
		if down {
			k.previous[sc] = true
		}
	}
}

// Set records a key transition.
func (k *KeyState) Set(sc sdl.Scancode, down bool) {
	if down {
		k.current[sc] = true
	} else {
		delete(k.current, sc)
	}
}

// Held reports whether sc is down.
func (k *KeyState) Held(sc sdl.Scancode) bool {
	return k.current[sc]
}

// Pressed reports whether sc went down this frame.
func (k *KeyState) Pressed(sc sdl.Scancode) bool {
	return k.current[sc] && !k.previous[sc]
}
