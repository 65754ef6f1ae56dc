package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyStateEdges(t *testing.T) {
	k := NewKeyState()
	v := sdl.Scancode(sdl.SCANCODE_V)

	// Frame 1: key goes down.
	k.Advance()
	k.Set(v, true)
	if !k.Pressed(v) || !k.Held(v) {
		t.Errorf("frame 1: Pressed=%v Held=%v, want true true", k.Pressed(v), k.Held(v))
	}

	// Frame 2: still held, no new edge.
	k.Advance()
	if k.Pressed(v) {
		t.Error("frame 2: Pressed() = true, want false while held")
	}
	if !k.Held(v) {
		t.Error("frame 2: Held() = false, want true")
	}

	// Frame 3: released.
	k.Advance()
	k.Set(v, false)
	if k.Held(v) || k.Pressed(v) {
		t.Errorf("frame 3: Held=%v Pressed=%v, want false false", k.Held(v), k.Pressed(v))
	}

	// Frame 4: pressed again.
	k.Advance()
	k.Set(v, true)
	if !k.Pressed(v) {
		t.Error("frame 4: Pressed() = false, want true after release")
	}
}

func TestKeyStateTapWithinFrame(t *testing.T) {
	k := NewKeyState()
	tab := sdl.Scancode(sdl.SCANCODE_TAB)

	k.Advance()
	k.Set(tab, true)
	k.Set(tab, false)

	// Down and up within one poll leaves no edge behind.
	if k.Pressed(tab) || k.Held(tab) {
		t.Errorf("Pressed=%v Held=%v, want false false", k.Pressed(tab), k.Held(tab))
	}
}

func TestKeyStateIndependentKeys(t *testing.T) {
	k := NewKeyState()
	w := sdl.Scancode(sdl.SCANCODE_W)
	shift := sdl.Scancode(sdl.SCANCODE_LSHIFT)

	k.Advance()
	k.Set(w, true)
	k.Advance()
	k.Set(shift, true)

	if k.Pressed(w) {
		t.Error("W Pressed() = true on second frame")
	}
	if !k.Pressed(shift) {
		t.Error("LSHIFT Pressed() = false, want true")
	}
}
