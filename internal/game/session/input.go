package session

// FrameInput is the input snapshot for one frame. Toggle fields are edge
// events: true only on the frame the key went down.
type FrameInput struct {
	Forward, Backward, Left, Right bool
	Sprint                         bool

	ToggleNoClip   bool
	ToggleControls bool

	// Mouse motion with positive Y pointing up, and wheel scroll.
	MouseDX, MouseDY float32
	Scroll           float32

	Dt float32 // Seconds since the previous frame
}
