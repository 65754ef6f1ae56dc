package session

import "github.com/Faultbox/labyrinth/pkg/math"

// Objective latches victory once the player gets close enough to the exit.
type Objective struct {
	Exit   math.Vec3
	Radius float32

	Achieved bool
	Elapsed  float32 // Seconds since victory, for fade-in
}

// NewObjective creates an objective for the given exit.
func NewObjective(exit math.Vec3, radius float32) *Objective {
	return &Objective{Exit: exit, Radius: radius}
}

// Update checks the player position. It returns true only on the frame
// victory is latched. Once latched, only Elapsed advances.
func (o *Objective) Update(pos math.Vec3, dt float32) bool {
	if o.Achieved {
		if dt > 0 {
			o.Elapsed += dt
		}
		return false
	}

	if pos.PlanarDistance(o.Exit) < o.Radius {
		o.Achieved = true
		o.Elapsed = 0
		return true
	}
	return false
}

// Distance returns the planar distance from pos to the exit.
func (o *Objective) Distance(pos math.Vec3) float32 {
	return pos.PlanarDistance(o.Exit)
}
