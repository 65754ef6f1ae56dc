// Package camera provides the first-person camera used by the maze walker.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/labyrinth/pkg/math"
)

// Direction is a keyboard movement direction relative to the view.
type Direction int

// Movement directions.
const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera defaults.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// FPSCamera is an Euler-angle camera. Yaw and pitch are in degrees.
type FPSCamera struct {
	Position math.Vec3

	// Basis vectors, derived from Yaw and Pitch
	Front   math.Vec3
	Up      math.Vec3
	Right   math.Vec3
	WorldUp math.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // Vertical field of view in degrees
}

// NewFPSCamera creates a camera at position looking along yaw/pitch.
func NewFPSCamera(position math.Vec3, yaw, pitch float32) *FPSCamera {
	c := &FPSCamera{
		Position:         position,
		Front:            math.Vec3{X: 0, Y: 0, Z: -1},
		WorldUp:          math.Up,
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// Move translates the camera along its basis by distance.
// Forward movement follows the full view direction, including pitch.
func (c *FPSCamera) Move(dir Direction, distance float32) {
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(distance))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(distance))
	case Left:
		c.Position = c.Position.Sub(c.Right.Scale(distance))
	case Right:
		c.Position = c.Position.Add(c.Right.Scale(distance))
	}
}

// ProcessKeyboard moves in dir for dt seconds at MovementSpeed.
func (c *FPSCamera) ProcessKeyboard(dir Direction, dt float32) {
	c.Move(dir, c.MovementSpeed*dt)
}

// ProcessMouseMovement applies mouse deltas scaled by MouseSensitivity.
// dy is positive when the mouse moves up.
func (c *FPSCamera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *FPSCamera) ProcessMouseScroll(dy float32) {
	c.Zoom = clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

// SetOrientation sets yaw and pitch directly. Pitch is clamped.
func (c *FPSCamera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = clamp(pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ViewMatrix returns the view matrix looking from Position along Front.
func (c *FPSCamera) ViewMatrix() mgl32.Mat4 {
	eye := toMgl(c.Position)
	return mgl32.LookAtV(eye, eye.Add(toMgl(c.Front)), toMgl(c.Up))
}

// Projection returns a perspective matrix using Zoom as the field of view.
func (c *FPSCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

func (c *FPSCamera) updateVectors() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)

	c.Front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func toMgl(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
