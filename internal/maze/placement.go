package maze

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/labyrinth/pkg/math"
)

// ErrUnknownExitPolicy is returned for an unrecognised exit policy name.
var ErrUnknownExitPolicy = errors.New("unknown exit policy")

// ExitPolicy selects how the exit marker is placed.
type ExitPolicy string

// Exit placement policies.
const (
	// ExitFixed uses a configured world coordinate.
	ExitFixed ExitPolicy = "fixed"
	// ExitEdge uses the floor centroid nearest to an edge target point.
	ExitEdge ExitPolicy = "edge"
	// ExitFarthest uses the floor centroid farthest from the start.
	ExitFarthest ExitPolicy = "farthest"
)

// Valid reports whether p names a known policy.
func (p ExitPolicy) Valid() bool {
	switch p {
	case ExitFixed, ExitEdge, ExitFarthest:
		return true
	}
	return false
}

// Markers are the start and exit points of a maze.
type Markers struct {
	Start math.Vec3 // Eye position, already lifted by the eye height
	Exit  math.Vec3
}

// PlacementOptions configure PlaceMarkers.
type PlacementOptions struct {
	StartOrigin  math.Vec2
	EyeHeight    float32
	ExitPolicy   ExitPolicy
	ExitPosition math.Vec3
	// EdgeTarget overrides the default edge target, which is the centre of
	// the far (max Z) edge of the bounds.
	EdgeTarget *math.Vec2
}

// PlaceMarkers computes the start and exit markers.
//
// The start is the non-safety floor centroid nearest (in XZ) to StartOrigin,
// lifted by EyeHeight. Without any eligible floor the start falls back to
// StartOrigin at the bottom of the bounds. Policies that need floor geometry
// fall back to ExitPosition when none is available.
func (m *Mesh) PlaceMarkers(opts PlacementOptions) (Markers, error) {
	var markers Markers

	startFloor, found := m.nearestFloorCentroid(opts.StartOrigin)
	if !found {
		startFloor = math.Vec3{X: opts.StartOrigin.X, Y: m.Bounds.Min.Y, Z: opts.StartOrigin.Y}
	}
	markers.Start = startFloor.Add(math.Vec3{Y: opts.EyeHeight})

	switch opts.ExitPolicy {
	case ExitFixed, "":
		markers.Exit = opts.ExitPosition

	case ExitEdge:
		target := m.defaultEdgeTarget()
		if opts.EdgeTarget != nil {
			target = *opts.EdgeTarget
		}
		exit, ok := m.nearestFloorCentroid(target)
		if !ok {
			exit = opts.ExitPosition
		}
		markers.Exit = exit

	case ExitFarthest:
		exit, ok := m.farthestFloorCentroid(startFloor.XZ())
		if !ok {
			exit = opts.ExitPosition
		}
		markers.Exit = exit

	default:
		return Markers{}, fmt.Errorf("%w: %q", ErrUnknownExitPolicy, opts.ExitPolicy)
	}

	return markers, nil
}

func (m *Mesh) defaultEdgeTarget() math.Vec2 {
	return math.Vec2{X: m.Bounds.Center().X, Y: m.Bounds.Max.Z}
}

func (m *Mesh) nearestFloorCentroid(target math.Vec2) (math.Vec3, bool) {
	best := float32(gomath.MaxFloat32)
	var pos math.Vec3
	found := false
	for _, tri := range m.Floor {
		if m.IsSafetyFloor(tri) {
			continue
		}
		if d := tri.Centroid.XZ().Distance(target); d < best {
			best = d
			pos = tri.Centroid
			found = true
		}
	}
	return pos, found
}

func (m *Mesh) farthestFloorCentroid(from math.Vec2) (math.Vec3, bool) {
	best := float32(-1)
	var pos math.Vec3
	found := false
	for _, tri := range m.Floor {
		if m.IsSafetyFloor(tri) {
			continue
		}
		if d := tri.Centroid.XZ().Distance(from); d > best {
			best = d
			pos = tri.Centroid
			found = true
		}
	}
	return pos, found
}
