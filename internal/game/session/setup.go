package session

import (
	"fmt"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/engine/camera"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// MeshOptions converts the maze settings.
func MeshOptions(cfg *config.Config) maze.Options {
	return maze.Options{
		FloorNormalY:      cfg.Maze.FloorNormalY,
		WalkableNormalY:   cfg.Maze.WalkableNormalY,
		SafetyFloorMargin: cfg.Maze.SafetyFloorMargin,
	}
}

// PlacementOptions converts the marker settings.
func PlacementOptions(cfg *config.Config) maze.PlacementOptions {
	opts := maze.PlacementOptions{
		StartOrigin: math.Vec2{X: cfg.Maze.StartOrigin[0], Y: cfg.Maze.StartOrigin[1]},
		EyeHeight:   cfg.Movement.EyeHeight,
		ExitPolicy:  cfg.Maze.ExitPolicy,
		ExitPosition: math.Vec3{
			X: cfg.Maze.ExitPosition[0],
			Y: cfg.Maze.ExitPosition[1],
			Z: cfg.Maze.ExitPosition[2],
		},
	}
	if t := cfg.Maze.EdgeTarget; t != nil {
		opts.EdgeTarget = &math.Vec2{X: t[0], Y: t[1]}
	}
	return opts
}

// FromConfig places the markers on mesh and creates a session using the
// movement and camera settings of cfg.
func FromConfig(cfg *config.Config, mesh *maze.Mesh) (*Session, error) {
	markers, err := mesh.PlaceMarkers(PlacementOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("placing markers: %w", err)
	}

	cam := camera.NewFPSCamera(markers.Start, cfg.Camera.Yaw, cfg.Camera.Pitch)
	cam.MouseSensitivity = cfg.Camera.MouseSensitivity
	cam.Zoom = cfg.Camera.Zoom

	s := New(mesh, markers, ParamsFromConfig(cfg.Movement, mesh.ModelSize), cam)
	s.SetNoClip(cfg.Movement.StartNoClip)
	return s, nil
}
