package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/formats"
	"github.com/Faultbox/labyrinth/pkg/math"
)

func TestPlacementOptions(t *testing.T) {
	cfg := config.Default()
	opts := PlacementOptions(cfg)
	assert.Equal(t, maze.ExitFixed, opts.ExitPolicy)
	assert.Equal(t, float32(50), opts.EyeHeight)
	assert.Nil(t, opts.EdgeTarget)

	cfg.Maze.ExitPolicy = maze.ExitEdge
	cfg.Maze.EdgeTarget = &[2]float32{3, -4}
	cfg.Maze.StartOrigin = [2]float32{1, 2}
	opts = PlacementOptions(cfg)
	assert.Equal(t, maze.ExitEdge, opts.ExitPolicy)
	require.NotNil(t, opts.EdgeTarget)
	assert.Equal(t, math.Vec2{X: 3, Y: -4}, *opts.EdgeTarget)
	assert.Equal(t, math.Vec2{X: 1, Y: 2}, opts.StartOrigin)
}

func TestMeshOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.SafetyFloorMargin = 25
	opts := MeshOptions(cfg)
	assert.Equal(t, float32(0.7), opts.FloorNormalY)
	assert.Equal(t, float32(0.5), opts.WalkableNormalY)
	assert.Equal(t, float32(25), opts.SafetyFloorMargin)
}

func TestFromConfig(t *testing.T) {
	mesh := maze.Build([]formats.OBJTriangle{
		{math.Vec3{X: -100, Z: 100}, math.Vec3{X: 100, Z: -100}, math.Vec3{X: -100, Z: -100}},
		{math.Vec3{X: -100, Z: 100}, math.Vec3{X: 100, Z: 100}, math.Vec3{X: 100, Z: -100}},
		{math.Vec3{X: -5, Y: 10, Z: 5}, math.Vec3{X: 5, Y: 10, Z: -5}, math.Vec3{X: -5, Y: 10, Z: -5}},
	}, maze.DefaultOptions())

	cfg := config.Default()
	cfg.Maze.ExitPolicy = maze.ExitFarthest
	cfg.Movement.StartNoClip = true
	cfg.Camera.Yaw = 0

	s, err := FromConfig(cfg, mesh)
	require.NoError(t, err)
	assert.True(t, s.NoClip())
	assert.Equal(t, float32(0), s.Camera().Yaw)
	assert.Equal(t, s.Markers().Start, s.Position())
	assert.Equal(t, mesh.ModelSize/20, s.Params().Speed)
}

func TestFromConfigUnknownPolicy(t *testing.T) {
	mesh := maze.Build([]formats.OBJTriangle{
		{math.Vec3{X: -1, Z: 1}, math.Vec3{X: 1, Z: -1}, math.Vec3{X: -1, Z: -1}},
	}, maze.DefaultOptions())

	cfg := config.Default()
	cfg.Maze.ExitPolicy = "random"
	_, err := FromConfig(cfg, mesh)
	assert.ErrorIs(t, err, maze.ErrUnknownExitPolicy)
}
