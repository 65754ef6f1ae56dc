package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/game/session"
)

// testConfig writes a ground plane, a raised platform around the origin and
// a wall across z = -200.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	obj := "v -500 0 -500\nv 500 0 -500\nv -500 0 500\nv 500 0 500\n" +
		"v -10 20 -10\nv 10 20 -10\nv -10 20 10\n" +
		"v -100 0 -200\nv 100 0 -200\nv 100 100 -200\nv -100 100 -200\n" +
		"f 3 2 1\nf 3 4 2\nf 7 6 5\nf 8 9 10\nf 8 10 11\n"
	path := filepath.Join(t.TempDir(), "maze.obj")
	require.NoError(t, os.WriteFile(path, []byte(obj), 0644))

	cfg := config.Default()
	cfg.Maze.ModelPath = path
	return cfg
}

func TestInfoCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, infoCommand(&buf, testConfig(t), ""))

	out := buf.String()
	assert.Contains(t, out, "triangles:     5")
	assert.Contains(t, out, "walls:         2")
	assert.Contains(t, out, "start:         (-3.333, 70.000, -3.333)")
}

func TestInfoCommandMissingModel(t *testing.T) {
	var buf bytes.Buffer
	err := infoCommand(&buf, testConfig(t), filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestFloorCommand(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, floorCommand(&buf, cfg, "", 0, 100, true))
	assert.Equal(t, "floor at (0.000, 100.000): 0.000 (eye 50.000)\n", buf.String())

	buf.Reset()
	require.NoError(t, floorCommand(&buf, cfg, "", -5, -5, true))
	assert.Equal(t, "floor at (-5.000, -5.000): 20.000 (eye 70.000)\n", buf.String())

	buf.Reset()
	require.NoError(t, floorCommand(&buf, cfg, "", 2000, 2000, true))
	assert.Equal(t, "no floor at (2000.000, 2000.000)\n", buf.String())
}

func TestProbeCommand(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, probeCommand(&buf, cfg, "", 50, 20, -201, 0))
	assert.Contains(t, buf.String(), "hit at (50.000, 20.000, -201.000) radius 5.000")
	assert.Contains(t, buf.String(), "normal")

	buf.Reset()
	require.NoError(t, probeCommand(&buf, cfg, "", 0, 50, 0, 0))
	assert.Equal(t, "clear at (0.000, 50.000, 0.000) radius 5.000\n", buf.String())
}

func TestWalkCommand(t *testing.T) {
	var buf bytes.Buffer
	err := walkCommand(&buf, testConfig(t), walkOptions{Seconds: 5, FPS: 60, Keys: "w", Yaw: -90})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "frames:        300 at 60 fps")
	assert.NotContains(t, out, "wall hits:     0\n")
	assert.Contains(t, out, "failsafes:     0")
	assert.Contains(t, out, "exit distance:")
}

func TestWalkCommandBadFPS(t *testing.T) {
	var buf bytes.Buffer
	err := walkCommand(&buf, testConfig(t), walkOptions{Seconds: 1, Keys: "w"})
	assert.ErrorIs(t, err, errBadFPS)
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		keys string
		want session.FrameInput
	}{
		{"w", session.FrameInput{Forward: true}},
		{"w shift", session.FrameInput{Forward: true, Sprint: true}},
		{"WD", session.FrameInput{Forward: true, Right: true}},
		{"a+s", session.FrameInput{Left: true, Backward: true}},
		{"", session.FrameInput{}},
	}
	for _, tt := range tests {
		got, err := parseKeys(tt.keys)
		require.NoError(t, err, tt.keys)
		assert.Equal(t, tt.want, got, tt.keys)
	}

	_, err := parseKeys("wx")
	assert.Error(t, err)
}

func TestDefaultsCommandIgnoresLoadedConfig(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("movement:\n  max_step_height: 3\n"), 0644))
	loaded, err := config.LoadFile(custom)
	require.NoError(t, err)
	require.Equal(t, float32(3), loaded.Movement.MaxStepHeight)

	var buf bytes.Buffer
	out := filepath.Join(dir, "defaults.yaml")
	require.NoError(t, defaultsCommand(&buf, out))
	assert.Contains(t, buf.String(), "max_step_height: 15")
	assert.NotContains(t, buf.String(), "max_step_height: 3\n")

	saved, err := config.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), saved)
}
