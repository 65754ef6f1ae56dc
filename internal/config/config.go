// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/labyrinth/internal/maze"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Maze     MazeConfig     `yaml:"maze"`
	Movement MovementConfig `yaml:"movement"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FarPlane   float32 `yaml:"far_plane"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// MazeConfig holds geometry loading and classification settings.
type MazeConfig struct {
	ModelPath string `yaml:"model_path"`

	// Triangles with normal.y above this are classified as floor.
	FloorNormalY float32 `yaml:"floor_normal_y"`
	// Floor triangles with normal.y below this are ignored by height queries.
	// Deliberately looser than FloorNormalY.
	WalkableNormalY float32 `yaml:"walkable_normal_y"`

	SafetyFloorMargin float32 `yaml:"safety_floor_margin"`

	// Start is the floor centroid nearest to StartOrigin (XZ only).
	StartOrigin [2]float32 `yaml:"start_origin"`

	// ExitPolicy is one of "fixed", "edge" or "farthest".
	ExitPolicy   maze.ExitPolicy `yaml:"exit_policy"`
	ExitPosition [3]float32      `yaml:"exit_position"`
	// EdgeTarget is the XZ point used by the "edge" policy. When nil the
	// centre of the far (max Z) edge of the bounds is used.
	EdgeTarget *[2]float32 `yaml:"edge_target,omitempty"`
}

// MovementConfig holds the player movement constants.
type MovementConfig struct {
	// Speed is in world units per second. Zero derives it from the model size.
	Speed            float32 `yaml:"speed"`
	SpeedDivisor     float32 `yaml:"speed_divisor"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	SubSteps         int     `yaml:"sub_steps"`
	ProbeRadius      float32 `yaml:"probe_radius"`
	MaxStepHeight    float32 `yaml:"max_step_height"`
	EyeHeight        float32 `yaml:"eye_height"`
	FailsafeY        float32 `yaml:"failsafe_y"`
	VictoryRadius    float32 `yaml:"victory_radius"`
	StartNoClip      bool    `yaml:"start_noclip"`
}

// CameraConfig holds orientation settings.
type CameraConfig struct {
	Yaw              float32 `yaml:"yaw"`
	Pitch            float32 `yaml:"pitch"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	Zoom             float32 `yaml:"zoom"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FarPlane:   5000,

			ScreenshotDir: "screenshots",
		},
		Maze: MazeConfig{
			ModelPath:         "models/3d-model.obj",
			FloorNormalY:      0.7,
			WalkableNormalY:   0.5,
			SafetyFloorMargin: 100,
			ExitPolicy:        maze.ExitFixed,
			ExitPosition:      [3]float32{14.7148, 396.287, -1322.83},
		},
		Movement: MovementConfig{
			Speed:            0,
			SpeedDivisor:     20,
			SprintMultiplier: 1.5,
			SubSteps:         4,
			ProbeRadius:      5,
			MaxStepHeight:    15,
			EyeHeight:        50,
			FailsafeY:        -300,
			VictoryRadius:    50,
		},
		Camera: CameraConfig{
			Yaw:              -90,
			Pitch:            0,
			MouseSensitivity: 0.1,
			Zoom:             45,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that would break the simulation.
func (c *Config) Validate() error {
	var errs []error

	if c.Maze.FloorNormalY <= 0 || c.Maze.FloorNormalY > 1 {
		errs = append(errs, fmt.Errorf("maze.floor_normal_y must be in (0, 1], got %v", c.Maze.FloorNormalY))
	}
	if c.Maze.WalkableNormalY < 0 || c.Maze.WalkableNormalY > 1 {
		errs = append(errs, fmt.Errorf("maze.walkable_normal_y must be in [0, 1], got %v", c.Maze.WalkableNormalY))
	}
	if !c.Maze.ExitPolicy.Valid() {
		errs = append(errs, fmt.Errorf("maze.exit_policy: %w: %q", maze.ErrUnknownExitPolicy, c.Maze.ExitPolicy))
	}
	if c.Movement.SubSteps < 1 {
		errs = append(errs, fmt.Errorf("movement.sub_steps must be at least 1, got %d", c.Movement.SubSteps))
	}
	if c.Movement.Speed < 0 {
		errs = append(errs, errors.New("movement.speed must not be negative"))
	}
	if c.Movement.Speed == 0 && c.Movement.SpeedDivisor <= 0 {
		errs = append(errs, errors.New("movement.speed_divisor must be positive when speed is derived"))
	}
	if c.Movement.ProbeRadius <= 0 {
		errs = append(errs, fmt.Errorf("movement.probe_radius must be positive, got %v", c.Movement.ProbeRadius))
	}
	if c.Movement.VictoryRadius <= 0 {
		errs = append(errs, fmt.Errorf("movement.victory_radius must be positive, got %v", c.Movement.VictoryRadius))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}

	return errors.Join(errs...)
}
