package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/labyrinth/internal/maze"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// The two slope thresholds are intentionally different.
	if cfg.Maze.FloorNormalY != 0.7 {
		t.Errorf("expected floor normal 0.7, got %v", cfg.Maze.FloorNormalY)
	}
	if cfg.Maze.WalkableNormalY != 0.5 {
		t.Errorf("expected walkable normal 0.5, got %v", cfg.Maze.WalkableNormalY)
	}
	if cfg.Maze.SafetyFloorMargin != 100 {
		t.Errorf("expected safety margin 100, got %v", cfg.Maze.SafetyFloorMargin)
	}
	if cfg.Maze.ExitPolicy != maze.ExitFixed {
		t.Errorf("expected exit policy fixed, got %s", cfg.Maze.ExitPolicy)
	}

	m := cfg.Movement
	if m.SubSteps != 4 {
		t.Errorf("expected 4 sub-steps, got %d", m.SubSteps)
	}
	if m.ProbeRadius != 5 || m.MaxStepHeight != 15 || m.EyeHeight != 50 || m.FailsafeY != -300 {
		t.Errorf("unexpected movement constants: %+v", m)
	}
	if m.VictoryRadius != 50 {
		t.Errorf("expected victory radius 50, got %v", m.VictoryRadius)
	}

	if cfg.Camera.Yaw != -90 || cfg.Camera.Zoom != 45 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Camera)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true

maze:
  model_path: "levels/castle.obj"
  walkable_normal_y: 0.6
  exit_policy: edge
  edge_target: [100, -2000]

movement:
  sub_steps: 8
  max_step_height: 20
  victory_radius: 10

camera:
  mouse_sensitivity: 0.005

logging:
  level: "debug"
  log_file: "labyrinth.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Maze.ModelPath != "levels/castle.obj" {
		t.Errorf("expected model levels/castle.obj, got %s", cfg.Maze.ModelPath)
	}
	if cfg.Maze.WalkableNormalY != 0.6 {
		t.Errorf("expected walkable normal 0.6, got %v", cfg.Maze.WalkableNormalY)
	}
	// Untouched keys keep their defaults
	if cfg.Maze.FloorNormalY != 0.7 {
		t.Errorf("expected floor normal default 0.7, got %v", cfg.Maze.FloorNormalY)
	}
	if cfg.Maze.ExitPolicy != maze.ExitEdge {
		t.Errorf("expected exit policy edge, got %s", cfg.Maze.ExitPolicy)
	}
	if cfg.Maze.EdgeTarget == nil || *cfg.Maze.EdgeTarget != [2]float32{100, -2000} {
		t.Errorf("unexpected edge target %v", cfg.Maze.EdgeTarget)
	}
	if cfg.Movement.SubSteps != 8 {
		t.Errorf("expected 8 sub-steps, got %d", cfg.Movement.SubSteps)
	}
	if cfg.Movement.MaxStepHeight != 20 {
		t.Errorf("expected step height 20, got %v", cfg.Movement.MaxStepHeight)
	}
	if cfg.Movement.EyeHeight != 50 {
		t.Errorf("expected eye height default 50, got %v", cfg.Movement.EyeHeight)
	}
	if cfg.Camera.MouseSensitivity != 0.005 {
		t.Errorf("expected sensitivity 0.005, got %v", cfg.Camera.MouseSensitivity)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "labyrinth.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("movement:\n  max_step_hieght: 30\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, []byte("\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load, got %v", err)
	}
	if cfg.Movement.SubSteps != 4 {
		t.Errorf("expected defaults to survive, got %d sub-steps", cfg.Movement.SubSteps)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		substr string
	}{
		{"floor normal", func(c *Config) { c.Maze.FloorNormalY = 1.5 }, "floor_normal_y"},
		{"walkable normal", func(c *Config) { c.Maze.WalkableNormalY = -0.1 }, "walkable_normal_y"},
		{"exit policy", func(c *Config) { c.Maze.ExitPolicy = "random" }, "exit_policy"},
		{"sub steps", func(c *Config) { c.Movement.SubSteps = 0 }, "sub_steps"},
		{"negative speed", func(c *Config) { c.Movement.Speed = -1 }, "speed"},
		{"speed divisor", func(c *Config) { c.Movement.SpeedDivisor = 0 }, "speed_divisor"},
		{"probe radius", func(c *Config) { c.Movement.ProbeRadius = 0 }, "probe_radius"},
		{"victory radius", func(c *Config) { c.Movement.VictoryRadius = 0 }, "victory_radius"},
		{"size", func(c *Config) { c.Graphics.Width = 0 }, "graphics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("expected error to mention %q, got %v", tt.substr, err)
			}
		})
	}
}

func TestValidateExitPolicy(t *testing.T) {
	for _, policy := range []maze.ExitPolicy{maze.ExitFixed, maze.ExitEdge, maze.ExitFarthest} {
		cfg := Default()
		cfg.Maze.ExitPolicy = policy
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with %q: %v", policy, err)
		}
	}

	cfg := Default()
	cfg.Maze.ExitPolicy = ""
	if err := cfg.Validate(); !errors.Is(err, maze.ErrUnknownExitPolicy) {
		t.Errorf("Validate() with empty policy = %v, want ErrUnknownExitPolicy", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "labyrinth.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find labyrinth.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "other.obj" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Maze.ModelPath != "other.obj" {
					t.Errorf("expected model other.obj, got %s", cfg.Maze.ModelPath)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "exit flag",
			setup: func() { *flagExitPolicy = string(maze.ExitFarthest) },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Maze.ExitPolicy != maze.ExitFarthest {
					t.Errorf("expected exit policy farthest, got %s", cfg.Maze.ExitPolicy)
				}
			},
			teardown: func() { *flagExitPolicy = "" },
		},
		{
			name:  "noclip flag",
			setup: func() { *flagNoClip = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Movement.StartNoClip {
					t.Error("expected start_noclip to be enabled")
				}
			},
			teardown: func() { *flagNoClip = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("movement:\n  sub_steps: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject invalid config")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Maze.ExitPolicy = maze.ExitFarthest
	cfg.Movement.MaxStepHeight = 12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Maze.ExitPolicy != maze.ExitFarthest || loaded.Movement.MaxStepHeight != 12 {
		t.Errorf("saved values not restored: %+v %+v", loaded.Maze, loaded.Movement)
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile(\"\") error = %v", err)
	}
	if cfg.Movement.EyeHeight != 50 {
		t.Errorf("EyeHeight = %v, want default 50", cfg.Movement.EyeHeight)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("movement:\n  probe_radius: 8\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flags are ignored.
	*flagNoClip = true
	defer func() { *flagNoClip = false }()

	cfg, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Movement.ProbeRadius != 8 {
		t.Errorf("ProbeRadius = %v, want 8", cfg.Movement.ProbeRadius)
	}
	if cfg.Movement.StartNoClip {
		t.Error("LoadFile applied command-line flags")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
