// Package game implements the main loop of the maze walker.
package game

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/engine/debug"
	"github.com/Faultbox/labyrinth/internal/engine/input"
	"github.com/Faultbox/labyrinth/internal/engine/renderer"
	"github.com/Faultbox/labyrinth/internal/engine/ui2d"
	"github.com/Faultbox/labyrinth/internal/engine/window"
	"github.com/Faultbox/labyrinth/internal/game/session"
	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/internal/maze"
)

// Title is the window title.
const Title = "Labyrinth"

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Renderer
	input    *input.Input
	shots    *debug.Screenshots

	mesh    *maze.Mesh
	session *session.Session
}

// NewSession loads the maze and builds the simulation for cfg.
// A maze that fails to load yields an empty world and a logged error.
func NewSession(cfg *config.Config) (*maze.Mesh, *session.Session, error) {
	log := logger.Named("game")

	mesh, err := maze.Load(cfg.Maze.ModelPath, session.MeshOptions(cfg))
	if err != nil {
		log.Error("continuing with an empty maze", zap.Error(err))
	}

	s, err := session.FromConfig(cfg, mesh)
	if err != nil {
		return nil, nil, err
	}

	markers := s.Markers()
	log.Info("markers placed",
		zap.Float32s("start", []float32{markers.Start.X, markers.Start.Y, markers.Start.Z}),
		zap.Float32s("exit", []float32{markers.Exit.X, markers.Exit.Y, markers.Exit.Z}),
		zap.String("policy", string(cfg.Maze.ExitPolicy)),
	)
	return mesh, s, nil
}

// New loads the maze, then creates the window and renderers.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("model", cfg.Maze.ModelPath),
	)

	var err error
	g.mesh, g.session, err = NewSession(cfg)
	if err != nil {
		return nil, err
	}

	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderers need the OpenGL context, so they come after the window.
	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:    dw,
		Height:   dh,
		FarPlane: cfg.Graphics.FarPlane,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.UploadMaze(g.mesh)
	g.renderer.SetExitMarker(g.session.Markers().Exit)

	g.ui, err = ui2d.New(dw, dh)
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	g.input = input.New()
	g.shots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "labyrinth")
	g.window.CaptureMouse(true)

	g.log.Info("controls\n  " + strings.Join(ControlsHelp, "\n  "))
	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.update(dt)
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.ui != nil {
		g.ui.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		if event.Type == input.EventWindowResize {
			dw, dh := g.window.DrawableSize()
			g.renderer.Resize(dw, dh)
			g.ui.Resize(dw, dh)
		}
	}

	if g.input.Pressed(KeyQuit) {
		g.running = false
	}
	if g.input.Pressed(KeyFullscreen) {
		g.window.ToggleFullscreen()
	}
}

func (g *Game) update(dt float32) {
	dx, dy := g.input.MouseDelta()
	in := FrameInput(g.input, dx, dy, g.input.Wheel(), dt)

	report := g.session.Update(in)
	if report.Victory {
		g.log.Info("victory! press Esc to quit")
	}
	if report.Step.Failsafe {
		g.log.Debug("failsafe respawn", zap.Any("report", report.Step))
	}
}

func (g *Game) render() {
	cam := g.session.Camera()

	g.renderer.Begin()
	g.renderer.DrawScene(cam.ViewMatrix(), cam.Projection(g.renderer.Aspect(), 0.1, g.renderer.FarPlane()))

	g.ui.Begin()
	drawOverlay(g.ui, g.session)
	g.ui.End()

	if g.input.Pressed(KeyScreenshot) {
		g.screenshot()
	}
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.shots.Save(pixels, w, h)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", name))
}
