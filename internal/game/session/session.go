// Package session holds the per-run simulation state of the maze walker:
// the player camera, movement integration against the maze geometry, the
// no-clip and overlay toggles, and the exit objective.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/engine/camera"
	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// World answers the spatial queries the integrator needs.
// *maze.Mesh implements it.
type World interface {
	FloorHeight(p math.Vec3, checkSlope bool) (float32, bool)
	CheckWallCollision(p math.Vec3, radius float32) bool
}

// FrameReport summarises one Update.
type FrameReport struct {
	Step    StepReport
	Victory bool // Victory latched this frame
}

// Session is the simulation context owned by the frame loop.
type Session struct {
	world     World
	camera    *camera.FPSCamera
	markers   maze.Markers
	params    Params
	objective *Objective

	noClip       bool
	showControls bool

	log *zap.Logger
}

// New creates a session with the player placed at markers.Start.
// cam supplies the initial orientation and view settings; its position and
// speed are overwritten.
func New(world World, markers maze.Markers, params Params, cam *camera.FPSCamera) *Session {
	if cam == nil {
		cam = camera.NewFPSCamera(markers.Start, camera.DefaultYaw, camera.DefaultPitch)
	}
	if params.SubSteps < 1 {
		params.SubSteps = 1
	}
	cam.Position = markers.Start
	cam.MovementSpeed = params.Speed

	s := &Session{
		world:     world,
		camera:    cam,
		markers:   markers,
		params:    params,
		objective: NewObjective(markers.Exit, params.VictoryRadius),
		log:       logger.Named("session"),
	}

	s.log.Info("session started",
		zap.Float32s("start", []float32{markers.Start.X, markers.Start.Y, markers.Start.Z}),
		zap.Float32s("exit", []float32{markers.Exit.X, markers.Exit.Y, markers.Exit.Z}),
		zap.Float32("speed", params.Speed),
	)
	return s
}

// Update runs one frame: orientation, toggles, movement, then the objective.
func (s *Session) Update(in FrameInput) FrameReport {
	if in.MouseDX != 0 || in.MouseDY != 0 {
		s.camera.ProcessMouseMovement(in.MouseDX, in.MouseDY, true)
	}
	if in.Scroll != 0 {
		s.camera.ProcessMouseScroll(in.Scroll)
	}

	if in.ToggleNoClip {
		s.SetNoClip(!s.noClip)
	}
	if in.ToggleControls {
		s.showControls = !s.showControls
	}

	report := FrameReport{Step: s.ProcessInput(in)}

	if s.objective.Update(s.camera.Position, in.Dt) {
		report.Victory = true
		s.log.Info("exit reached",
			zap.Float32("distance", s.objective.Distance(s.camera.Position)),
		)
	}
	return report
}

// SetNoClip enables or disables collision resolution.
func (s *Session) SetNoClip(on bool) {
	if s.noClip == on {
		return
	}
	s.noClip = on
	s.log.Info("noclip toggled", zap.Bool("enabled", on))
}

// Camera returns the player camera.
func (s *Session) Camera() *camera.FPSCamera { return s.camera }

// Position returns the player eye position.
func (s *Session) Position() math.Vec3 { return s.camera.Position }

// Objective returns the exit objective.
func (s *Session) Objective() *Objective { return s.objective }

// Markers returns the start and exit markers.
func (s *Session) Markers() maze.Markers { return s.markers }

// Params returns the session constants.
func (s *Session) Params() Params { return s.params }

// NoClip reports whether collision resolution is disabled.
func (s *Session) NoClip() bool { return s.noClip }

// ShowControls reports whether the controls overlay is visible.
func (s *Session) ShowControls() bool { return s.showControls }
