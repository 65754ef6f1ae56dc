package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/engine/camera"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// StepReport counts what the integrator rejected during one frame.
type StepReport struct {
	WallHits    int
	VoidReverts int
	StepRejects int
	Failsafe    bool
}

// ProcessInput advances the player for one frame.
//
// The frame is split into SubSteps equal sub-steps. Sprint scales the
// camera's MovementSpeed for this frame only. Each sub-step applies the
// keyboard translation and, unless no-clip is on, resolves it against the
// world: a wall hit or a missing floor cancels the sub-step, a rise above
// MaxStepHeight cancels it while keeping the previous floor, and anything else
// snaps the eye to floor + EyeHeight. After all sub-steps the failsafe
// respawns a player that fell below FailsafeY.
func (s *Session) ProcessInput(in FrameInput) StepReport {
	var report StepReport
	cam := s.camera
	p := s.params

	if in.Sprint {
		speed := cam.MovementSpeed
		cam.MovementSpeed *= p.SprintMultiplier
		defer func() { cam.MovementSpeed = speed }()
	}

	if in.Dt > 0 {
		subDt := in.Dt / float32(p.SubSteps)

		var floor float32
		if !s.noClip {
			h, ok := s.world.FloorHeight(cam.Position, true)
			if !ok {
				h = cam.Position.Y - p.EyeHeight
			}
			floor = h
		}

		for range p.SubSteps {
			old := cam.Position

			if in.Forward {
				cam.ProcessKeyboard(camera.Forward, subDt)
			}
			if in.Backward {
				cam.ProcessKeyboard(camera.Backward, subDt)
			}
			if in.Left {
				cam.ProcessKeyboard(camera.Left, subDt)
			}
			if in.Right {
				cam.ProcessKeyboard(camera.Right, subDt)
			}

			if s.noClip {
				continue
			}

			if s.world.CheckWallCollision(cam.Position, p.ProbeRadius) {
				cam.Position = old
				report.WallHits++
				continue
			}

			h, ok := s.world.FloorHeight(cam.Position, true)
			if !ok {
				cam.Position = old
				report.VoidReverts++
				continue
			}

			if h-floor > p.MaxStepHeight {
				cam.Position = old
				report.StepRejects++
				continue
			}

			cam.Position.Y = h + p.EyeHeight
			floor = h
		}
	}

	if cam.Position.Y < p.FailsafeY {
		s.log.Warn("player fell below the world, respawning",
			zap.Float32("y", cam.Position.Y),
			zap.Float32("failsafe_y", p.FailsafeY),
		)
		cam.Position = s.markers.Start.Add(math.Vec3{Y: p.EyeHeight})
		report.Failsafe = true
	}

	return report
}
