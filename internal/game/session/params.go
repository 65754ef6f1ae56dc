package session

import (
	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/engine/camera"
)

// Params are the movement and objective constants of a session.
type Params struct {
	Speed            float32 // Units per second
	SprintMultiplier float32
	SubSteps         int
	ProbeRadius      float32 // Wall probe sphere radius
	MaxStepHeight    float32
	EyeHeight        float32
	FailsafeY        float32
	VictoryRadius    float32
}

// DefaultParams returns the default constants with the fallback speed.
func DefaultParams() Params {
	return ParamsFromConfig(config.Default().Movement, 0)
}

// ParamsFromConfig converts movement settings. A zero configured speed is
// derived as modelSize / SpeedDivisor, falling back to the camera default
// when the model has no size.
func ParamsFromConfig(cfg config.MovementConfig, modelSize float32) Params {
	speed := cfg.Speed
	if speed <= 0 && cfg.SpeedDivisor > 0 {
		speed = modelSize / cfg.SpeedDivisor
	}
	if speed <= 0 {
		speed = camera.DefaultSpeed
	}

	steps := cfg.SubSteps
	if steps < 1 {
		steps = 1
	}

	return Params{
		Speed:            speed,
		SprintMultiplier: cfg.SprintMultiplier,
		SubSteps:         steps,
		ProbeRadius:      cfg.ProbeRadius,
		MaxStepHeight:    cfg.MaxStepHeight,
		EyeHeight:        cfg.EyeHeight,
		FailsafeY:        cfg.FailsafeY,
		VictoryRadius:    cfg.VictoryRadius,
	}
}
