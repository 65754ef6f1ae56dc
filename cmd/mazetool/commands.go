package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/game/session"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// loadMesh loads model, or the configured model when empty. Unlike the game,
// the tool treats a load failure as fatal.
func loadMesh(cfg *config.Config, model string) (*maze.Mesh, error) {
	if model == "" {
		model = cfg.Maze.ModelPath
	}
	return maze.Load(model, session.MeshOptions(cfg))
}

func fmtVec(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// defaultsCommand prints the built-in defaults, ignoring any --config file,
// and optionally saves them to output.
func defaultsCommand(w io.Writer, output string) error {
	cfg := config.Default()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if output != "" {
		return cfg.SaveTo(output)
	}
	return nil
}

func infoCommand(w io.Writer, cfg *config.Config, model string) error {
	m, err := loadMesh(cfg, model)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "triangles:     %d (skipped faces %d, warnings %d)\n",
		m.Stats.SourceTriangles, m.Stats.SkippedFaces, m.Stats.Warnings)
	fmt.Fprintf(w, "floor:         %d (including safety floor)\n", len(m.Floor))
	fmt.Fprintf(w, "walls:         %d\n", len(m.Walls))
	fmt.Fprintf(w, "bounds:        %s - %s\n", fmtVec(m.Bounds.Min), fmtVec(m.Bounds.Max))
	fmt.Fprintf(w, "model size:    %.3f\n", m.ModelSize)
	fmt.Fprintf(w, "speed:         %.3f\n", session.ParamsFromConfig(cfg.Movement, m.ModelSize).Speed)

	markers, err := m.PlaceMarkers(session.PlacementOptions(cfg))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "start:         %s\n", fmtVec(markers.Start))
	fmt.Fprintf(w, "exit (%s):  %s\n", cfg.Maze.ExitPolicy, fmtVec(markers.Exit))
	return nil
}

func floorCommand(w io.Writer, cfg *config.Config, model string, x, z float32, checkSlope bool) error {
	m, err := loadMesh(cfg, model)
	if err != nil {
		return err
	}

	h, ok := m.FloorHeight(math.Vec3{X: x, Z: z}, checkSlope)
	if !ok {
		fmt.Fprintf(w, "no floor at (%.3f, %.3f)\n", x, z)
		return nil
	}
	fmt.Fprintf(w, "floor at (%.3f, %.3f): %.3f (eye %.3f)\n", x, z, h, h+cfg.Movement.EyeHeight)
	return nil
}

func probeCommand(w io.Writer, cfg *config.Config, model string, x, y, z, radius float32) error {
	m, err := loadMesh(cfg, model)
	if err != nil {
		return err
	}
	if radius <= 0 {
		radius = cfg.Movement.ProbeRadius
	}

	p := math.Vec3{X: x, Y: y, Z: z}
	tri, hit := m.FirstWallHit(p, radius)
	if !hit {
		fmt.Fprintf(w, "clear at %s radius %.3f\n", fmtVec(p), radius)
		return nil
	}
	fmt.Fprintf(w, "hit at %s radius %.3f\n", fmtVec(p), radius)
	fmt.Fprintf(w, "  triangle %s %s %s\n", fmtVec(tri.V0), fmtVec(tri.V1), fmtVec(tri.V2))
	fmt.Fprintf(w, "  normal   %s\n", fmtVec(tri.Normal))
	return nil
}

type walkOptions struct {
	Model   string
	Seconds float32
	FPS     int
	Keys    string
	Yaw     float32
	NoClip  bool
}

var errBadFPS = errors.New("fps must be positive")

// parseKeys turns "w shift" or "wd" style key lists into a frame input.
func parseKeys(keys string) (session.FrameInput, error) {
	var in session.FrameInput
	keys = strings.ToLower(keys)
	if strings.Contains(keys, "shift") {
		in.Sprint = true
		keys = strings.ReplaceAll(keys, "shift", "")
	}
	for _, r := range keys {
		switch r {
		case 'w':
			in.Forward = true
		case 's':
			in.Backward = true
		case 'a':
			in.Left = true
		case 'd':
			in.Right = true
		case ' ', ',', '+':
		default:
			return in, fmt.Errorf("unknown key %q", r)
		}
	}
	return in, nil
}

func walkCommand(w io.Writer, cfg *config.Config, opts walkOptions) error {
	if opts.FPS <= 0 {
		return errBadFPS
	}
	in, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}

	m, err := loadMesh(cfg, opts.Model)
	if err != nil {
		return err
	}
	s, err := session.FromConfig(cfg, m)
	if err != nil {
		return err
	}
	s.Camera().SetOrientation(opts.Yaw, 0)
	s.SetNoClip(opts.NoClip)
	markers := s.Markers()

	in.Dt = 1 / float32(opts.FPS)
	frames := int(opts.Seconds * float32(opts.FPS))

	var total session.StepReport
	failsafes := 0
	victoryFrame := -1
	for i := range frames {
		report := s.Update(in)
		total.WallHits += report.Step.WallHits
		total.VoidReverts += report.Step.VoidReverts
		total.StepRejects += report.Step.StepRejects
		if report.Step.Failsafe {
			failsafes++
		}
		if report.Victory {
			victoryFrame = i
		}
	}

	fmt.Fprintf(w, "frames:        %d at %d fps\n", frames, opts.FPS)
	fmt.Fprintf(w, "start:         %s\n", fmtVec(markers.Start))
	fmt.Fprintf(w, "end:           %s\n", fmtVec(s.Position()))
	fmt.Fprintf(w, "wall hits:     %d\n", total.WallHits)
	fmt.Fprintf(w, "void reverts:  %d\n", total.VoidReverts)
	fmt.Fprintf(w, "step rejects:  %d\n", total.StepRejects)
	fmt.Fprintf(w, "failsafes:     %d\n", failsafes)
	if victoryFrame >= 0 {
		fmt.Fprintf(w, "exit reached:  %.2fs\n", float32(victoryFrame+1)*in.Dt)
	} else {
		fmt.Fprintf(w, "exit distance: %.3f\n", s.Objective().Distance(s.Position()))
	}
	return nil
}
