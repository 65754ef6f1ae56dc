// mazetool inspects maze models and replays movement without a window.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/logger"
)

var CLI struct {
	Config string `help:"Configuration file to load instead of the defaults." type:"existingfile"`
	Debug  bool   `help:"Whether to enable debug logging."`

	Info struct {
		Model string `arg:"" optional:"" help:"Maze OBJ file (defaults to maze.model_path)."`
	} `cmd:"" help:"Print mesh statistics and marker placement."`

	Floor struct {
		X       float32 `arg:"" help:"World X."`
		Z       float32 `arg:"" help:"World Z."`
		Model   string  `help:"Maze OBJ file (defaults to maze.model_path)." short:"m"`
		NoSlope bool    `help:"Also consider floor steeper than the walkable threshold."`
	} `cmd:"" help:"Query the highest floor under a point."`

	Probe struct {
		X      float32 `arg:"" help:"World X."`
		Y      float32 `arg:"" help:"World Y."`
		Z      float32 `arg:"" help:"World Z."`
		Model  string  `help:"Maze OBJ file (defaults to maze.model_path)." short:"m"`
		Radius float32 `help:"Probe sphere radius (defaults to movement.probe_radius)."`
	} `cmd:"" help:"Test a sphere against the walls."`

	Walk struct {
		Model   string  `help:"Maze OBJ file (defaults to maze.model_path)." short:"m"`
		Seconds float32 `default:"5" help:"Simulated time."`
		FPS     int     `default:"60" help:"Simulated frame rate."`
		Keys    string  `default:"w" help:"Held keys, any of: w a s d shift."`
		Yaw     float32 `default:"-90" help:"View yaw in degrees."`
		NoClip  bool    `help:"Disable collisions."`
	} `cmd:"" help:"Replay held keys for a while and report where the player ends up."`

	Defaults struct {
		Output string `help:"Also save the defaults to this file." short:"o" type:"path"`
	} `cmd:"" help:"Write the built-in default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mazetool"),
		kong.Description("inspect labyrinth maze models"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	level := "warn"
	if CLI.Debug {
		level = "debug"
	}
	if err := logger.InitWithOptions(logger.Options{Level: level, Console: os.Stderr}); err != nil {
		writeError(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadFile(CLI.Config)
	if err != nil {
		writeError(err)
	}

	out := os.Stdout
	command := strings.Fields(ctx.Command())[0]

	switch command {
	case "info":
		err = infoCommand(out, cfg, CLI.Info.Model)
	case "floor":
		err = floorCommand(out, cfg, CLI.Floor.Model, CLI.Floor.X, CLI.Floor.Z, !CLI.Floor.NoSlope)
	case "probe":
		err = probeCommand(out, cfg, CLI.Probe.Model, CLI.Probe.X, CLI.Probe.Y, CLI.Probe.Z, CLI.Probe.Radius)
	case "walk":
		err = walkCommand(out, cfg, walkOptions{
			Model:   CLI.Walk.Model,
			Seconds: CLI.Walk.Seconds,
			FPS:     CLI.Walk.FPS,
			Keys:    CLI.Walk.Keys,
			Yaw:     CLI.Walk.Yaw,
			NoClip:  CLI.Walk.NoClip,
		})
	case "defaults":
		err = defaultsCommand(out, CLI.Defaults.Output)
	}

	if err != nil {
		writeError(err)
	}
}
