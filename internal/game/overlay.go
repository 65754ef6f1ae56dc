package game

import (
	"fmt"

	"github.com/Faultbox/labyrinth/internal/engine/ui2d"
	"github.com/Faultbox/labyrinth/internal/game/session"
)

// VictoryFadeSeconds is how long the victory overlay takes to fade in.
const VictoryFadeSeconds = 2.0

// VictoryAlpha returns the victory overlay opacity after elapsed seconds.
func VictoryAlpha(elapsed float32) float32 {
	if elapsed <= 0 {
		return 0
	}
	return min(elapsed/VictoryFadeSeconds, 1)
}

// StatusLine describes the player state for the corner readout.
func StatusLine(s *session.Session) string {
	p := s.Position()
	line := fmt.Sprintf("pos %.0f %.0f %.0f  exit %.0f", p.X, p.Y, p.Z, s.Objective().Distance(p))
	if s.NoClip() {
		line += "  [noclip]"
	}
	return line
}

// drawOverlay queues the 2D overlays for the current session state.
func drawOverlay(ui *ui2d.Renderer, s *session.Session) {
	w, h := ui.ScreenSize()

	// Crosshair
	ui.DrawRect(w/2-6, h/2-1, 12, 2, ui2d.ColorWhite.WithAlpha(0.7))
	ui.DrawRect(w/2-1, h/2-6, 2, 12, ui2d.ColorWhite.WithAlpha(0.7))

	ui.DrawText(10, 10, StatusLine(s), 1, ui2d.ColorTextDim)

	if s.ShowControls() {
		const scale = 2
		gw, gh := ui2d.GlyphSize()
		lineH := float32(gh) * scale
		panelW := float32(30*gw)*scale + 40
		panelH := lineH*float32(len(ControlsHelp)+2) + 20
		x, y := (w-panelW)/2, (h-panelH)/2

		ui.DrawRect(x, y, panelW, panelH, ui2d.ColorPanelBg)
		ui.DrawText(x+20, y+10, "CONTROLS", scale, ui2d.ColorYellow)
		for i, line := range ControlsHelp {
			ui.DrawText(x+20, y+10+lineH*float32(i+2), line, scale, ui2d.ColorText)
		}
	} else {
		ui.DrawText(10, h-24, "Tab: controls", 1, ui2d.ColorTextDim)
	}

	if obj := s.Objective(); obj.Achieved {
		a := VictoryAlpha(obj.Elapsed)
		ui.DrawRect(0, 0, w, h, ui2d.ColorBlack.Fade(0.5*a))
		ui.DrawTextCentered(h/2-40, "YOU FOUND THE EXIT!", 4, ui2d.ColorGreen.Fade(a))
		ui.DrawTextCentered(h/2+30, "Press Esc to quit", 2, ui2d.ColorText.Fade(a))
	}
}
