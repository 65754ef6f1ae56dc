package ui2d

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Overlay palette.
var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorGreen   = Color{0.3, 1, 0.4, 1}
	ColorYellow  = Color{1, 0.85, 0.2, 1}
	ColorPanelBg = Color{0.05, 0.05, 0.08, 0.75}
	ColorText    = Color{0.9, 0.9, 0.9, 1}
	ColorTextDim = Color{0.6, 0.6, 0.7, 1}
)

// WithAlpha returns the color with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Fade scales alpha by f, clamped to [0, 1].
func (c Color) Fade(f float32) Color {
	c.A = min(max(c.A*f, 0), 1)
	return c
}
