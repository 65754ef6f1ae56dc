package ui2d

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16 column grid, plus an opaque block
// in the corner that solid quads sample.
const (
	firstGlyph   = 32
	lastGlyph    = 126
	atlasColumns = 16
	atlasWidth   = 128
	atlasHeight  = 80
	solidSize    = 4
)

var face = basicfont.Face7x13

// GlyphSize returns the fixed cell size of the font in pixels.
func GlyphSize() (w, h int) {
	return face.Advance, face.Height
}

// buildAtlas rasterizes the glyphs as white on transparent.
func buildAtlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, atlasWidth, atlasHeight))

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		cell := glyphRect(r)
		d.Dot = fixed.P(cell.Min.X, cell.Min.Y+face.Ascent)
		d.DrawString(string(r))
	}

	draw.Draw(img, solidRect(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// glyphRect returns the atlas cell of r. Unknown runes map to '?'.
func glyphRect(r rune) image.Rectangle {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	x := (i % atlasColumns) * face.Advance
	y := (i / atlasColumns) * face.Height
	return image.Rect(x, y, x+face.Advance, y+face.Height)
}

func solidRect() image.Rectangle {
	return image.Rect(atlasWidth-solidSize, atlasHeight-solidSize, atlasWidth, atlasHeight)
}

// glyphUV returns normalized texture coordinates for r.
func glyphUV(r rune) (u0, v0, u1, v1 float32) {
	return rectUV(glyphRect(r))
}

// solidUV returns a texture coordinate inside the opaque block.
func solidUV() (u, v float32) {
	c := solidRect()
	return (float32(c.Min.X) + solidSize/2) / atlasWidth, (float32(c.Min.Y) + solidSize/2) / atlasHeight
}

func rectUV(rc image.Rectangle) (u0, v0, u1, v1 float32) {
	return float32(rc.Min.X) / atlasWidth,
		float32(rc.Min.Y) / atlasHeight,
		float32(rc.Max.X) / atlasWidth,
		float32(rc.Max.Y) / atlasHeight
}

// MeasureText returns the size of text drawn at scale. Lines are split on '\n'.
func MeasureText(text string, scale float32) (w, h float32) {
	gw, gh := GlyphSize()
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*gw) * scale, float32(lines*gh) * scale
}
