package highlight

import "github.com/dshills/sodiumview/internal/renderer/core"

// Palette maps color classes to colors.
type Palette map[Class]core.Color

// DefaultPalette returns the reference palette.
func DefaultPalette() Palette {
	return Palette{
		ClassString:      core.ColorFromRGB(226, 225, 167),
		ClassOperator:    core.ColorFromRGB(198, 83, 83),
		ClassPunctuation: core.ColorFromRGB(241, 213, 226),
		ClassBracket:     core.ColorFromRGB(164, 212, 125),
		ClassNumeric:     core.ColorFromRGB(209, 209, 177),
		ClassDefault:     core.ColorWhite,
	}
}

// Color returns the color for a class. Classes missing from the palette
// use the palette's default color, or white if that is missing too.
func (p Palette) Color(c Class) core.Color {
	if col, ok := p[c]; ok {
		return col
	}
	if col, ok := p[ClassDefault]; ok {
		return col
	}
	return core.ColorWhite
}

// With returns a copy of the palette with the overrides applied.
func (p Palette) With(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
