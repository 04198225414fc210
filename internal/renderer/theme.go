package renderer

import (
	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/highlight"
)

// Theme holds every color the compositor draws with.
type Theme struct {
	Background  core.Color // Window background
	LineMarker  core.Color // Band behind the cursor row
	CursorBlock core.Color // Background of the cursor cell
	StatusBand  core.Color // Status bar background

	// Palette colors buffer characters by class. Status and prompt text
	// always use its default class color.
	Palette highlight.Palette
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  core.ColorFromRGB(25, 25, 25),
		LineMarker:  core.ColorFromRGB(45, 45, 45),
		CursorBlock: core.ColorWhite,
		StatusBand:  core.ColorFromRGB(74, 74, 74),
		Palette:     highlight.DefaultPalette(),
	}
}

// textColor is the color of status bar and prompt glyphs.
func (t Theme) textColor() core.Color {
	return t.Palette.Color(highlight.ClassDefault)
}
