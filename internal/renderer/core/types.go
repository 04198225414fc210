// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer, backend and the
// composition packages.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is a true color RGB triple.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from a hex string.
// Supports formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Dim returns the color with every channel divided by three.
func (c Color) Dim() Color {
	return Color{R: c.R / 3, G: c.G / 3, B: c.B / 3}
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	return c == other
}

// String returns the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Geometry describes the fixed cell metrics of a drawing surface.
// All values are in surface units (pixels for a pixel surface, cells for
// a terminal).
type Geometry struct {
	CellWidth  int
	CellHeight int
	// RowPadding is added above and below a glyph row in the status band.
	RowPadding int
}

// PixelGeometry returns the metrics of the reference 8x16 bitmap font.
func PixelGeometry() Geometry {
	return Geometry{CellWidth: 8, CellHeight: 16, RowPadding: 1}
}

// TerminalGeometry returns metrics for a surface addressed in terminal cells.
func TerminalGeometry() Geometry {
	return Geometry{CellWidth: 1, CellHeight: 1, RowPadding: 0}
}

// StatusRowHeight returns the height of one status band row.
func (g Geometry) StatusRowHeight() int {
	return g.CellHeight + 2*g.RowPadding
}

// Valid reports whether the cell metrics are usable.
func (g Geometry) Valid() bool {
	return g.CellWidth > 0 && g.CellHeight > 0 && g.RowPadding >= 0
}

// CellToSurface converts a cell position to surface coordinates.
func (g Geometry) CellToSurface(col, row int) (x, y int) {
	return col * g.CellWidth, row * g.CellHeight
}

// Rect is a rectangle in surface units.
type Rect struct {
	X, Y          int
	Width, Height int
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Mode is the editor mode as far as rendering is concerned.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModePrompt
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeInsert:
		return "Insert"
	case ModePrompt:
		return "Prompt"
	default:
		return "Unknown"
	}
}
