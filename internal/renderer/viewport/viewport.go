// Package viewport composes the visible part of a text buffer into
// positioned, colored cells.
package viewport

import "github.com/dshills/sodiumview/internal/renderer/core"

// BufferReader provides read access to buffer content.
// The content must not change while a frame is being composed.
type BufferReader interface {
	// LineCount returns the total number of lines in the buffer.
	LineCount() int

	// LineText returns the text content of a line (0-indexed).
	LineText(line int) string
}

// Lines adapts a slice of strings to BufferReader.
type Lines []string

func (l Lines) LineCount() int { return len(l) }

func (l Lines) LineText(line int) string {
	if line < 0 || line >= len(l) {
		return ""
	}
	return l[line]
}

// Cursor is the caret position in buffer coordinates plus the active mode.
type Cursor struct {
	X, Y int
	Mode core.Mode
}

// Scroll is the buffer position shown in the top-left cell.
// It is not clamped here; keeping it sane is the caller's job.
type Scroll struct {
	X, Y int
}

// Options toggles rendering features.
type Options struct {
	Highlight  bool // Color characters by class
	LineMarker bool // Paint a band behind the cursor row
}

// Size is the viewport size in cells. A zero dimension means unbounded.
type Size struct {
	Cols, Rows int
}

// Contains reports whether a screen cell lies inside the viewport.
func (s Size) Contains(col, row int) bool {
	if col < 0 || row < 0 {
		return false
	}
	if s.Cols > 0 && col >= s.Cols {
		return false
	}
	if s.Rows > 0 && row >= s.Rows {
		return false
	}
	return true
}
