// Package statusline lays out the four-column status bar and the prompt row.
package statusline

import (
	"github.com/dshills/sodiumview/internal/renderer/core"
)

// Columns is the number of equal-width status bar columns.
const Columns = 4

// ellipsis is appended to truncated fields.
const ellipsis = "..."

// StatusBar holds the four status text fields.
// Fields may be any length; they are truncated when laid out.
type StatusBar struct {
	Mode string // The current mode
	File string // The current file
	Cmd  string // The command being typed
	Msg  string // A message such as an error or other info for the user
}

// NewStatusBar creates a status bar with the startup contents.
func NewStatusBar() StatusBar {
	return StatusBar{
		Mode: "Normal",
		Msg:  "Welcome to Sodium!",
	}
}

// Fields returns the fields in column order.
func (s StatusBar) Fields() [Columns]string {
	return [Columns]string{s.Mode, s.File, s.Cmd, s.Msg}
}

// Budget returns how many characters fit in one column of a window of the
// given width.
func Budget(width int, geom core.Geometry) int {
	if width <= 0 || geom.CellWidth <= 0 {
		return 0
	}
	return width / (geom.CellWidth * Columns)
}

// Truncate shortens text to fit budget characters.
//
// Text within budget is returned unchanged. Longer text keeps its first
// budget-5 characters followed by "...", so the result is two characters
// shorter than budget. For budgets under five no characters are kept and
// the dots are cut down to fit.
func Truncate(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}

	keep := max(budget-5, 0)
	dots := min(len(ellipsis), budget-keep)
	return string(runes[:keep]) + ellipsis[:dots]
}
