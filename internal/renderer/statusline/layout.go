package statusline

import (
	"github.com/dshills/sodiumview/internal/renderer/core"
)

// Layout is the vertical placement of the status band and prompt row.
type Layout struct {
	// Band is the status bar background rectangle.
	Band core.Rect

	// TextY is the top of the status field glyphs.
	TextY int

	// PromptY is the top of the prompt glyphs.
	PromptY int

	// PromptRow is the area freed below the band in prompt layout.
	PromptRow core.Rect

	// Prompt is set in prompt layout, where the band moves up one row to
	// make room for the prompt row below it.
	Prompt bool

	// Visible is false when the window is too narrow for a single
	// character per column. The band and fields are then skipped.
	Visible bool

	// Budget is the per-column character budget.
	Budget int
}

// NewLayout computes the layout for a window in the given mode.
func NewLayout(width, height int, mode core.Mode, geom core.Geometry) Layout {
	rowH := geom.StatusRowHeight()
	baseline := height - geom.CellHeight - geom.RowPadding

	l := Layout{
		Prompt:  mode == core.ModePrompt,
		Budget:  Budget(width, geom),
		PromptY: baseline,
		TextY:   baseline,
	}
	l.Visible = l.Budget > 0 && height > 0

	shift := 0
	if l.Prompt {
		shift = rowH
		l.PromptRow = core.Rect{X: 0, Y: height - rowH, Width: width, Height: rowH}
	}
	l.TextY -= shift
	l.Band = core.Rect{X: 0, Y: height - rowH - shift, Width: width, Height: rowH}
	return l
}

// ColumnX returns the left edge of status column i.
func ColumnX(width, i int) int {
	return width * i / Columns
}

// Text is a run of plain-colored glyphs starting at (X, Y).
type Text struct {
	Text string
	X, Y int
}

// Compose returns the status fields and, in prompt mode, the prompt row.
// Fields are truncated to the column budget; the prompt is never truncated.
func Compose(width, height int, mode core.Mode, bar StatusBar, prompt string, geom core.Geometry) (Layout, []Text) {
	l := NewLayout(width, height, mode, geom)

	var out []Text
	if l.Visible {
		for i, field := range bar.Fields() {
			text := Truncate(field, l.Budget)
			if text == "" {
				continue
			}
			out = append(out, Text{Text: text, X: ColumnX(width, i), Y: l.TextY})
		}
	}
	if l.Prompt && prompt != "" {
		out = append(out, Text{Text: prompt, X: 0, Y: l.PromptY})
	}
	return l, out
}
