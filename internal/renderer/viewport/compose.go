package viewport

import (
	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/highlight"
)

// Cell is one glyph placed on screen.
type Cell struct {
	Col, Row int // Screen position in cells
	Rune     rune
	Class    highlight.Class
	Color    core.Color
	Cursor   bool // Cell is under the cursor and drawn dimmed
}

// Composer turns buffer content into cells.
type Composer struct {
	Palette highlight.Palette
	Size    Size
}

// NewComposer creates a composer with the given palette and viewport size.
func NewComposer(palette highlight.Palette, size Size) Composer {
	if palette == nil {
		palette = highlight.DefaultPalette()
	}
	return Composer{Palette: palette, Size: size}
}

// Compose returns the visible cells of buf in row-major order.
// Classifier state starts outside a string.
func (c Composer) Compose(buf BufferReader, cur Cursor, scroll Scroll, opts Options) []Cell {
	cells, _ := c.ComposeFrom(highlight.State{}, buf, cur, scroll, opts)
	return cells
}

// ComposeFrom is Compose with an explicit starting classifier state.
// The state is threaded through every line without being reset, and the
// state after the last classified line is returned.
//
// Lines above the viewport are classified but not emitted; composition
// stops after the last visible row.
func (c Composer) ComposeFrom(st highlight.State, buf BufferReader, cur Cursor, scroll Scroll, opts Options) ([]Cell, highlight.State) {
	if buf == nil {
		return nil, st
	}

	var cells []Cell
	for y := 0; y < buf.LineCount(); y++ {
		row := y - scroll.Y
		if c.Size.Rows > 0 && row >= c.Size.Rows {
			break
		}

		x := 0
		for _, r := range buf.LineText(y) {
			glyph, class := r, highlight.ClassDefault
			if r == '\t' {
				glyph = ' '
			} else {
				class = highlight.Classify(r, &st, opts.Highlight)
			}

			col := x - scroll.X
			if c.Size.Contains(col, row) {
				cell := Cell{
					Col:   col,
					Row:   row,
					Rune:  glyph,
					Class: class,
					Color: c.Palette.Color(class),
				}
				if x == cur.X && y == cur.Y {
					cell.Cursor = true
					cell.Color = cell.Color.Dim()
				}
				cells = append(cells, cell)
			}
			x++
		}
	}
	return cells, st
}

// CursorCell returns the screen cell of the cursor and whether it lies
// inside the viewport.
func (c Composer) CursorCell(cur Cursor, scroll Scroll) (col, row int, visible bool) {
	col, row = cur.X-scroll.X, cur.Y-scroll.Y
	return col, row, c.Size.Contains(col, row)
}

// MarkerRow returns the screen row of the line marker band and whether it
// is visible. Only the row has to be on screen.
func (c Composer) MarkerRow(cur Cursor, scroll Scroll) (row int, visible bool) {
	row = cur.Y - scroll.Y
	return row, c.Size.Contains(0, row)
}
